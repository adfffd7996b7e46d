package formula

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jacksonloper/gridsat/satsolver"
)

func TestBuilder_NamedVarDuplicatePanics(t *testing.T) {
	b := NewBuilder(satsolver.NewBatch())
	defer b.Adapter().Release()

	b.NamedVar("origin")
	assert.Panics(t, func() { b.NamedVar("origin") })
}

func TestBuilder_LookupUnknownPanics(t *testing.T) {
	b := NewBuilder(satsolver.NewBatch())
	defer b.Adapter().Release()

	assert.Panics(t, func() { b.Lookup("nope") })
}

func TestBuilder_ExactlyOne(t *testing.T) {
	a := satsolver.NewBatch()
	defer a.Release()
	b := NewBuilder(a)

	vs := []satsolver.Var{b.NewVar(), b.NewVar(), b.NewVar()}
	lits := make([]satsolver.Lit, len(vs))
	for i, v := range vs {
		lits[i] = v.Pos()
	}
	b.ExactlyOne(lits)

	ok, err := a.Solve()
	require.NoError(t, err)
	require.True(t, ok)

	count := 0
	for _, v := range vs {
		if a.Value(v) {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestBuilder_TrueFalseConstants(t *testing.T) {
	a := satsolver.NewBatch()
	defer a.Release()
	b := NewBuilder(a)

	tLit := b.True()
	fLit := b.False()
	ok, err := a.Solve()
	require.NoError(t, err)
	require.True(t, ok)

	assert.True(t, litValue(a, tLit))
	assert.False(t, litValue(a, fLit))
}

func TestBuilder_LessThan(t *testing.T) {
	cases := []struct {
		x, y int
		want bool
	}{
		{0, 1, true},
		{1, 0, false},
		{3, 3, false},
		{2, 5, true},
		{5, 2, false},
	}

	for _, c := range cases {
		a := satsolver.NewBatch()
		b := NewBuilder(a)

		xv := b.NewIntVar(3)
		yv := b.NewIntVar(3)
		forceValue(b, xv, c.x)
		forceValue(b, yv, c.y)

		lt := b.LessThan(xv, yv)
		ok, err := a.Solve()
		require.NoError(t, err)
		require.True(t, ok)

		assert.Equalf(t, c.want, litValue(a, lt), "LessThan(%d, %d)", c.x, c.y)
		a.Release()
	}
}

func TestBuilder_LessThan_DifferentWidths(t *testing.T) {
	a := satsolver.NewBatch()
	defer a.Release()
	b := NewBuilder(a)

	xv := b.NewIntVar(1) // represents 0 or 1
	yv := b.NewIntVar(4)
	forceValue(b, xv, 1)
	forceValue(b, yv, 2)

	lt := b.LessThan(xv, yv)
	ok, err := a.Solve()
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, litValue(a, lt))
}

func TestBuilder_AtLeastKFalse(t *testing.T) {
	a := satsolver.NewBatch()
	defer a.Release()
	b := NewBuilder(a)

	vs := make([]satsolver.Var, 5)
	lits := make([]satsolver.Lit, 5)
	for i := range vs {
		vs[i] = b.NewVar()
		lits[i] = vs[i].Pos()
	}
	b.AtLeastKFalse(lits, 2)

	ok, err := a.Solve()
	require.NoError(t, err)
	require.True(t, ok)

	falseCount := 0
	for _, v := range vs {
		if !a.Value(v) {
			falseCount++
		}
	}
	assert.GreaterOrEqual(t, falseCount, 2)
}

func TestBuilder_AtLeastKFalse_AllFalseForcedWhenKEqualsN(t *testing.T) {
	a := satsolver.NewBatch()
	defer a.Release()
	b := NewBuilder(a)

	vs := []satsolver.Var{b.NewVar(), b.NewVar(), b.NewVar()}
	lits := []satsolver.Lit{vs[0].Pos(), vs[1].Pos(), vs[2].Pos()}
	b.AtLeastKFalse(lits, 3)

	ok, err := a.Solve()
	require.NoError(t, err)
	require.True(t, ok)
	for _, v := range vs {
		assert.False(t, a.Value(v))
	}
}

func TestBuilder_AtLeastKFalse_MoreThanNIsUnsat(t *testing.T) {
	a := satsolver.NewBatch()
	defer a.Release()
	b := NewBuilder(a)

	vs := []satsolver.Var{b.NewVar(), b.NewVar()}
	lits := []satsolver.Lit{vs[0].Pos(), vs[1].Pos()}
	b.AtLeastKFalse(lits, 3)

	ok, err := a.Solve()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBitsForCount(t *testing.T) {
	assert.Equal(t, 0, BitsForCount(0))
	assert.Equal(t, 0, BitsForCount(1))
	assert.Equal(t, 1, BitsForCount(2))
	assert.Equal(t, 2, BitsForCount(3))
	assert.Equal(t, 2, BitsForCount(4))
	assert.Equal(t, 3, BitsForCount(5))
}

// litValue reads a literal's truth value off a solved adapter, whose Value
// only accepts a Var.
func litValue(a satsolver.Adapter, l satsolver.Lit) bool {
	return a.Value(l.Var()) != l.Negated()
}

// forceValue asserts each bit of v to match the corresponding bit of n.
func forceValue(b *Builder, v IntVar, n int) {
	for i, bit := range v.Bits {
		if (n>>uint(i))&1 == 1 {
			b.Unit(bit.Pos())
		} else {
			b.Unit(bit.Neg())
		}
	}
}
