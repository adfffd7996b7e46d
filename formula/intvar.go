package formula

import "github.com/jacksonloper/gridsat/satsolver"

// IntVar is a binary integer variable: a length-ceil(log2 n) vector of bit
// variables in LSB-first order (Bits[0] is the least-significant bit).
type IntVar struct {
	Bits []satsolver.Var
}

// NewIntVar allocates an IntVar with nBits fresh, unconstrained bit
// variables.
func (b *Builder) NewIntVar(nBits int) IntVar {
	bits := make([]satsolver.Var, nBits)
	for i := range bits {
		bits[i] = b.NewVar()
	}

	return IntVar{Bits: bits}
}

// BitsForCount returns ceil(log2(n)) bits, enough to represent every value
// in [0, n-1]. BitsForCount(0) and BitsForCount(1) both return 0, since no
// bits are needed to distinguish a single value.
func BitsForCount(n int) int {
	bits := 0
	for (1 << uint(bits)) < n {
		bits++
	}

	return bits
}

// ForceZero asserts that every bit of v is false, used to fix a root's
// level to zero in the encoder's acyclicity gadget.
func (b *Builder) ForceZero(v IntVar) {
	for _, bit := range v.Bits {
		b.Unit(bit.Neg())
	}
}

// litsMSBFirst returns v's bits as positive literals, MSB-first, padded with
// Builder.False() up to n bits so two IntVars of differing length can be
// compared.
func (b *Builder) litsMSBFirst(v IntVar, n int) []satsolver.Lit {
	out := make([]satsolver.Lit, n)
	for i := 0; i < n; i++ {
		if i < len(v.Bits) {
			out[n-1-i] = v.Bits[i].Pos()
		} else {
			out[n-1-i] = b.False()
		}
	}

	return out
}

// ImpliesZero asserts that whenever cond holds, every bit of v is false —
// the guarded form of ForceZero used for a soft-selected root, whose level
// is pinned to zero only in models where it was actually chosen as root.
func (b *Builder) ImpliesZero(cond satsolver.Lit, v IntVar) {
	for _, bit := range v.Bits {
		b.Implies(cond, bit.Neg())
	}
}

// LessThan returns a fresh literal asserting the unsigned comparison x < y,
// treating both as LSB-first bit vectors padded to the longer of the two
// lengths with forced-zero high bits. The implementation materializes
// per-bit equality and less-than-so-far auxiliary variables and walks from
// the most significant bit to the least significant, maintaining a
// cumulative prefix-equal flag and a cumulative strict-less flag; the
// final strict-less flag after the least significant bit is the result.
func (b *Builder) LessThan(x, y IntVar) satsolver.Lit {
	n := len(x.Bits)
	if len(y.Bits) > n {
		n = len(y.Bits)
	}
	if n == 0 {
		return b.False() // both are the (unique) zero-bit value: never less
	}

	xb := b.litsMSBFirst(x, n)
	yb := b.litsMSBFirst(y, n)

	lt := b.False()
	eq := b.True()
	for i := 0; i < n; i++ {
		bitLess := b.andGate(xb[i].Not(), yb[i]) // this bit: x=0, y=1
		bitEq := b.xnorGate(xb[i], yb[i])
		eqAndLess := b.andGate(eq, bitLess)
		lt = b.orGate(lt, eqAndLess)
		eq = b.andGate(eq, bitEq)
	}

	return lt
}
