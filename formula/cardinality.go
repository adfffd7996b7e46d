package formula

import "github.com/jacksonloper/gridsat/satsolver"

// AtLeastKFalse asserts that at least k of the literals in lits are false
// (equivalently, at most len(lits)-k are true). Used for the wall-density
// floor: lits are the "edge kept" variables, and k is the minimum number of
// walls that must be erected.
//
// Encoded as a sequential counter over count[i][j], meaning "among the
// first i literals, at least j are false": count[i][0] holds unconditionally,
// count[0][j] for j>0 is unreachable since there are no literals to supply
// falseness, and count[i][j] holds if either it already held among the
// first i-1 literals, or the first i-1 supplied j-1 falses and literal i-1
// is itself false. The final assertion is count[n][k].
func (b *Builder) AtLeastKFalse(lits []satsolver.Lit, k int) {
	n := len(lits)
	if k <= 0 {
		return // trivially satisfied
	}
	if k > n {
		b.adapter.AddClause() // unsatisfiable: not enough literals to falsify
		return
	}

	// count[i][j], i in [0,n], j in [0,k].
	count := make([][]satsolver.Lit, n+1)
	for i := range count {
		count[i] = make([]satsolver.Lit, k+1)
	}

	for i := 0; i <= n; i++ {
		count[i][0] = b.True()
	}
	for j := 1; j <= k; j++ {
		count[0][j] = b.False()
	}

	for i := 1; i <= n; i++ {
		notLit := lits[i-1].Not()
		for j := 1; j <= k; j++ {
			supplied := b.andGate(count[i-1][j-1], notLit)
			count[i][j] = b.orGate(count[i-1][j], supplied)
		}
	}

	b.Unit(count[n][k])
}
