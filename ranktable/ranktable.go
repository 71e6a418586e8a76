// Package ranktable implements the combinatorial number system used to
// rank and unrank k-subsets of a 25-element universe (spec section 4.1,
// "Rank/unrank"). This is the leaf-most component of the index machinery:
// index.Aux builds on top of Rank/Unrank to number the maps a tileset can
// occupy.
//
// Per REDESIGN FLAGS ("inline combinatorial tables -> generate at build
// time into a constant table or compute lazily at startup into a
// once-initialised cache"), the binomial table is built once, lazily, the
// same way the teacher lazily builds its per-architecture dispatch table
// at first use (hwy/dispatch.go).
package ranktable

import "sync"

// Universe is the size of the set being ranked (25 board positions).
const Universe = 25

var (
	binomOnce  sync.Once
	binomTable [Universe + 1][Universe + 1]int
)

func buildBinomial() {
	for n := 0; n <= Universe; n++ {
		binomTable[n][0] = 1
		for k := 1; k <= n; k++ {
			binomTable[n][k] = binomTable[n-1][k-1] + binomTable[n-1][k]
		}
	}
}

// Binomial returns C(n,k), the number of k-subsets of an n-set. It
// returns 0 for k < 0, k > n, or n outside [0,Universe].
func Binomial(n, k int) int {
	binomOnce.Do(buildBinomial)
	if k < 0 || n < 0 || n > Universe || k > n {
		return 0
	}
	return binomTable[n][k]
}

// NumSubsets returns C(Universe,k), the number of k-subsets of the
// 25-element universe.
func NumSubsets(k int) int {
	return Binomial(Universe, k)
}

// Rank returns the colex rank of positions, an ascending-sorted slice of
// distinct values in [0,Universe), among all len(positions)-subsets of
// the universe. Rank is O(k).
//
// This is the standard combinatorial number system: for ascending
// positions p_0 < p_1 < ... < p_{k-1}, rank = sum_i C(p_i, i+1).
func Rank(positions []int) int {
	r := 0
	for i, p := range positions {
		r += Binomial(p, i+1)
	}
	return r
}

// Unrank inverts Rank: given a subset size k and a rank in
// [0, NumSubsets(k)), it returns the ascending-sorted k-subset with that
// colex rank.
func Unrank(k, rank int) []int {
	out := make([]int, k)
	for i := k; i >= 1; i-- {
		// Find the largest c such that Binomial(c, i) <= rank.
		c := i - 1
		for Binomial(c+1, i) <= rank {
			c++
		}
		out[i-1] = c
		rank -= Binomial(c, i)
	}
	return out
}
