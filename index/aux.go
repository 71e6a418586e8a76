// Package index implements the bijection between (tileset, puzzle
// configuration) and dense (maprank, pidx, eqidx) triples used to address
// pattern database cells (spec section 3, "Index" and "Index auxiliary
// table", and section 4.2).
package index

import (
	"github.com/ajroetker/puzzle24/puzzle"
	"github.com/ajroetker/puzzle24/ranktable"
	"github.com/ajroetker/puzzle24/tileset"
)

// N is the number of grid positions.
const N = tileset.N

// maprankEqClasses holds the zero-tile equivalence-class partition for one
// maprank: eq[pos] is the class id for positions in the map's complement,
// or -1 for positions that are part of the occupied map itself.
type maprankEqClasses struct {
	nEq int
	eq  [N]int8
}

// Aux is the immutable auxiliary table derived from a Tileset (spec's
// index_aux). Build it once and share it across PDB generation, lookup,
// and IDA* search for that tileset.
type Aux struct {
	TS           tileset.Tileset
	HasZero      bool
	K            int   // |TS \ {zero}|, the map size
	NMaprank     int   // C(25,K)
	NPerm        int   // K!
	nonZeroTiles []int // ascending tiles of TS \ {zero}

	eqTable []maprankEqClasses // len NMaprank if HasZero, else nil
}

// BuildAux constructs the Aux table for ts. This is the one expensive,
// amortized-once step per tileset: if the zero tile is a member, it
// computes the zero-equivalence-class partition for every maprank.
func BuildAux(ts tileset.Tileset) *Aux {
	hasZero := ts.Has(tileset.Zero)
	working := ts
	if hasZero {
		working = working.Remove(tileset.Zero)
	}
	nonZero := working.Tiles()
	k := len(nonZero)

	aux := &Aux{
		TS:           ts,
		HasZero:      hasZero,
		K:            k,
		NMaprank:     ranktable.NumSubsets(k),
		NPerm:        factorial(k),
		nonZeroTiles: nonZero,
	}

	if hasZero {
		aux.eqTable = make([]maprankEqClasses, aux.NMaprank)
		for r := 0; r < aux.NMaprank; r++ {
			aux.eqTable[r] = buildEqClasses(ranktable.Unrank(k, r))
		}
	}

	return aux
}

// NEqClass returns the number of zero-tile equivalence classes for the
// given maprank. It is always 1 when the zero tile is not part of the
// tileset (spec: "has_zero ? n_eqclass[i] : 1").
func (a *Aux) NEqClass(maprank int) int {
	if !a.HasZero {
		return 1
	}
	return a.eqTable[maprank].nEq
}

// TableLen returns the length of the byte table needed for one maprank:
// NPerm * NEqClass(maprank).
func (a *Aux) TableLen(maprank int) int {
	return a.NPerm * a.NEqClass(maprank)
}

func factorial(k int) int {
	f := 1
	for i := 2; i <= k; i++ {
		f *= i
	}
	return f
}

// buildEqClasses flood-fills the complement of occupied (the positions
// not in the map) under board adjacency, assigning each connected
// component a class id in order of its smallest member position — this
// is the partition "positions in the complement... by reachability of the
// zero tile without moving any non-zero tile in ts" from spec 4.2.
func buildEqClasses(occupied []int) maprankEqClasses {
	var out maprankEqClasses
	for i := range out.eq {
		out.eq[i] = -1
	}

	inMap := make([]bool, N)
	for _, p := range occupied {
		inMap[p] = true
	}

	visited := make([]bool, N)
	nextClass := 0
	for start := 0; start < N; start++ {
		if inMap[start] || visited[start] {
			continue
		}
		// BFS over the complement graph from start.
		queue := []int{start}
		visited[start] = true
		for len(queue) > 0 {
			pos := queue[0]
			queue = queue[1:]
			out.eq[pos] = int8(nextClass)
			for _, nb := range puzzle.Neighbors(pos) {
				if !inMap[nb] && !visited[nb] {
					visited[nb] = true
					queue = append(queue, nb)
				}
			}
		}
		nextClass++
	}
	out.nEq = nextClass
	return out
}
