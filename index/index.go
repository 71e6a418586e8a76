package index

import (
	"sort"

	"github.com/ajroetker/puzzle24/puzzle"
	"github.com/ajroetker/puzzle24/ranktable"
	"github.com/ajroetker/puzzle24/tileset"
)

// Index is the dense (maprank, pidx, eqidx) triple addressing one PDB
// cell (spec section 3, "Index").
type Index struct {
	Maprank int
	Pidx    int
	Eqidx   int // -1 if the zero tile is not part of the tileset
}

// Compute maps a puzzle configuration to its index under aux's tileset
// (spec 4.2, compute_index).
func Compute(aux *Aux, p *puzzle.Puzzle) Index {
	positions := make([]int, aux.K)
	for i, t := range aux.nonZeroTiles {
		positions[i] = p.PosOf(t)
	}
	sort.Ints(positions)

	maprank := ranktable.Rank(positions)
	pidx := computePidx(aux.nonZeroTiles, positions, p)

	eqidx := -1
	if aux.HasZero {
		eqidx = int(aux.eqTable[maprank].eq[p.ZeroPos()])
	}

	return Index{Maprank: maprank, Pidx: pidx, Eqidx: eqidx}
}

// computePidx implements the inversion-count factorial-base encoding from
// spec 4.2: iterating tiles in ascending tile number, each tile
// contributes the count of still-unassigned mapped positions less than
// its own position as the next digit, then removes that position and
// shrinks the radix by one.
func computePidx(tiles []int, sortedPositions []int, p *puzzle.Puzzle) int {
	working := append([]int(nil), sortedPositions...)
	k := len(tiles)
	pidx := 0
	remaining := k
	for _, t := range tiles {
		pos := p.PosOf(t)
		digit := indexOfSorted(working, pos)
		pidx = pidx*remaining + digit
		working = removeAt(working, digit)
		remaining--
	}
	return pidx
}

// Invert reconstructs a canonical puzzle configuration for idx under
// aux's tileset (spec 4.2, invert_index). Tiles not in the tileset are
// placed in ascending tile-to-position order into the unused positions;
// if the zero tile is part of the tileset, it is placed at the
// lexicographically smallest grid position in its equivalence class.
func Invert(aux *Aux, idx Index) puzzle.Puzzle {
	var grid [N]int
	for i := range grid {
		grid[i] = -1
	}

	occupied := ranktable.Unrank(aux.K, idx.Maprank)
	digits := decodeDigits(aux.K, idx.Pidx)

	working := append([]int(nil), occupied...)
	for i, t := range aux.nonZeroTiles {
		d := digits[i]
		pos := working[d]
		grid[pos] = t
		working = removeAt(working, d)
	}

	if aux.HasZero {
		zeroPos := smallestWithClass(aux.eqTable[idx.Maprank], idx.Eqidx)
		grid[zeroPos] = tileset.Zero
	}

	missingTiles := aux.TS.Complement().Tiles()
	var remainingPositions []int
	for pos, t := range grid {
		if t == -1 {
			remainingPositions = append(remainingPositions, pos)
		}
	}
	for i, t := range missingTiles {
		grid[remainingPositions[i]] = t
	}

	return puzzle.FromGrid(grid)
}

// decodeDigits inverts the mixed-radix encoding used by computePidx: the
// i-th tile (0-indexed in ascending tile order) used radix k-i when it
// was encoded, so digits are extracted from least significant (last
// tile, radix 1) to most significant (first tile, radix k).
func decodeDigits(k, pidx int) []int {
	d := make([]int, k)
	for i := k - 1; i >= 0; i-- {
		radix := k - i
		d[i] = pidx % radix
		pidx /= radix
	}
	return d
}

func indexOfSorted(sorted []int, v int) int {
	return sort.SearchInts(sorted, v)
}

func removeAt(s []int, i int) []int {
	return append(s[:i], s[i+1:]...)
}

func smallestWithClass(classes maprankEqClasses, eqidx int) int {
	for pos, c := range classes.eq {
		if int(c) == eqidx {
			return pos
		}
	}
	return -1
}
