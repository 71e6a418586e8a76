package tileset

import "sync"

// Morphism is one of the 8 dihedral symmetries of the 5x5 board, given as
// a permutation table: Morphism[p] is the position that board position p
// maps to. Per REDESIGN FLAGS ("inline combinatorial tables -> generate at
// build time... or compute lazily into a once-initialised cache"), the
// eight tables are built once, lazily, by Morphisms().
type Morphism [N]int

// NumMorphisms is the size of the dihedral symmetry group of a square.
const NumMorphisms = 8

var (
	morphOnce  sync.Once
	morphTable [NumMorphisms]Morphism
)

// Morphisms returns the 8 dihedral morphisms of the 5x5 board, in a fixed
// order with index 0 the identity.
func Morphisms() [NumMorphisms]Morphism {
	morphOnce.Do(buildMorphisms)
	return morphTable
}

func buildMorphisms() {
	type rc = func(r, c int) (int, int)
	transforms := [NumMorphisms]rc{
		func(r, c int) (int, int) { return r, c },         // identity
		func(r, c int) (int, int) { return c, Size - 1 - r }, // rotate 90
		func(r, c int) (int, int) { return Size - 1 - r, Size - 1 - c }, // rotate 180
		func(r, c int) (int, int) { return Size - 1 - c, r }, // rotate 270
		func(r, c int) (int, int) { return r, Size - 1 - c }, // flip columns
		func(r, c int) (int, int) { return Size - 1 - r, c }, // flip rows
		func(r, c int) (int, int) { return c, r },            // transpose
		func(r, c int) (int, int) { return Size - 1 - c, Size - 1 - r }, // anti-transpose
	}
	for m, tf := range transforms {
		for r := 0; r < Size; r++ {
			for c := 0; c < Size; c++ {
				nr, nc := tf(r, c)
				morphTable[m][r*Size+c] = nr*Size + nc
			}
		}
	}
}

// Morph applies morphism m to ts, mapping every member position through
// m's permutation.
func (ts Tileset) Morph(m Morphism) Tileset {
	var out Tileset
	ts.Iter(func(t int) bool {
		out = out.Add(m[t])
		return true
	})
	return out
}

// lexLess compares two tilesets as descending bit-position lists in
// lexicographic order, mirroring spec 4.1's "lexicographic bit-image."
// The set with the numerically smaller bitmask value, viewed as the
// ascending list of set positions, sorts first; Tileset's uint32 ordering
// already gives us this directly since a lower high bit dominates.
func lexLess(a, b Tileset) bool {
	return a < b
}

// CanonicalAutomorphism returns the morphism that minimizes the
// lexicographic bit-image of ts among the 8 dihedral symmetries, used to
// fold symmetric tileset requests onto one canonical PDB file (spec 4.1).
// Ties (e.g. ts symmetric under some subgroup) are broken by preferring
// the lowest morphism index, so the result is deterministic.
func (ts Tileset) CanonicalAutomorphism() Morphism {
	morphs := Morphisms()
	best := 0
	bestImage := ts.Morph(morphs[0])
	for i := 1; i < NumMorphisms; i++ {
		img := ts.Morph(morphs[i])
		if lexLess(img, bestImage) {
			bestImage = img
			best = i
		}
	}
	return morphs[best]
}

// Canonical returns ts morphed by its own canonical automorphism.
func (ts Tileset) Canonical() Tileset {
	return ts.Morph(ts.CanonicalAutomorphism())
}
