// Package tileset implements the 25-bit tile/position bitmask used
// throughout this module (spec section 3, "Tile set") plus the eight
// dihedral symmetries of the 5x5 board used to fold equivalent PDB
// requests onto a single canonical file.
//
// A Tileset's bit i is set exactly when tile (or grid position) i is a
// member. Tile 0 is the distinguished zero tile (the blank); it is an
// ordinary member bit like any other as far as this package is concerned.
package tileset

import "math/bits"

// Size is the board dimension (5x5 = 25 positions/tiles).
const Size = 5

// N is the number of tiles, including the zero tile.
const N = Size * Size

// Zero is the distinguished zero-tile identity.
const Zero = 0

// Tileset is a bitmask over the 25 tile/position identities.
type Tileset uint32

// Full is the tileset containing every tile.
const Full Tileset = (1 << N) - 1

// Of builds a Tileset from explicit tile numbers.
func Of(tiles ...int) Tileset {
	var ts Tileset
	for _, t := range tiles {
		ts = ts.Add(t)
	}
	return ts
}

// Has reports whether tile t is a member.
func (ts Tileset) Has(t int) bool {
	return ts&(1<<uint(t)) != 0
}

// Add returns ts with tile t added.
func (ts Tileset) Add(t int) Tileset {
	return ts | (1 << uint(t))
}

// Remove returns ts with tile t removed.
func (ts Tileset) Remove(t int) Tileset {
	return ts &^ (1 << uint(t))
}

// Count returns the number of member tiles (popcount), built on
// math/bits the way the teacher's scalar bit operations are (see
// DESIGN.md: grounded on hwy/bitops.go's PopCount).
func (ts Tileset) Count() int {
	return bits.OnesCount32(uint32(ts))
}

// Least returns the lowest-numbered member tile, or -1 if ts is empty.
func (ts Tileset) Least() int {
	if ts == 0 {
		return -1
	}
	return bits.TrailingZeros32(uint32(ts))
}

// Complement returns the tileset of all tiles not in ts, restricted to
// the 25-tile universe.
func (ts Tileset) Complement() Tileset {
	return Full &^ ts
}

// Iter calls fn for every member tile in ascending order. It stops early
// if fn returns false.
func (ts Tileset) Iter(fn func(tile int) bool) {
	for ts != 0 {
		t := ts.Least()
		if !fn(t) {
			return
		}
		ts = ts.Remove(t)
	}
}

// Tiles returns the member tiles in ascending order as a slice.
func (ts Tileset) Tiles() []int {
	out := make([]int, 0, ts.Count())
	ts.Iter(func(t int) bool {
		out = append(out, t)
		return true
	})
	return out
}
