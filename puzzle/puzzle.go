// Package puzzle implements the 5x5 sliding-tile board: the pair of
// parallel arrays mapping tile identity to grid position and back, move
// generation, and zero-tile tracking (spec section 3, "Puzzle
// configuration" and "Move").
package puzzle

import "github.com/ajroetker/puzzle24/tileset"

// N is the number of grid positions / tiles, including the zero tile.
const N = tileset.N

// Puzzle holds a configuration as two mutually-inverse permutations of
// 0..N-1, plus a cached zero-tile position so callers don't have to scan
// for it on every move.
type Puzzle struct {
	tiles [N]int // tiles[t] = grid position of tile t
	grid  [N]int // grid[g] = tile at grid position g
	zero  int     // grid position of the zero tile
}

// Solved returns the goal configuration: tile t at grid position t for
// every t.
func Solved() Puzzle {
	var p Puzzle
	for i := 0; i < N; i++ {
		p.tiles[i] = i
		p.grid[i] = i
	}
	p.zero = tileset.Zero
	return p
}

// FromGrid builds a Puzzle from a grid-position-indexed array (grid[g] =
// tile at position g), the natural way to describe a puzzle literally
// (spec scenario S2's board notation). grid must be a permutation of
// 0..N-1.
func FromGrid(grid [N]int) Puzzle {
	var p Puzzle
	p.grid = grid
	for g, t := range grid {
		p.tiles[t] = g
		if t == tileset.Zero {
			p.zero = g
		}
	}
	return p
}

// TileAt returns the tile occupying grid position pos.
func (p *Puzzle) TileAt(pos int) int { return p.grid[pos] }

// PosOf returns the grid position of tile t.
func (p *Puzzle) PosOf(t int) int { return p.tiles[t] }

// ZeroPos returns the current grid position of the zero tile.
func (p *Puzzle) ZeroPos() int { return p.zero }

// IsSolved reports whether every tile is at its goal position.
func (p *Puzzle) IsSolved() bool {
	for t := 0; t < N; t++ {
		if p.tiles[t] != t {
			return false
		}
	}
	return true
}

// Grid returns a copy of the grid-indexed array (grid[g] = tile at
// position g).
func (p *Puzzle) Grid() [N]int { return p.grid }

// LegalMoves returns the grid positions adjacent to the current zero
// position, in a fixed deterministic order (up, down, left, right).
func (p *Puzzle) LegalMoves() []int {
	return Neighbors(p.zero)
}

// Apply swaps the zero tile with whatever tile occupies pos (which must
// be adjacent to ZeroPos(), per LegalMoves) and returns the identity of
// the tile that moved. It mutates p in place.
func (p *Puzzle) Apply(pos int) int {
	movedTile := p.grid[pos]
	oldZero := p.zero

	p.grid[oldZero] = movedTile
	p.grid[pos] = tileset.Zero
	p.tiles[movedTile] = oldZero
	p.tiles[tileset.Zero] = pos
	p.zero = pos

	return movedTile
}

// Undo reverses the effect of Apply(pos) given the zero position prior
// to that Apply call. IDA*'s dfs uses this to backtrack without
// recomputing a whole new Puzzle value per recursion frame.
func (p *Puzzle) Undo(priorZero int) int {
	return p.Apply(priorZero)
}
