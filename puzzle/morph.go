package puzzle

import "github.com/ajroetker/puzzle24/tileset"

// Morph applies board symmetry m to p: the tile sitting at position pos
// moves to position m[pos], and since this engine's tile identities are
// themselves goal positions (Solved sets tiles[i] = i), the tile's
// identity is relabeled through m right along with its position, so a
// tile's relationship to its own goal is preserved under the symmetry.
// Solved is therefore a fixed point of Morph for every m. The heuristic
// loader uses this to transform an incoming query puzzle into the frame
// of reference of a canonically morphed PDB file: querying that PDB with
// Morph(p, m) measures the same abstracted distance Compute(aux, p)
// would have under the tileset's own (unfolded) frame.
func Morph(p *Puzzle, m tileset.Morphism) Puzzle {
	var grid [N]int
	g := p.Grid()
	for pos, t := range g {
		grid[m[pos]] = m[t]
	}
	return FromGrid(grid)
}
