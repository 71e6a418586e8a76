package pdb

import (
	"github.com/ajroetker/puzzle24/index"
	"github.com/ajroetker/puzzle24/puzzle"
)

// LookupPuzzle indexes p under the PDB's tileset and returns the stored
// distance.
func (p *PDB) LookupPuzzle(pz *puzzle.Puzzle) byte {
	return p.Lookup(index.Compute(p.Aux, pz))
}
