package pdb

import (
	"fmt"

	"github.com/ajroetker/puzzle24/index"
	"github.com/ajroetker/puzzle24/internal/perr"
)

// Identify builds the parallel table pdb_identify describes: for every
// cell, the grid position the zero tile canonically occupies within that
// cell's equivalence class. Only meaningful for tilesets that include the
// zero tile; identifying an anonymous PDB is a usage error.
func (p *PDB) Identify() ([]byte, error) {
	const op = "pdb.Identify"
	if !p.Aux.HasZero {
		return nil, perr.New(perr.Usage, op, fmt.Errorf("tileset %s does not include the zero tile", p.Aux.TS.ListString()))
	}

	out := make([]byte, p.Len())
	for off := range out {
		idx := p.offsetToIndex(off)
		rep := index.Invert(p.Aux, idx)
		out[off] = byte(rep.ZeroPos())
	}
	return out, nil
}
