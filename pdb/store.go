package pdb

import (
	"os"

	"github.com/ajroetker/puzzle24/internal/perr"
)

// Store writes the PDB's tables to path in maprank order as raw bytes,
// with no header: file size equals the sum of all maprank table sizes,
// which tableLayout already computed from aux alone (spec 4.3,
// pdb_store).
func (p *PDB) Store(path string) error {
	const op = "pdb.Store"
	if err := os.WriteFile(path, p.store.Bytes(), 0o644); err != nil {
		return perr.New(perr.IO, op, err)
	}
	return nil
}
