// Package catalogue composes multiple PDB-backed heuristics into the
// additive/max-over-groups heuristic IDA* actually queries (spec 4.6):
// each heuristic group sums a disjoint set of PDBs' h-values, and the
// catalogue's h is the maximum across groups.
package catalogue

import (
	"fmt"

	"github.com/ajroetker/puzzle24/heuristic"
	"github.com/ajroetker/puzzle24/internal/perr"
	"github.com/ajroetker/puzzle24/puzzle"
	"github.com/ajroetker/puzzle24/tileset"
)

// MaxPDBs and MaxHeuristics bound a Catalogue the way spec section 3
// describes ("up to 64 PDBs and up to 32 heuristics").
const (
	MaxPDBs       = 64
	MaxHeuristics = 32
)

// PartialHVals is the per-PDB h-value cache spec section 3 calls a
// "64-byte cache": one value per PDB currently registered in a
// Catalogue, reused across PartialHVals/DiffHVals calls along one search
// path.
type PartialHVals struct {
	vals [MaxPDBs]int
}

// Catalogue is a set of PDB-backed heuristics grouped into additive
// heuristic groups, queried by their max.
type Catalogue struct {
	pdbs     []heuristic.Heuristic
	tilesets []tileset.Tileset  // tilesets[i] is the ORIGINAL tile set requested for pdbs[i], before any folding, in the same frame movedTile is expressed in
	morphs   []tileset.Morphism // morphs[i] pre-transforms a query puzzle (position and tile identity together) into pdbs[i]'s folded frame
	groups   [][]int            // groups[g] lists indices into pdbs summed for group g
}

// New returns an empty Catalogue.
func New() *Catalogue {
	return &Catalogue{}
}

// AddPDB registers h and returns its index for use in AddHeuristic. ts is
// the ORIGINAL tile set the caller requested, before any folding
// heuristic.Open performed — the same frame a movedTile passed to
// DiffHVals is expressed in. morph is the morphism that pre-transforms a
// query puzzle into h's actual (possibly folded) frame of reference
// (heuristic.Loaded.Morphism; tileset.Morphisms()[0], the identity, if h
// was opened with Config.NoMorph or built directly without folding).
func (c *Catalogue) AddPDB(h heuristic.Heuristic, ts tileset.Tileset, morph tileset.Morphism) (int, error) {
	const op = "catalogue.AddPDB"
	if len(c.pdbs) >= MaxPDBs {
		return -1, perr.New(perr.Usage, op, fmt.Errorf("catalogue already holds the maximum of %d PDBs", MaxPDBs))
	}
	c.pdbs = append(c.pdbs, h)
	c.tilesets = append(c.tilesets, ts)
	c.morphs = append(c.morphs, morph)
	return len(c.pdbs) - 1, nil
}

// AddHeuristic registers a heuristic group summing the PDBs at pdbIndices
// and returns its group index.
func (c *Catalogue) AddHeuristic(pdbIndices []int) (int, error) {
	const op = "catalogue.AddHeuristic"
	if len(c.groups) >= MaxHeuristics {
		return -1, perr.New(perr.Usage, op, fmt.Errorf("catalogue already holds the maximum of %d heuristics", MaxHeuristics))
	}
	c.groups = append(c.groups, append([]int(nil), pdbIndices...))
	return len(c.groups) - 1, nil
}

// PartialHVals computes every registered PDB's h-value for p from
// scratch, stores them in out, and returns the catalogue h (spec 4.6,
// catalogue_partial_hvals). Each PDB is queried against p pre-transformed
// by its own morphism, so a PDB opened against a folded (canonical) file
// is indexed in the frame it was actually built in.
func (c *Catalogue) PartialHVals(out *PartialHVals, p *puzzle.Puzzle) int {
	for i, h := range c.pdbs {
		mp := puzzle.Morph(p, c.morphs[i])
		out.vals[i] = h.HVal(&mp)
	}
	return c.maxGroup(out)
}

// DiffHVals updates only the PDBs whose original (unfolded) tileset
// contains movedTile, reusing out's prior values for the rest, and
// returns the new catalogue h (spec 4.6, catalogue_diff_hvals — search's
// hot path). movedTile is always expressed in the board's native,
// unmorphed frame, so membership is tested against each PDB's original
// tileset before p is morphed into that PDB's folded frame for the
// lookup itself.
func (c *Catalogue) DiffHVals(out *PartialHVals, p *puzzle.Puzzle, movedTile int) int {
	for i, h := range c.pdbs {
		if c.tilesets[i].Has(movedTile) {
			mp := puzzle.Morph(p, c.morphs[i])
			out.vals[i] = h.HDiff(&mp, out.vals[i])
		}
	}
	return c.maxGroup(out)
}

// HVal is a convenience wrapper around PartialHVals using a throwaway
// buffer (spec 4.6, catalogue_hval).
func (c *Catalogue) HVal(p *puzzle.Puzzle) int {
	var ph PartialHVals
	return c.PartialHVals(&ph, p)
}

func (c *Catalogue) maxGroup(ph *PartialHVals) int {
	max := 0
	for _, g := range c.groups {
		sum := 0
		for _, idx := range g {
			sum += ph.vals[idx]
		}
		if sum > max {
			max = sum
		}
	}
	return max
}

// Close releases every PDB the catalogue owns (spec section 5: "Catalogues
// own their PDBs; freeing a catalogue frees every PDB it holds"),
// returning the first error encountered if any.
func (c *Catalogue) Close() error {
	var firstErr error
	for _, h := range c.pdbs {
		if err := h.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
