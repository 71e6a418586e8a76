package pdb

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/ajroetker/puzzle24/index"
	"github.com/ajroetker/puzzle24/internal/parallel"
	"github.com/ajroetker/puzzle24/internal/pdbcells"
	"github.com/ajroetker/puzzle24/internal/perr"
	"github.com/ajroetker/puzzle24/puzzle"
	"github.com/ajroetker/puzzle24/ranktable"
)

// Verify checks the BFS-distance invariant spec section 8 calls the
// verification law: the goal cell holds 0, and every other reached cell
// holds one more than at least one of its abstract predecessors. It does
// not check that no neighbor holds a value below d-1, and Unreached cells
// are skipped. It reports the first violation found as a *perr.Error of
// kind Malformed.
func (p *PDB) Verify(ctx context.Context, driver *parallel.Driver) error {
	const op = "pdb.Verify"
	cells := pdbcells.Wrap(p.store.Bytes())

	goal := puzzle.Solved()
	if got := cells.LoadRelaxed(p.cellOffset(index.Compute(p.Aux, &goal))); got != 0 {
		return perr.New(perr.Malformed, op, fmt.Errorf("goal cell holds %d, want 0", got))
	}

	var bad atomic.Int64
	err := driver.Run(ctx, cells.Len(), func(ctx context.Context, lo, hi int) error {
		for i := lo; i < hi; i++ {
			d := cells.LoadRelaxed(i)
			if d == Unreached || d == 0 {
				continue
			}
			idx := p.offsetToIndex(i)
			if !p.hasPredecessorAt(cells, idx, d-1) {
				bad.Add(1)
				return fmt.Errorf("cell %+v holds %d with no predecessor at %d", idx, d, d-1)
			}
		}
		return nil
	})
	if err != nil {
		return perr.New(perr.Malformed, op, err)
	}
	return nil
}

// hasPredecessorAt reports whether idx has some abstract predecessor cell
// holding exactly want, i.e. some single move from a configuration at
// distance want reaches idx's configuration. This mirrors expandCell's
// forward exploration, including its HasZero/!HasZero split (see
// expandCell's doc comment), but accepts the first neighbor match instead
// of writing every boundary cell found.
func (p *PDB) hasPredecessorAt(cells *pdbcells.Table, idx index.Index, want byte) bool {
	rep := index.Invert(p.Aux, idx)

	var inMap [index.N]bool
	for _, pos := range ranktable.Unrank(p.Aux.K, idx.Maprank) {
		inMap[pos] = true
	}

	matches := func(pz puzzle.Puzzle, nb int) bool {
		pred := pz
		pred.Apply(nb)
		return cells.LoadRelaxed(p.cellOffset(index.Compute(p.Aux, &pred))) == want
	}

	if !p.Aux.HasZero {
		for z := 0; z < index.N; z++ {
			if inMap[z] {
				continue
			}
			pz := placeZeroAt(rep, z)
			for _, nb := range puzzle.Neighbors(z) {
				if inMap[nb] && matches(pz, nb) {
					return true
				}
			}
		}
		return false
	}

	type frame struct {
		pz  puzzle.Puzzle
		pos int
	}

	var visited [index.N]bool
	start := rep.ZeroPos()
	visited[start] = true
	stack := []frame{{pz: rep, pos: start}}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, nb := range puzzle.Neighbors(cur.pos) {
			if inMap[nb] {
				if matches(cur.pz, nb) {
					return true
				}
				continue
			}
			if !visited[nb] {
				visited[nb] = true
				nxt := cur.pz
				nxt.Apply(nb)
				stack = append(stack, frame{pz: nxt, pos: nb})
			}
		}
	}
	return false
}
