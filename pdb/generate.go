package pdb

import (
	"context"
	"sync/atomic"

	"github.com/ajroetker/puzzle24/index"
	"github.com/ajroetker/puzzle24/internal/parallel"
	"github.com/ajroetker/puzzle24/internal/pdbcells"
	"github.com/ajroetker/puzzle24/internal/plog"
	"github.com/ajroetker/puzzle24/puzzle"
	"github.com/ajroetker/puzzle24/ranktable"
)

// Generate fills p by parallel breadth-first search from the solved
// configuration (spec 4.3, pdb_generate): round 0 seeds the goal cell at
// distance 0; each round r scans every cell currently holding r and
// writes r+1 into every not-yet-reached cell reachable by one abstract
// move, using driver to split the scan across workers. Generation stops
// once a round discovers no new cells; the distance written by the last
// round that did (that round's r+1) becomes p.Diameter().
//
// Any worker error aborts the whole generation (spec 5: "any worker
// failure is fatal").
func (p *PDB) Generate(ctx context.Context, driver *parallel.Driver, sink plog.Sink) error {
	sink = plog.Pick(sink)
	cells := pdbcells.Wrap(p.store.Bytes())

	goal := puzzle.Solved()
	cells.StoreRelaxed(p.cellOffset(index.Compute(p.Aux, &goal)), 0)

	round := 0
	for {
		var progress atomic.Int64
		r := byte(round)
		err := driver.Run(ctx, cells.Len(), func(ctx context.Context, lo, hi int) error {
			for i := lo; i < hi; i++ {
				if cells.LoadRelaxed(i) != r {
					continue
				}
				p.expandCell(cells, p.offsetToIndex(i), r, &progress)
			}
			return nil
		})
		if err != nil {
			return err
		}

		sink.Printf("pdb generate: round %d found %d new cells", round, progress.Load())
		if progress.Load() == 0 {
			break
		}
		p.diameter = round + 1
		round++
		if round >= int(Unreached) {
			break
		}
	}
	return nil
}

// expandCell explores every grid position the zero tile could occupy
// without disturbing this cell's map, and for every boundary position
// that swaps a mapped tile into the zero's slot, writes round+1 into the
// resulting cell if it is still Unreached.
//
// When the tileset includes the zero tile, idx.Eqidx already names one
// specific connected component of the map's complement (aux.eqTable
// partitions the complement per maprank), so a flood fill from the
// representative's zero position, confined by the visited set, explores
// exactly that component.
//
// When it does not, aux forces NEqClass to 1 for every maprank (index/
// aux.go's NEqClass): a single cell then stands for the zero tile sitting
// anywhere at all in the complement, which can span several disconnected
// components (e.g. a tileset occupying a full middle column splits the
// complement into separate left/right halves). Confining the walk to one
// component's connected subgraph would silently skip boundary moves only
// reachable from the others, so this case instead enumerates every
// complement position directly — no reachability test needed, since the
// abstraction already treats all of them as the same cell.
func (p *PDB) expandCell(cells *pdbcells.Table, idx index.Index, round byte, progress *atomic.Int64) {
	rep := index.Invert(p.Aux, idx)

	var inMap [index.N]bool
	for _, pos := range ranktable.Unrank(p.Aux.K, idx.Maprank) {
		inMap[pos] = true
	}

	record := func(pz puzzle.Puzzle, nb int) {
		succ := pz
		succ.Apply(nb)
		off := p.cellOffset(index.Compute(p.Aux, &succ))
		if cells.CASIfUnreached(off, round+1) {
			progress.Add(1)
		}
	}

	if !p.Aux.HasZero {
		for z := 0; z < index.N; z++ {
			if inMap[z] {
				continue
			}
			pz := placeZeroAt(rep, z)
			for _, nb := range puzzle.Neighbors(z) {
				if inMap[nb] {
					record(pz, nb)
				}
			}
		}
		return
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
				record(cur.pz, nb)
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
}
