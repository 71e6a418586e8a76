// Package pdb builds, stores, and looks up a pattern database: a
// byte-per-cell table of the exact distance to the goal, indexed by
// index.Index, for a single tileset (spec section 4.3, "Pattern
// database").
//
// Cells for all maprank tables are laid out back to back in one flat byte
// region so the whole PDB is a single mmap'able file, matching the file
// format in spec section 6 ("file size equals the sum of all maprank
// table lengths").
package pdb

import (
	"fmt"
	"sort"

	"github.com/ajroetker/puzzle24/index"
	"github.com/ajroetker/puzzle24/internal/mmapfile"
	"github.com/ajroetker/puzzle24/internal/parallel"
	"github.com/ajroetker/puzzle24/internal/pdbcells"
	"github.com/ajroetker/puzzle24/internal/perr"
	"github.com/ajroetker/puzzle24/puzzle"
)

// Unreached is the sentinel byte value for a cell BFS has not yet
// discovered.
const Unreached = pdbcells.Unreached

// MaxJobs bounds the worker count Generate and Verify will use.
const MaxJobs = parallel.MaxJobs

// PDB is a generated or loaded pattern database for one tileset.
type PDB struct {
	Aux      *index.Aux
	store    mmapfile.Store
	offsets  []int // offsets[r] = flat byte offset of maprank r's table
	diameter int
}

// tableLayout computes the per-maprank byte offsets and the total table
// size for aux.
func tableLayout(aux *index.Aux) ([]int, int) {
	offsets := make([]int, aux.NMaprank)
	total := 0
	for r := 0; r < aux.NMaprank; r++ {
		offsets[r] = total
		total += aux.TableLen(r)
	}
	return offsets, total
}

// Allocate creates a new in-memory PDB for aux with every cell set to
// Unreached, ready for Generate. Allocation failure (out of memory) is
// fatal and reported as a perr.Resource error rather than a panic, since
// the teacher's own tables are sized directly by the caller-chosen
// tileset and a bad choice must produce a catchable error, not a crash.
func Allocate(aux *index.Aux) (pdb *PDB, err error) {
	const op = "pdb.Allocate"
	defer func() {
		if r := recover(); r != nil {
			pdb, err = nil, perr.New(perr.Resource, op, fmt.Errorf("%v", r))
		}
	}()

	offsets, total := tableLayout(aux)
	store := mmapfile.Owned(total)
	b := store.Bytes()
	for i := range b {
		b[i] = Unreached
	}
	return &PDB{Aux: aux, store: store, offsets: offsets}, nil
}

// Map opens path as a memory-mapped PDB file for aux under mode. The file
// must already exist and be exactly the size aux implies, except under
// mmapfile.Shared where Map creates/truncates it for Generate to fill in.
func Map(aux *index.Aux, path string, mode mmapfile.Mode) (*PDB, error) {
	offsets, total := tableLayout(aux)
	store, err := mmapfile.Map(path, total, mode)
	if err != nil {
		return nil, err
	}
	pdb := &PDB{Aux: aux, store: store, offsets: offsets}
	if mode != mmapfile.Shared {
		pdb.diameter = pdb.scanDiameter()
	}
	return pdb, nil
}

// Close releases the PDB's backing store.
func (p *PDB) Close() error {
	return p.store.Close()
}

// Sync flushes a shared mapping's writes to disk. No-op for owned or
// read-only/private PDBs.
func (p *PDB) Sync() error {
	return mmapfile.Sync(p.store)
}

// Len returns the total number of cells across every maprank table.
func (p *PDB) Len() int {
	return len(p.store.Bytes())
}

// Bytes returns the PDB's raw backing bytes, exposed so derived
// representations (bitpdb) can build from a PDB without needing access to
// its private offset bookkeeping.
func (p *PDB) Bytes() []byte {
	return p.store.Bytes()
}

// Diameter returns the maximum finite distance found by Generate (or
// computed by scanning, for a PDB opened with Map), i.e. the PDB's
// radius under this tileset's abstraction.
func (p *PDB) Diameter() int {
	return p.diameter
}

// cellOffset returns idx's flat byte offset within the PDB's backing
// bytes.
func (p *PDB) cellOffset(idx index.Index) int {
	neq := p.Aux.NEqClass(idx.Maprank)
	eq := idx.Eqidx
	if eq < 0 {
		eq = 0
	}
	return p.offsets[idx.Maprank] + idx.Pidx*neq + eq
}

// offsetToIndex inverts cellOffset: given a flat byte offset, recovers
// the (maprank, pidx, eqidx) triple it addresses.
func (p *PDB) offsetToIndex(off int) index.Index {
	r := sort.Search(len(p.offsets), func(i int) bool { return p.offsets[i] > off }) - 1
	rem := off - p.offsets[r]
	neq := p.Aux.NEqClass(r)
	pidx := rem / neq
	eq := rem % neq
	if !p.Aux.HasZero {
		eq = -1
	}
	return index.Index{Maprank: r, Pidx: pidx, Eqidx: eq}
}

// Lookup returns the stored distance for idx.
func (p *PDB) Lookup(idx index.Index) byte {
	return p.store.Bytes()[p.cellOffset(idx)]
}

// placeZeroAt returns a copy of p with the zero tile relocated to pos by
// directly swapping grid entries, not by a legal adjacent move. Generate
// and Verify use this for tilesets that don't include the zero tile,
// where a PDB cell stands for the zero tile sitting at any position in
// the map's complement and the particular path used to get there carries
// no meaning.
func placeZeroAt(p puzzle.Puzzle, pos int) puzzle.Puzzle {
	if pos == p.ZeroPos() {
		return p
	}
	grid := p.Grid()
	grid[pos], grid[p.ZeroPos()] = grid[p.ZeroPos()], grid[pos]
	return puzzle.FromGrid(grid)
}

// scanDiameter finds the maximum finite cell value currently stored. Used
// when opening an already-generated file where Generate's own bookkeeping
// isn't available.
func (p *PDB) scanDiameter() int {
	max := 0
	for _, v := range p.store.Bytes() {
		if v != Unreached && int(v) > max {
			max = int(v)
		}
	}
	return max
}
