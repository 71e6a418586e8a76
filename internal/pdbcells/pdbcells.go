// Package pdbcells wraps a pattern-database byte table with the named,
// relaxed-ordering cell operations spec section 5 describes, instead of
// exposing raw pointer arithmetic to callers (REDESIGN FLAGS: "Raw atomic
// bytes... relaxed-order reads and writes are exposed as named
// operations... never as raw pointer arithmetic").
//
// A single-byte slice load or store cannot tear on any architecture this
// module targets — the smallest addressable unit already is one byte, so
// there is no multi-instruction sequence for hardware to interleave
// mid-write the way there would be for a multi-byte value. Spec section 5
// makes the same observation ("Atomicity prevents torn bytes on
// architectures that don't guarantee atomic byte access, though in
// practice all supported targets do"). That observation covers
// LoadRelaxed/StoreRelaxed, which is why they stay plain slice ops, but it
// does not extend to CASIfUnreached: two workers racing to expand the
// same cell in the same BFS round can both observe Unreached and both
// write, double-counting the cell as newly discovered. sync/atomic has no
// single-byte compare-and-swap, and the backing slice is sometimes an
// mmap'd file truncated to the PDB's exact cell count rather than a
// multiple of any word size, so CASIfUnreached guards the check-then-set
// with one of a small set of striped mutexes instead of reaching for a
// sub-word atomic trick — the same kind of explicit synchronization the
// teacher's worker pool uses around its own shared counters
// (hwy/contrib/workerpool/workerpool.go), just a mutex rather than an
// atomic.Int32 since the operation here is a compound read-modify-write,
// not a single word update.
package pdbcells

import "sync"

// Unreached is the sentinel distance meaning a cell was never reached by
// BFS.
const Unreached byte = 255

// numStripes bounds the contention a concurrent Generate run serializes
// through: cells hashing to the same stripe block each other's
// CASIfUnreached even when they don't alias, trading a little false
// contention for a fixed, small memory cost regardless of table size.
const numStripes = 1024

// Table is a byte-addressable view over one PDB's backing bytes.
type Table struct {
	data    []byte
	stripes [numStripes]sync.Mutex
}

// Wrap adapts a raw byte slice (owned or memory-mapped) into a Table.
func Wrap(data []byte) *Table {
	return &Table{data: data}
}

// Len returns the number of cells in the table.
func (t *Table) Len() int {
	return len(t.data)
}

// LoadRelaxed reads cell i.
func (t *Table) LoadRelaxed(i int) byte {
	return t.data[i]
}

// StoreRelaxed writes v into cell i unconditionally.
func (t *Table) StoreRelaxed(i int, v byte) {
	t.data[i] = v
}

// CASIfUnreached sets cell i to v only if it currently holds Unreached,
// reporting whether the store happened. Used during BFS expansion so a
// cell is counted as newly discovered at most once per round even when
// multiple predecessors reach it concurrently.
func (t *Table) CASIfUnreached(i int, v byte) bool {
	lock := &t.stripes[i%numStripes]
	lock.Lock()
	defer lock.Unlock()
	if t.data[i] != Unreached {
		return false
	}
	t.data[i] = v
	return true
}
