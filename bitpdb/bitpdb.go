// Package bitpdb implements the 4-bit-per-entry compressed pattern
// database (spec 4.5): each cell stores only value mod Modulus, enough to
// recover the true distance from a nearby already-known value during
// differential search, at half of the full PDB's footprint.
//
// The packing scheme is narrowed from the teacher's generic,
// SIMD-accelerated any-bit-width packer
// (hwy/contrib/bitpack/bitpack.go's BasePack32/BaseUnpack32, which tightly
// packs values of an arbitrary bit width into a byte stream) down to a
// fixed 4-bit width with no SIMD lane processing: a pattern database has
// no vector lanes to accelerate, so the pack/unpack loop is the plain
// scalar nibble-indexing the teacher's own code falls back to at the
// edges of a SIMD block.
package bitpdb

import (
	"github.com/ajroetker/puzzle24/index"
	"github.com/ajroetker/puzzle24/pdb"
)

// Modulus is the residue base every cell is stored mod. Fixed at 16 to
// match pdb.Reduce's modulus exactly (spec section 9's open question on
// pdb_reduce's modulus).
const Modulus = 16

// BitPDB is a 4-bit-per-entry compressed view derived from a full PDB.
type BitPDB struct {
	Aux         *index.Aux
	cellOffsets []int // cellOffsets[r] = flat cell index of maprank r's first cell
	totalCells  int
	data        []byte // packed nibbles, two cells per byte
}

// cellLayout computes per-maprank cell-index offsets and the total cell
// count for aux. This mirrors pdb.tableLayout's arithmetic but counts
// logical cells rather than storage bytes, since bitpdb packs two cells
// per byte instead of one cell per byte.
func cellLayout(aux *index.Aux) ([]int, int) {
	offsets := make([]int, aux.NMaprank)
	total := 0
	for r := 0; r < aux.NMaprank; r++ {
		offsets[r] = total
		total += aux.TableLen(r)
	}
	return offsets, total
}

// FromPDB builds a BitPDB by reducing every cell of full mod Modulus and
// packing the results two to a byte.
func FromPDB(full *pdb.PDB) *BitPDB {
	aux := full.Aux
	offsets, total := cellLayout(aux)
	bp := &BitPDB{
		Aux:         aux,
		cellOffsets: offsets,
		totalCells:  total,
		data:        make([]byte, (total+1)/2),
	}

	src := full.Bytes()
	for i := 0; i < total; i++ {
		bp.setNibble(i, src[i]%Modulus)
	}
	return bp
}

func (bp *BitPDB) setNibble(i int, v byte) {
	b := i / 2
	if i%2 == 0 {
		bp.data[b] = (bp.data[b] &^ 0x0F) | (v & 0x0F)
		return
	}
	bp.data[b] = (bp.data[b] &^ 0xF0) | ((v & 0x0F) << 4)
}

func (bp *BitPDB) getNibble(i int) byte {
	b := bp.data[i/2]
	if i%2 == 0 {
		return b & 0x0F
	}
	return (b >> 4) & 0x0F
}

func (bp *BitPDB) cellOffset(idx index.Index) int {
	neq := bp.Aux.NEqClass(idx.Maprank)
	eq := idx.Eqidx
	if eq < 0 {
		eq = 0
	}
	return bp.cellOffsets[idx.Maprank] + idx.Pidx*neq + eq
}

// Lookup returns idx's stored residue mod Modulus.
func (bp *BitPDB) Lookup(idx index.Index) byte {
	return bp.getNibble(bp.cellOffset(idx))
}

// Len returns the number of logical cells (not packed bytes).
func (bp *BitPDB) Len() int {
	return bp.totalCells
}
