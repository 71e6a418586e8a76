package bitpdb

import "github.com/ajroetker/puzzle24/index"

// DiffLookup reconstructs a cell's true distance given oldH, a
// previously-known true distance for a nearby configuration (spec 4.5,
// bitpdb_diff_lookup): it picks, among all integers congruent to the
// stored residue mod Modulus, the one closest to oldH.
//
// That reconstruction is exact whenever trueValue-oldH lies in
// (-Modulus/2, Modulus/2], i.e. -7..+8 (candidates congruent to the same
// residue are Modulus apart, so a half-open window of Modulus values
// holds exactly one; a tie at distance Modulus/2 resolves upward). The
// doc comment in spec.md 4.5 quotes a tolerance of 15
// for differencing "given a known parity anchor," but notes separately
// (spec.md 9) that pdb_reduce's and pdb_diffcode's exact semantics
// weren't recoverable from the reference headers; this module documents
// the concrete, checkable bound its own Modulus actually provides (-7..+8)
// rather than carry forward an unverifiable number.
func (bp *BitPDB) DiffLookup(idx index.Index, oldH int) int {
	stored := int(bp.Lookup(idx))
	delta := (stored - floorMod(oldH, Modulus) + Modulus) % Modulus
	if delta > Modulus/2 {
		delta -= Modulus
	}
	return oldH + delta
}

func floorMod(v, m int) int {
	r := v % m
	if r < 0 {
		r += m
	}
	return r
}
