package pdb

// Reduce replaces every cell's stored distance with its value modulo
// modulus, in place, discarding the information differential lookup
// doesn't need (spec 4.3, pdb_reduce). Unreached cells are left
// untouched: they carry no distance to reduce. bitpdb.FromPDB has no
// reserved nibble for Unreached; it reduces every byte, so an Unreached
// cell there reads as 255 mod bitpdb.Modulus.
//
// Called with bitpdb.Modulus (16), a reduced PDB and the bit-packed PDB
// built from the same full PDB agree on every reached cell's residue
// (spec section 9's open question on pdb_reduce's modulus).
func (p *PDB) Reduce(modulus int) {
	b := p.store.Bytes()
	for i, v := range b {
		if v == Unreached {
			continue
		}
		b[i] = byte(int(v) % modulus)
	}
}
