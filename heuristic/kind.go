// Package heuristic provides the polymorphic PDB-backed heuristic
// capability the catalogue composes, and the loader that opens, creates,
// or maps one by tileset and type string (spec 4.7).
//
// REDESIGN FLAGS calls for replacing the original's function-pointer
// driver table (per-PDB hval/hdiff/free) with "a tagged variant... with a
// common query interface"; Kind is the tag and Heuristic is that
// interface.
package heuristic

// Kind tags which on-disk representation a Heuristic wraps.
type Kind int

const (
	// FullPdb is a byte-per-cell pattern database: exact lookups, no
	// anchor required.
	FullPdb Kind = iota
	// BitPdb is the 4-bit-per-entry compressed form: lookups require a
	// nearby known-true value to reconstruct from the stored residue.
	BitPdb
	// CompressedBitPdb layers a pluggable external codec over a BitPdb
	// file. No driver in this module constructs one: spec section 1
	// scopes the compressed on-disk codec adapter out, so the tag exists
	// for completeness with spec.md's REDESIGN FLAGS wording but Open
	// never produces or accepts it.
	CompressedBitPdb
)

func (k Kind) String() string {
	switch k {
	case FullPdb:
		return "full"
	case BitPdb:
		return "bit"
	case CompressedBitPdb:
		return "compressed-bit"
	default:
		return "unknown"
	}
}

// suffix returns the file suffix spec section 6 assigns to kind.
func (k Kind) suffix() string {
	switch k {
	case FullPdb:
		return ".pdb"
	case BitPdb:
		return ".bpdb"
	case CompressedBitPdb:
		return ".bpdb.zst"
	default:
		return ""
	}
}

// similar returns the kind Open retries with when accept_similar permits
// a substitution (spec 4.7 step 4's example: "accept a bit-packed PDB
// where a full one was requested, or vice versa").
func (k Kind) similar() (Kind, bool) {
	switch k {
	case FullPdb:
		return BitPdb, true
	case BitPdb:
		return FullPdb, true
	default:
		return 0, false
	}
}
