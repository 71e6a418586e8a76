package bitpdb

import (
	"fmt"
	"os"

	"github.com/ajroetker/puzzle24/index"
	"github.com/ajroetker/puzzle24/internal/perr"
)

// Store writes the packed nibble bytes to path. There is no header: the
// caller must know the tileset (and therefore aux) to reopen it with
// Load.
func (bp *BitPDB) Store(path string) error {
	const op = "bitpdb.Store"
	if err := os.WriteFile(path, bp.data, 0o644); err != nil {
		return perr.New(perr.IO, op, err)
	}
	return nil
}

// Load reads a previously Store-d BitPDB for aux from path.
func Load(aux *index.Aux, path string) (*BitPDB, error) {
	const op = "bitpdb.Load"
	offsets, total := cellLayout(aux)
	want := (total + 1) / 2

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, perr.New(perr.NotFound, op, err)
		}
		return nil, perr.New(perr.IO, op, err)
	}
	if len(data) != want {
		return nil, perr.New(perr.Malformed, op, fmt.Errorf("file size %d does not match expected %d", len(data), want))
	}

	return &BitPDB{Aux: aux, cellOffsets: offsets, totalCells: total, data: data}, nil
}
