package tileset

import (
	"strconv"
	"strings"
)

// ListString renders ts as the canonical tileset-list string used to name
// PDB files (spec section 6): comma-separated ascending tile numbers,
// zero-padded to two digits, e.g. "01,02,05,06".
func (ts Tileset) ListString() string {
	tiles := ts.Tiles()
	parts := make([]string, len(tiles))
	for i, t := range tiles {
		s := strconv.Itoa(t)
		if len(s) < 2 {
			s = "0" + s
		}
		parts[i] = s
	}
	return strings.Join(parts, ",")
}

// ParseListString parses a tileset-list string back into a Tileset.
func ParseListString(s string) (Tileset, error) {
	if s == "" {
		return 0, nil
	}
	var ts Tileset
	for _, part := range strings.Split(s, ",") {
		t, err := strconv.Atoi(part)
		if err != nil {
			return 0, err
		}
		ts = ts.Add(t)
	}
	return ts, nil
}
