package catalogue

import (
	"bufio"
	"io"
	"strings"

	"github.com/ajroetker/puzzle24/internal/perr"
	"github.com/ajroetker/puzzle24/tileset"
)

// HeuristicSpec is one parsed line of a catalogue file: the tilesets to
// load and sum into a single additive heuristic group.
type HeuristicSpec struct {
	Parts []tileset.Tileset
}

// ParseSpec parses the catalogue file grammar from spec section 6: one
// heuristic entry per line, blank lines and '#' comments ignored, parts
// of one line joined with '+' for additive composition.
func ParseSpec(r io.Reader) ([]HeuristicSpec, error) {
	const op = "catalogue.ParseSpec"

	var specs []HeuristicSpec
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		var spec HeuristicSpec
		for _, part := range strings.Split(line, "+") {
			ts, err := tileset.ParseListString(strings.TrimSpace(part))
			if err != nil {
				return nil, perr.New(perr.Malformed, op, err)
			}
			spec.Parts = append(spec.Parts, ts)
		}
		specs = append(specs, spec)
	}
	if err := sc.Err(); err != nil {
		return nil, perr.New(perr.IO, op, err)
	}
	return specs, nil
}
