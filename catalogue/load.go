package catalogue

import (
	"context"

	"github.com/ajroetker/puzzle24/heuristic"
	"github.com/ajroetker/puzzle24/internal/parallel"
	"github.com/ajroetker/puzzle24/internal/plog"
	"github.com/ajroetker/puzzle24/tileset"
)

// Load builds a Catalogue from parsed heuristic specs, opening (or
// creating, per cfg) one heuristic.Heuristic per distinct tileset part
// and grouping each spec's parts into one additive heuristic. A tileset
// part shared by more than one spec is opened only once and its PDB
// index reused across every group that references it.
func Load(ctx context.Context, dir string, specs []HeuristicSpec, kind heuristic.Kind, cfg heuristic.Config, driver *parallel.Driver, sink plog.Sink) (*Catalogue, error) {
	cat := New()
	opened := make(map[tileset.Tileset]int)

	for _, spec := range specs {
		indices := make([]int, 0, len(spec.Parts))
		for _, ts := range spec.Parts {
			idx, ok := opened[ts]
			if !ok {
				loaded, err := heuristic.Open(ctx, dir, ts, kind, cfg, driver, sink)
				if err != nil {
					cat.Close()
					return nil, err
				}
				var addErr error
				idx, addErr = cat.AddPDB(loaded.Heuristic, ts, loaded.Morphism)
				if addErr != nil {
					loaded.Heuristic.Close()
					cat.Close()
					return nil, addErr
				}
				opened[ts] = idx
			}
			indices = append(indices, idx)
		}
		if _, err := cat.AddHeuristic(indices); err != nil {
			cat.Close()
			return nil, err
		}
	}

	return cat, nil
}
