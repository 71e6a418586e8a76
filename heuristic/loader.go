package heuristic

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/ajroetker/puzzle24/bitpdb"
	"github.com/ajroetker/puzzle24/index"
	"github.com/ajroetker/puzzle24/internal/mmapfile"
	"github.com/ajroetker/puzzle24/internal/parallel"
	"github.com/ajroetker/puzzle24/internal/perr"
	"github.com/ajroetker/puzzle24/internal/plog"
	"github.com/ajroetker/puzzle24/pdb"
	"github.com/ajroetker/puzzle24/tileset"
)

// Loaded is the result of Open: the resolved Heuristic plus the board
// morphism that was applied to reach it, so a caller can pre-transform
// query puzzles into the file's frame of reference.
type Loaded struct {
	Heuristic Heuristic
	Morphism  tileset.Morphism
}

func identityMorphism() tileset.Morphism {
	var m tileset.Morphism
	for i := range m {
		m[i] = i
	}
	return m
}

// Open resolves a PDB-backed heuristic for ts of the requested kind under
// dir, following spec 4.7's six-step procedure.
func Open(ctx context.Context, dir string, ts tileset.Tileset, kind Kind, cfg Config, driver *parallel.Driver, sink plog.Sink) (*Loaded, error) {
	const op = "heuristic.Open"
	sink = plog.Pick(sink)

	// Step 1: the on-disk name never carries the zero tile; each driver
	// tracks it internally via index.Aux.HasZero instead.
	namingTS := ts.Remove(tileset.Zero)

	// Step 2: fold onto the canonical board symmetry unless disabled.
	morph := identityMorphism()
	workingTS := ts
	if !cfg.NoMorph {
		morph = namingTS.CanonicalAutomorphism()
		namingTS = namingTS.Morph(morph)
		workingTS = ts.Morph(morph)
	}

	aux := index.BuildAux(workingTS)
	path := filepath.Join(dir, namingTS.ListString()+kind.suffix())

	// Step 3: try the exact requested kind.
	h, err := openExact(ctx, aux, path, kind, driver)
	if err == nil {
		return &Loaded{Heuristic: h, Morphism: morph}, nil
	}
	if !perr.Is(err, perr.NotFound) {
		return nil, err
	}
	if cfg.Verbose {
		sink.Printf("heuristic.Open: %s not found for %s", kind, namingTS.ListString())
	}

	// Step 4: retry with a similar representation.
	if cfg.AcceptSimilar {
		if alt, ok := kind.similar(); ok {
			altPath := filepath.Join(dir, namingTS.ListString()+alt.suffix())
			h, err := openExact(ctx, aux, altPath, alt, driver)
			if err == nil {
				sink.Printf("heuristic.Open: using similar representation %s for %s", alt, namingTS.ListString())
				return &Loaded{Heuristic: h, Morphism: morph}, nil
			}
			if !perr.Is(err, perr.NotFound) {
				return nil, err
			}
		}
	}

	// Step 5: create if requested.
	if cfg.Create {
		h, err := create(ctx, aux, path, kind, driver, sink)
		if err != nil {
			return nil, err
		}
		return &Loaded{Heuristic: h, Morphism: morph}, nil
	}

	// Step 6: give up.
	return nil, perr.New(perr.NotFound, op, fmt.Errorf("no %s file for tileset %s under %s", kind, namingTS.ListString(), dir))
}

// openExact attempts to open an existing file of exactly the given kind.
func openExact(ctx context.Context, aux *index.Aux, path string, kind Kind, driver *parallel.Driver) (Heuristic, error) {
	switch kind {
	case FullPdb:
		p, err := pdb.Map(aux, path, mmapfile.ReadOnly)
		if err != nil {
			return nil, err
		}
		return NewFull(p), nil
	case BitPdb:
		bp, err := bitpdb.Load(aux, path)
		if err != nil {
			return nil, err
		}
		return NewBit(bp), nil
	default:
		return nil, perr.New(perr.Usage, "heuristic.openExact", fmt.Errorf("unsupported heuristic kind %s", kind))
	}
}

// create builds a PDB of kind from scratch and persists it to path.
func create(ctx context.Context, aux *index.Aux, path string, kind Kind, driver *parallel.Driver, sink plog.Sink) (Heuristic, error) {
	full, err := pdb.Allocate(aux)
	if err != nil {
		return nil, err
	}
	if err := full.Generate(ctx, driver, sink); err != nil {
		full.Close()
		return nil, err
	}

	switch kind {
	case FullPdb:
		if err := full.Store(path); err != nil {
			sink.Printf("heuristic.create: persisting %s failed: %v (keeping in-memory PDB)", path, err)
		}
		return NewFull(full), nil
	case BitPdb:
		bp := bitpdb.FromPDB(full)
		full.Close()
		if err := bp.Store(path); err != nil {
			sink.Printf("heuristic.create: persisting %s failed: %v (keeping in-memory PDB)", path, err)
		}
		return NewBit(bp), nil
	default:
		full.Close()
		return nil, perr.New(perr.Usage, "heuristic.create", fmt.Errorf("unsupported heuristic kind %s", kind))
	}
}
