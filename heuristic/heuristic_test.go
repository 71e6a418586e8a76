package heuristic

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ajroetker/puzzle24/internal/parallel"
	"github.com/ajroetker/puzzle24/internal/perr"
	"github.com/ajroetker/puzzle24/tileset"
)

func smallTileset() tileset.Tileset {
	return tileset.Of(0, 1, 2, 5)
}

// TestOpenMissingWithoutCreateIsNotFound covers spec scenario S6's first
// half.
func TestOpenMissingWithoutCreateIsNotFound(t *testing.T) {
	dir := t.TempDir()
	_, err := Open(context.Background(), dir, smallTileset(), FullPdb, Config{}, parallel.New(2), nil)
	if !perr.Is(err, perr.NotFound) {
		t.Fatalf("Open error = %v, want a NotFound error", err)
	}
}

// TestOpenMissingWithCreateSucceeds covers spec scenario S6's second
// half. NoMorph is set so the on-disk name matches ts exactly; folding
// behavior is covered separately by TestOpenDefaultFoldsOntoCanonicalFile.
func TestOpenMissingWithCreateSucceeds(t *testing.T) {
	dir := t.TempDir()
	ts := smallTileset()
	loaded, err := Open(context.Background(), dir, ts, FullPdb, Config{Create: true, NoMorph: true}, parallel.New(2), nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer loaded.Heuristic.Close()

	name := ts.Remove(tileset.Zero).ListString() + ".pdb"
	if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
		t.Fatalf("expected PDB file on disk: %v", err)
	}
}

func TestOpenThenReopenFindsExistingFile(t *testing.T) {
	dir := t.TempDir()
	ts := smallTileset()

	first, err := Open(context.Background(), dir, ts, FullPdb, Config{Create: true, NoMorph: true}, parallel.New(2), nil)
	if err != nil {
		t.Fatalf("first Open: %v", err)
	}
	first.Heuristic.Close()

	second, err := Open(context.Background(), dir, ts, FullPdb, Config{NoMorph: true}, parallel.New(2), nil)
	if err != nil {
		t.Fatalf("second Open: %v", err)
	}
	defer second.Heuristic.Close()

	if second.Heuristic.Kind() != FullPdb {
		t.Fatalf("Kind() = %v, want FullPdb", second.Heuristic.Kind())
	}
}

func TestOpenAcceptSimilarFallsBackToBitPdb(t *testing.T) {
	dir := t.TempDir()
	ts := smallTileset()

	created, err := Open(context.Background(), dir, ts, BitPdb, Config{Create: true, NoMorph: true}, parallel.New(2), nil)
	if err != nil {
		t.Fatalf("create bit pdb: %v", err)
	}
	created.Heuristic.Close()

	loaded, err := Open(context.Background(), dir, ts, FullPdb, Config{AcceptSimilar: true, NoMorph: true}, parallel.New(2), nil)
	if err != nil {
		t.Fatalf("Open with accept_similar: %v", err)
	}
	defer loaded.Heuristic.Close()

	if loaded.Heuristic.Kind() != BitPdb {
		t.Fatalf("Kind() = %v, want BitPdb (the similar representation actually on disk)", loaded.Heuristic.Kind())
	}
}

// TestOpenDefaultFoldsOntoCanonicalFile covers spec 4.7 step 2's default:
// folding is on unless NoMorph is set. A tileset whose own bit-image is
// not already minimal is created once under default Config, then
// re-opened with NoMorph set directly against its canonical name to
// confirm Open actually wrote to the folded path, not ts's own.
func TestOpenDefaultFoldsOntoCanonicalFile(t *testing.T) {
	dir := t.TempDir()
	ts := tileset.Of(20, 21)
	canonical := ts.Canonical()
	if canonical == ts.Remove(tileset.Zero) {
		t.Fatal("test fixture must have a nontrivial canonical image to exercise folding")
	}

	loaded, err := Open(context.Background(), dir, ts, FullPdb, Config{Create: true}, parallel.New(2), nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer loaded.Heuristic.Close()

	if ts.Morph(loaded.Morphism) != canonical {
		t.Fatalf("Loaded.Morphism does not fold ts onto its canonical image")
	}

	name := canonical.ListString() + ".pdb"
	if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
		t.Fatalf("expected PDB file at the canonical path: %v", err)
	}
}
