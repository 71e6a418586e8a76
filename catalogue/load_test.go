package catalogue

import (
	"context"
	"strings"
	"testing"

	"github.com/ajroetker/puzzle24/heuristic"
	"github.com/ajroetker/puzzle24/internal/parallel"
)

func TestLoadBuildsGroupsFromSpec(t *testing.T) {
	dir := t.TempDir()
	specs, err := ParseSpec(strings.NewReader("01,02,05\n01,02,05+06,07\n"))
	if err != nil {
		t.Fatalf("ParseSpec: %v", err)
	}

	cat, err := Load(context.Background(), dir, specs, heuristic.FullPdb, heuristic.Config{Create: true}, parallel.New(2), nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	defer cat.Close()

	if len(cat.groups) != 2 {
		t.Fatalf("len(groups) = %d, want 2", len(cat.groups))
	}
	if len(cat.pdbs) != 2 {
		t.Fatalf("len(pdbs) = %d, want 2 (the shared {1,2,5} tileset opened once)", len(cat.pdbs))
	}
	if len(cat.groups[1]) != 2 {
		t.Fatalf("second group should reference 2 PDBs, got %d", len(cat.groups[1]))
	}
}
