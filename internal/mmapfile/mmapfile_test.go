package mmapfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ajroetker/puzzle24/internal/perr"
)

func TestOwned(t *testing.T) {
	s := Owned(16)
	defer s.Close()
	if len(s.Bytes()) != 16 {
		t.Fatalf("len = %d, want 16", len(s.Bytes()))
	}
	s.Bytes()[3] = 42
	if s.Bytes()[3] != 42 {
		t.Fatal("write through Bytes() did not stick")
	}
}

func TestMapSharedRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.pdb")

	s, err := Map(path, 64, Shared)
	if err != nil {
		t.Fatalf("Map(Shared) = %v", err)
	}
	for i := range s.Bytes() {
		s.Bytes()[i] = byte(i)
	}
	if err := Sync(s); err != nil {
		t.Fatalf("Sync = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close = %v", err)
	}

	ro, err := Map(path, 64, ReadOnly)
	if err != nil {
		t.Fatalf("Map(ReadOnly) = %v", err)
	}
	defer ro.Close()
	for i, b := range ro.Bytes() {
		if b != byte(i) {
			t.Fatalf("byte %d = %d, want %d", i, b, byte(i))
		}
	}
}

func TestMapNotFound(t *testing.T) {
	_, err := Map(filepath.Join(t.TempDir(), "missing.pdb"), 16, ReadOnly)
	if !perr.Is(err, perr.NotFound) {
		t.Fatalf("err = %v, want NotFound", err)
	}
}

func TestMapWrongSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wrong.pdb")
	if err := os.WriteFile(path, make([]byte, 10), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Map(path, 64, ReadOnly)
	if !perr.Is(err, perr.Malformed) {
		t.Fatalf("err = %v, want Malformed", err)
	}
}
