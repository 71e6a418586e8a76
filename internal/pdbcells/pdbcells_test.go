package pdbcells

import (
	"sync"
	"testing"
)

func TestCASIfUnreachedSetsOnceFromUnreached(t *testing.T) {
	table := Wrap(make([]byte, 4))
	table.StoreRelaxed(0, Unreached)

	if ok := table.CASIfUnreached(0, 3); !ok {
		t.Fatal("first CASIfUnreached on an Unreached cell should succeed")
	}
	if got := table.LoadRelaxed(0); got != 3 {
		t.Fatalf("cell = %d, want 3", got)
	}
	if ok := table.CASIfUnreached(0, 5); ok {
		t.Fatal("second CASIfUnreached on an already-set cell should fail")
	}
	if got := table.LoadRelaxed(0); got != 3 {
		t.Fatalf("losing CASIfUnreached must not modify the cell: got %d, want 3", got)
	}
}

// TestCASIfUnreachedPicksExactlyOneWinner races many goroutines against
// the same Unreached cell with distinct candidate values: exactly one may
// win, and the cell must end up holding that winner's value, not some
// torn mix of two writers' bytes.
func TestCASIfUnreachedPicksExactlyOneWinner(t *testing.T) {
	const n = 64
	table := Wrap(make([]byte, 1))
	table.StoreRelaxed(0, Unreached)

	var wg sync.WaitGroup
	wins := make([]bool, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			wins[i] = table.CASIfUnreached(0, byte(i+1))
		}(i)
	}
	wg.Wait()

	winner := -1
	for i, won := range wins {
		if won {
			if winner != -1 {
				t.Fatalf("both goroutine %d and %d won CASIfUnreached on the same cell", winner, i)
			}
			winner = i
		}
	}
	if winner == -1 {
		t.Fatal("no goroutine won CASIfUnreached")
	}
	if got := table.LoadRelaxed(0); got != byte(winner+1) {
		t.Fatalf("cell = %d, want the winner's value %d", got, winner+1)
	}
}

// TestCASIfUnreachedStripesDoNotAliasSameStripeCells guards against a
// striping scheme that accidentally serializes unrelated cells into
// incorrect results (as opposed to just contention): writes to two
// distinct cells that hash to the same stripe (0 and numStripes) must
// still land independently.
func TestCASIfUnreachedStripesDoNotAliasSameStripeCells(t *testing.T) {
	table := Wrap(make([]byte, numStripes+1))
	for i := range table.data {
		table.StoreRelaxed(i, Unreached)
	}

	if !table.CASIfUnreached(0, 7) {
		t.Fatal("CASIfUnreached on cell 0 should succeed")
	}
	if !table.CASIfUnreached(numStripes, 9) {
		t.Fatal("CASIfUnreached on cell numStripes (same stripe as cell 0) should independently succeed")
	}
	if got := table.LoadRelaxed(0); got != 7 {
		t.Fatalf("cell 0 = %d, want 7", got)
	}
	if got := table.LoadRelaxed(numStripes); got != 9 {
		t.Fatalf("cell %d = %d, want 9", numStripes, got)
	}
}
