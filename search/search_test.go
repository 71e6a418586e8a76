package search

import (
	"context"
	"math/rand"
	"testing"

	"github.com/ajroetker/puzzle24/catalogue"
	"github.com/ajroetker/puzzle24/fsm"
	"github.com/ajroetker/puzzle24/heuristic"
	"github.com/ajroetker/puzzle24/internal/parallel"
	"github.com/ajroetker/puzzle24/puzzle"
	"github.com/ajroetker/puzzle24/tileset"
)

// smallCatalogue builds a one-group, one-PDB catalogue over a few tiles,
// small enough to generate in a test.
func smallCatalogue(t *testing.T) *catalogue.Catalogue {
	t.Helper()
	dir := t.TempDir()
	ts := tileset.Of(0, 1, 2, 5, 6)
	loaded, err := heuristic.Open(context.Background(), dir, ts, heuristic.FullPdb, heuristic.Config{Create: true}, parallel.New(2), nil)
	if err != nil {
		t.Fatalf("heuristic.Open: %v", err)
	}
	cat := catalogue.New()
	idx, err := cat.AddPDB(loaded.Heuristic, ts, loaded.Morphism)
	if err != nil {
		t.Fatalf("AddPDB: %v", err)
	}
	if _, err := cat.AddHeuristic([]int{idx}); err != nil {
		t.Fatalf("AddHeuristic: %v", err)
	}
	return cat
}

// replay applies path's moves to p in order and returns the resulting
// puzzle, failing the test if any move isn't legal from the current
// zero position.
func replay(t *testing.T, p puzzle.Puzzle, path []int) puzzle.Puzzle {
	t.Helper()
	for _, move := range path {
		legal := false
		for _, m := range p.LegalMoves() {
			if m == move {
				legal = true
				break
			}
		}
		if !legal {
			t.Fatalf("move %d is not legal from zero position %d", move, p.ZeroPos())
		}
		p.Apply(move)
	}
	return p
}

// S2: an already-solved puzzle returns a length-0 path.
func TestSolveAlreadySolvedReturnsEmptyPath(t *testing.T) {
	cat := smallCatalogue(t)
	defer cat.Close()

	path, ok := Solve(cat, fsm.Simple, puzzle.Solved())
	if !ok {
		t.Fatal("Solve on an already-solved puzzle reported unsolvable")
	}
	if len(path) != 0 {
		t.Fatalf("len(path) = %d, want 0", len(path))
	}
}

// S3: applying moves [5, 0] to the solved puzzle is blank-down then
// blank-up, which cancels back to solved; both pruners must return a
// solution and never fail.
func TestSolveCancelingMovesReturnsEmptyPath(t *testing.T) {
	cat := smallCatalogue(t)
	defer cat.Close()

	for _, pruner := range []fsm.Pruner{fsm.Simple, fsm.Dummy} {
		root := puzzle.Solved()
		root.Apply(5)
		root.Apply(0)
		if !root.IsSolved() {
			t.Fatal("moves [5, 0] from solved should cancel back to solved")
		}

		path, ok := Solve(cat, pruner, root)
		if !ok {
			t.Fatal("Solve reported unsolvable on a solved root")
		}
		if len(path) != 0 {
			t.Fatalf("len(path) = %d, want 0", len(path))
		}
	}
}

// S4: a puzzle scrambled by 30 random legal moves from solved is solved
// by IDA* in at most 30 moves, and the returned path is legal and ends
// solved.
func TestSolveRandomWithinScrambleBound(t *testing.T) {
	cat := smallCatalogue(t)
	defer cat.Close()

	rng := rand.New(rand.NewSource(3))
	root := puzzle.RandomSolvable(30, rng)

	path, ok := Solve(cat, fsm.Simple, root)
	if !ok {
		t.Fatal("Solve reported unsolvable on a scrambled-from-solved puzzle")
	}
	if len(path) > 30 {
		t.Fatalf("len(path) = %d, want <= 30", len(path))
	}

	final := replay(t, root, path)
	if !final.IsSolved() {
		t.Fatal("replaying the returned path does not reach the solved state")
	}
}

// bfsShortestLen does a plain breadth-first search for ground truth,
// used only to check IDA*'s optimality property on small scrambles where
// an exhaustive search is cheap.
func bfsShortestLen(t *testing.T, root puzzle.Puzzle) int {
	t.Helper()
	type node struct {
		p     puzzle.Puzzle
		depth int
	}
	seen := map[[puzzle.N]int]bool{root.Grid(): true}
	queue := []node{{root, 0}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur.p.IsSolved() {
			return cur.depth
		}
		zero := cur.p.ZeroPos()
		for _, move := range cur.p.LegalMoves() {
			next := cur.p
			next.Apply(move)
			grid := next.Grid()
			if seen[grid] {
				continue
			}
			seen[grid] = true
			queue = append(queue, node{next, cur.depth + 1})
		}
		_ = zero
	}
	t.Fatal("bfsShortestLen: exhausted state space without finding solved")
	return -1
}

// IDA* optimality: with an admissible (exact) PDB heuristic and
// fsm.Simple — which only forbids the move that immediately undoes the
// previous one, never a move an optimal path could need — the path
// length IDA* returns matches a brute-force BFS shortest-path length.
func TestSolveMatchesBFSOptimalLength(t *testing.T) {
	cat := smallCatalogue(t)
	defer cat.Close()

	rng := rand.New(rand.NewSource(5))
	for trial := 0; trial < 5; trial++ {
		root := puzzle.RandomSolvable(6, rng)

		path, ok := Solve(cat, fsm.Simple, root)
		if !ok {
			t.Fatalf("trial %d: Solve reported unsolvable", trial)
		}
		want := bfsShortestLen(t, root)
		if len(path) != want {
			t.Fatalf("trial %d: Solve path length %d, want BFS-optimal %d", trial, len(path), want)
		}
	}
}

// fsm_dummy never prunes reversing moves but must still produce a
// correct, if possibly longer, path.
func TestSolveWithDummyPrunerStillFindsLegalPath(t *testing.T) {
	cat := smallCatalogue(t)
	defer cat.Close()

	rng := rand.New(rand.NewSource(11))
	root := puzzle.RandomSolvable(10, rng)

	path, ok := Solve(cat, fsm.Dummy, root)
	if !ok {
		t.Fatal("Solve with fsm.Dummy reported unsolvable")
	}
	final := replay(t, root, path)
	if !final.IsSolved() {
		t.Fatal("replaying the returned path does not reach the solved state")
	}
}
