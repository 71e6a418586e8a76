// Package search implements IDA*, iterative deepening on f = g + h,
// driven by a catalogue's admissible heuristic and an fsm.Pruner (spec
// 4.8).
//
// Search is single-threaded and non-interruptible per spec section 5:
// "Search queries are synchronous and non-interruptible from inside the
// algorithm; callers impose external time limits by killing the
// process." There is no context.Context parameter here for that reason —
// the one place this module spawns goroutines is internal/parallel, used
// only by PDB construction and verification.
package search

import (
	"github.com/ajroetker/puzzle24/catalogue"
	"github.com/ajroetker/puzzle24/fsm"
	"github.com/ajroetker/puzzle24/puzzle"
)

const (
	found    = -1
	infinite = 1 << 30
)

// Solve runs IDA* from root using cat's heuristic and pruner to admit or
// reject candidate moves. It returns the sequence of moves (grid
// positions swapped with the zero tile, in order) from root to the goal,
// and whether a solution was found. Per spec's failure semantics, it
// never returns partially: exactly "found a path" or "unsolvable."
func Solve(cat *catalogue.Catalogue, pruner fsm.Pruner, root puzzle.Puzzle) ([]int, bool) {
	p := root
	var ph catalogue.PartialHVals
	h := cat.PartialHVals(&ph, &p)
	bound := h
	state := fsm.Start()

	for {
		var path []int
		result := dfs(&p, 0, h, bound, ph, state, cat, pruner, &path)
		switch {
		case result == found:
			reverseInts(path)
			return path, true
		case result >= infinite:
			return nil, false
		default:
			bound = result
		}
	}
}

// dfs explores p's subtree at depth g with heuristic value h, bounded by
// bound. It returns found if p leads to a solution (appending the moves
// taken to path on the way back up the stack), or the minimum f value
// seen among branches that exceeded bound — the next iteration's bound,
// per spec's IDA* pseudocode.
func dfs(p *puzzle.Puzzle, g, h, bound int, ph catalogue.PartialHVals, state fsm.State, cat *catalogue.Catalogue, pruner fsm.Pruner, path *[]int) int {
	f := g + h
	if f > bound {
		return f
	}
	if h == 0 && p.IsSolved() {
		return found
	}

	minNext := infinite
	zeroPos := p.ZeroPos()
	for _, move := range p.LegalMoves() {
		nextState, ok := pruner.Admit(state, zeroPos, move)
		if !ok {
			continue
		}

		movedTile := p.Apply(move)
		childPH := ph
		childH := cat.DiffHVals(&childPH, p, movedTile)

		result := dfs(p, g+1, childH, bound, childPH, nextState, cat, pruner, path)
		p.Undo(zeroPos)

		if result == found {
			*path = append(*path, move)
			return found
		}
		if result < minNext {
			minNext = result
		}
	}
	return minNext
}

func reverseInts(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
