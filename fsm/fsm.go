// Package fsm implements the move-pruner contract from spec 4.8: a
// deterministic finite automaton, indexed by the zero tile's position,
// that either admits or rejects each candidate move during IDA* search.
//
// REDESIGN FLAGS calls for replacing the original's function-pointer
// driver table with "a tagged variant with a common query interface";
// here there is exactly one interface, Pruner, since neither built-in
// automaton needs more state than State already carries. A richer,
// file-loaded FSM (spec section 6's FSM file format) is out of scope —
// only the in-code fsm_dummy and fsm_simple pruners are implemented.
package fsm

// State is carried in each IDA* search frame. Forbidden is the grid
// position a move must not target because it would immediately undo the
// previous move; -1 means no move is forbidden (the search root).
// fsm_dummy never inspects or updates this field.
type State struct {
	Forbidden int
}

// Start returns the initial state for a search, before any move has been
// made.
func Start() State {
	return State{Forbidden: -1}
}

// Pruner decides whether a move is admissible given the current FSM
// state, and if so, what the next state is.
type Pruner interface {
	// Admit reports whether moving the zero tile from fromZero to move
	// is allowed, and if so, the state to carry after taking it.
	Admit(s State, fromZero, move int) (next State, ok bool)
}

type dummyPruner struct{}

// Dummy is fsm_dummy: it admits every move.
var Dummy Pruner = dummyPruner{}

func (dummyPruner) Admit(s State, fromZero, move int) (State, bool) {
	return s, true
}

type simplePruner struct{}

// Simple is fsm_simple: it rejects immediately reversing the previous
// move (moving the zero tile straight back to where it just came from).
var Simple Pruner = simplePruner{}

func (simplePruner) Admit(s State, fromZero, move int) (State, bool) {
	if move == s.Forbidden {
		return s, false
	}
	return State{Forbidden: fromZero}, true
}
