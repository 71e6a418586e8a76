// Package plog provides the minimal log sink used across the puzzle24
// packages. It exists so PDB generation, verification, and the heuristic
// loader can report progress without pulling in a logging framework.
package plog

import (
	"log"
	"os"
)

// Sink receives printf-style progress messages. *log.Logger satisfies it.
type Sink interface {
	Printf(format string, args ...any)
}

// nopSink discards every message.
type nopSink struct{}

func (nopSink) Printf(string, ...any) {}

// Nop is a Sink that discards all output.
var Nop Sink = nopSink{}

// Default returns a Sink that writes to stderr with no prefix, each line
// stamped with the standard log date and time, suitable for verbose
// diagnostics from PDB generation or the heuristic loader.
func Default() Sink {
	return log.New(os.Stderr, "", log.LstdFlags)
}

// Pick returns sink if non-nil, otherwise Nop. Callers throughout this
// module accept an optional Sink and use this to avoid nil checks at every
// call site.
func Pick(sink Sink) Sink {
	if sink == nil {
		return Nop
	}
	return sink
}
