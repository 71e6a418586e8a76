// Package parallel provides the single parallel primitive used by PDB
// construction and verification: split a range [0,n) into contiguous
// chunks and run one worker per chunk, failing hard on the first error.
//
// This is the only place in the module that spawns goroutines; IDA* search
// itself is single-threaded per query (spec section 5).
package parallel

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// MaxJobs bounds the worker count a Driver will ever use, independent of
// whatever value a caller passes to New.
const MaxJobs = 256

// Driver splits chunked range work across a fixed number of workers.
// The zero value is not usable; construct with New.
type Driver struct {
	jobs int
}

// New returns a Driver with the given worker count. jobs <= 0 means 1
// (sequential), matching "default at process start is 1" from the
// REDESIGN FLAGS note on the former global pdb_jobs. jobs is clamped to
// MaxJobs.
func New(jobs int) *Driver {
	if jobs <= 0 {
		jobs = 1
	}
	if jobs > MaxJobs {
		jobs = MaxJobs
	}
	return &Driver{jobs: jobs}
}

// Jobs returns the worker count this Driver was constructed with.
func (d *Driver) Jobs() int {
	return d.jobs
}

// Run splits [0,n) into at most d.Jobs() non-empty contiguous chunks of
// ceil(n/min(d.Jobs(),n)) cells (the last may be shorter) and runs
// fn(lo,hi) for each chunk concurrently. If any invocation returns an error, the
// remaining workers' context is cancelled and Run returns that error (the
// first one observed). Run blocks until every worker has returned.
func (d *Driver) Run(ctx context.Context, n int, fn func(ctx context.Context, lo, hi int) error) error {
	if n <= 0 {
		return nil
	}

	workers := d.jobs
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		return fn(ctx, 0, n)
	}

	chunkSize := (n + workers - 1) / workers

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		lo := w * chunkSize
		hi := lo + chunkSize
		if hi > n {
			hi = n
		}
		if lo >= hi {
			continue
		}
		g.Go(func() error {
			return fn(gctx, lo, hi)
		})
	}
	return g.Wait()
}
