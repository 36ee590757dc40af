// Package batch runs a set of independent solver.Solve calls
// concurrently. The core solver is single-threaded and pure by
// design (see pkg/anagram/solver); batching many independent word
// lists — every zodiac subset, a directory of word-list files, and so
// on — is the one place this module does real concurrency: a bounded
// goroutine pool with a buffered semaphore for backpressure, pointed
// at solver.Solve.
package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sync"

	"github.com/gitrdm/anagramtree/pkg/anagram/solver"
)

// Job names one independent word list to solve, plus the options to
// solve it with.
type Job struct {
	Name  string
	Words []string
	Opts  []solver.Option
}

// Outcome pairs a Job's name with its result or error.
type Outcome struct {
	Name   string
	Result solver.Result
	Err    error
}

// Pool runs Jobs across a bounded number of worker goroutines.
type Pool struct {
	maxWorkers int
	log        *slog.Logger
}

// NewPool creates a Pool with the given worker count. If maxWorkers is
// <= 0, it defaults to runtime.NumCPU(). log may be nil, in which case
// slog.Default() is used.
func NewPool(maxWorkers int, log *slog.Logger) *Pool {
	if maxWorkers <= 0 {
		maxWorkers = runtime.NumCPU()
	}
	if log == nil {
		log = slog.Default()
	}
	return &Pool{maxWorkers: maxWorkers, log: log}
}

// Run solves every Job concurrently, up to the pool's worker limit,
// and returns one Outcome per Job in the same order Jobs were given.
// A failed Job does not stop the others: per-item failures are
// reported in that Job's Outcome.Err and aggregated, via errors.Join,
// into the second return value so a caller that wants an
// all-or-nothing view can still get one. Jobs not yet started when ctx
// is done get ctx.Err() as their Outcome.Err.
func (p *Pool) Run(ctx context.Context, jobs []Job) ([]Outcome, error) {
	outcomes := make([]Outcome, len(jobs))
	sem := make(chan struct{}, p.maxWorkers)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var errs error

	for i, job := range jobs {
		acquired := false
		if ctx.Err() == nil {
			select {
			case <-ctx.Done():
			case sem <- struct{}{}:
				acquired = true
			}
		}
		if !acquired {
			outcomes[i] = Outcome{Name: job.Name, Err: ctx.Err()}
			mu.Lock()
			errs = errors.Join(errs, ctx.Err())
			mu.Unlock()
			continue
		}

		wg.Add(1)
		go func(i int, job Job) {
			defer wg.Done()
			defer func() { <-sem }()

			p.log.Debug("solving batch item", "name", job.Name, "words", len(job.Words))

			res, err := solver.Solve(solver.Request{Words: job.Words}, job.Opts...)
			if err != nil {
				err = fmt.Errorf("batch item %q: %w", job.Name, err)
			} else {
				p.log.Info("solved batch item",
					"name", job.Name,
					"max_nos", res.Cost.MaxNos,
					"depth", res.Cost.Depth,
					"exhausted", res.Exhausted,
				)
			}

			outcomes[i] = Outcome{Name: job.Name, Result: res, Err: err}
			if err != nil {
				mu.Lock()
				errs = errors.Join(errs, err)
				mu.Unlock()
			}
		}(i, job)
	}

	wg.Wait()
	return outcomes, errs
}
