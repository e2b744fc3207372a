// Package batch solves several burrows concurrently.
//
// Each puzzle runs its own single-threaded search with a private frontier
// and cost table; only whole puzzles are spread across workers. Outcomes
// come back in input order.
package batch

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/burrow/amphipod"
	"github.com/katalvlaran/burrow/dijkstra"
	"github.com/katalvlaran/burrow/metrics"
)

// ErrNoPuzzles is returned by Run when given nothing to do.
var ErrNoPuzzles = errors.New("batch: no puzzles")

// Puzzle is one named starting State.
type Puzzle struct {
	Name  string
	State amphipod.State
}

// Outcome pairs a Puzzle with its search result.
type Outcome struct {
	Puzzle  Puzzle
	RunID   string
	Result  *dijkstra.Result
	Elapsed time.Duration
}

// Runner spreads puzzles over a bounded number of goroutines.
type Runner struct {
	// Workers caps concurrent searches; values < 1 mean runtime.NumCPU().
	Workers int
	// Logger receives one line per finished puzzle; nil means no logging.
	Logger *zap.Logger
	// Metrics, if set, observes every search.
	Metrics *metrics.Collector
	// Options are passed to every dijkstra.Solve call. A WithLogger here is
	// superseded by Logger with the run fields attached.
	Options []dijkstra.Option
}

// Run solves every puzzle and returns the outcomes in input order.
//
// Cancellation is checked before each puzzle starts; a search already
// running is allowed to finish. The first search error (or ctx error)
// aborts the remaining puzzles and is returned.
func (r *Runner) Run(ctx context.Context, puzzles []Puzzle) ([]Outcome, error) {
	if len(puzzles) == 0 {
		return nil, ErrNoPuzzles
	}

	logger := r.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	workers := r.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	out := make([]Outcome, len(puzzles))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	for i := range puzzles {
		i := i // per-iteration copy; go.mod targets go 1.21 (pre-1.22 loop semantics)
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}

			p := puzzles[i]
			id := uuid.NewString()
			log := logger.With(zap.String("run_id", id), zap.String("puzzle", p.Name))

			opts := make([]dijkstra.Option, 0, len(r.Options)+1)
			opts = append(opts, r.Options...)
			opts = append(opts, dijkstra.WithLogger(log))
			began := time.Now()
			res, err := dijkstra.Solve(p.State, opts...)
			elapsed := time.Since(began)
			r.Metrics.Observe(res, elapsed)
			if err != nil {
				log.Error("search failed", zap.Error(err))
				return fmt.Errorf("batch: %s: %w", p.Name, err)
			}

			log.Info("search finished",
				zap.Bool("solved", res.Solved),
				zap.Int64("cost", res.Cost),
				zap.Int("expanded", res.Stats.Expanded),
				zap.Duration("elapsed", elapsed))
			out[i] = Outcome{Puzzle: p, RunID: id, Result: res, Elapsed: elapsed}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
