// Package dijkstra defines core types and configuration options
// for the uniform-cost search over burrow states.
//
// Options:
//
//	– ReturnPath:    if true, record predecessors and return the optimal move sequence.
//	– MaxCost:       optional cap; entries whose total cost would exceed it are never queued.
//	– Logger:        zap logger for progress and outcome (no-op by default).
//	– ProgressEvery: number of expansions between progress log lines.
//	– OnPop:         hook run for every non-stale frontier entry, in pop order.
//
// Errors (sentinel):
//
//	– ErrInvalidState    if the start State was never constructed (zero value).
//	– ErrOptionViolation if an option carries an invalid value.
package dijkstra

import (
	"errors"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/burrow/amphipod"
)

// Sentinel errors returned by Solve.
var (
	// ErrInvalidState indicates a start State that was not built through
	// amphipod.NewState (for example the zero value).
	ErrInvalidState = errors.New("dijkstra: start state is not a valid burrow")

	// ErrOptionViolation indicates an invalid functional option value.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")
)

// Options configures the behavior of Solve.
//
// ReturnPath    – if true, Result.Path holds the optimal moves from start to goal.
// MaxCost       – states whose accumulated cost exceeds this value are not queued.
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
//
// ProgressEvery – emit a debug progress line after this many expansions.
//
//	Must be > 0. Default is 100000.
type Options struct {
	ReturnPath    bool                               // Whether to reconstruct the move sequence
	MaxCost       int64                              // Maximum accumulated cost to explore
	ProgressEvery int                                // Expansions between progress log lines
	Logger        *zap.Logger                        // Structured logger, never nil after DefaultOptions
	OnPop         func(cost int64, s amphipod.State) // Called for every non-stale pop

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// WithReturnPath enables path reconstruction. Without it Result.Path is nil
// and no predecessor table is kept.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxCost caps the accumulated energy explored. A negative value is
// recorded and surfaced as ErrOptionViolation by Solve.
func WithMaxCost(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: MaxCost cannot be negative (%d)", ErrOptionViolation, max)
			return
		}
		o.MaxCost = max
	}
}

// WithLogger sets the logger used for progress and outcome lines.
// A nil logger keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithProgressEvery sets how many expansions pass between progress lines.
func WithProgressEvery(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: ProgressEvery must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.ProgressEvery = n
	}
}

// WithOnPop registers a hook run for every frontier entry that is expanded
// or recognized as the goal. Stale entries are not reported.
func WithOnPop(fn func(cost int64, s amphipod.State)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPop = fn
		}
	}
}

// DefaultOptions returns an Options struct initialized with sensible defaults.
//
// Defaults:
//   - ReturnPath:    false (no predecessor table).
//   - MaxCost:       math.MaxInt64 (explore everything reachable).
//   - ProgressEvery: 100000.
//   - Logger:        zap.NewNop().
//   - OnPop:         no-op.
func DefaultOptions() Options {
	return Options{
		ReturnPath:    false,
		MaxCost:       math.MaxInt64,
		ProgressEvery: 100000,
		Logger:        zap.NewNop(),
		OnPop:         func(int64, amphipod.State) {},
	}
}

// Stats counts the work done by one Solve call.
type Stats struct {
	Popped      int           // Frontier entries removed, stale ones included
	Stale       int           // Entries skipped because a cheaper cost was recorded later
	Expanded    int           // States whose moves were generated
	Pushed      int           // Entries added to the frontier, the start included
	MaxFrontier int           // Largest frontier size observed
	Distinct    int           // States in the best-known-cost table at the end
	Elapsed     time.Duration // Wall time spent inside Solve
}

// Result is the outcome of Solve.
//
// Solved is false when the frontier ran dry without reaching an organized
// State (or every route exceeded MaxCost). That is a normal outcome, not an
// error; Cost and Path are then zero.
type Result struct {
	Solved bool
	Cost   int64
	Path   []amphipod.Move
	Stats  Stats
}
