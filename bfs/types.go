// Package bfs provides tunable options and error definitions
// for breadth-first exploration of burrow states.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/burrow/amphipod"
)

// Sentinel errors for BFS execution.
var (
	// ErrInvalidState is returned when the start State was never constructed.
	ErrInvalidState = errors.New("bfs: start state is not a valid burrow")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNotReached is returned by PathTo for a State the walk never saw.
	ErrNotReached = errors.New("bfs: state not reached")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a State. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(s amphipod.State, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this many moves.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// MaxStates, if > 0, stops enqueueing once this many States are known.
	MaxStates int

	// FilterMove can skip moves by returning false.
	FilterMove func(m amphipod.Move) bool

	// StopAtGoal ends the walk as soon as an organized State is dequeued.
	StopAtGoal bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - no depth or state limit
//   - no filtering (all moves allowed)
//   - no-op OnVisit
//   - full walk (StopAtGoal == false).
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:        context.Background(),
		OnVisit:    func(amphipod.State, int) error { return nil },
		FilterMove: func(amphipod.Move) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(s amphipod.State, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given move count.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithMaxStates bounds the number of distinct States recorded.
func WithMaxStates(n int) Option {
	return func(o *BFSOptions) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxStates cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxStates = n
	}
}

// WithFilterMove skips moves when fn returns false.
func WithFilterMove(fn func(m amphipod.Move) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterMove = fn
		}
	}
}

// WithStopAtGoal ends the walk at the first organized State.
func WithStopAtGoal() Option {
	return func(o *BFSOptions) {
		o.StopAtGoal = true
	}
}

// BFSResult holds the outcome of a walk:
//   - Levels: number of States first reached after i moves, Levels[0] == 1.
//   - Depth:  map from State to its move count from the start.
//   - Parent: map from State to the State it was first reached from.
//   - FewestMoves: move count of the shallowest organized State, or -1.
//   - Truncated: true if MaxDepth or MaxStates cut the walk short.
type BFSResult struct {
	Levels      []int
	Depth       map[amphipod.State]int
	Parent      map[amphipod.State]amphipod.State
	FewestMoves int
	Goal        amphipod.State
	Truncated   bool

	start amphipod.State
	via   map[amphipod.State]amphipod.Move
}

// Reached reports how many distinct States the walk recorded.
func (r *BFSResult) Reached() int { return len(r.Depth) }

// PathTo reconstructs the moves from the start State to dest.
// Returns ErrNotReached if dest was not reached.
func (r *BFSResult) PathTo(dest amphipod.State) ([]amphipod.Move, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, ErrNotReached
	}
	// build reversed path
	var path []amphipod.Move
	for cur := dest; cur != r.start; {
		path = append(path, r.via[cur])
		cur = r.Parent[cur]
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
