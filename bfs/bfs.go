// Package bfs walks the burrow state graph breadth-first, counting legal
// moves rather than energy.
//
// It answers questions the energy search does not: how many moves the
// shortest solution takes, and how large the reachable state space is
// at each move count.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/burrow/amphipod"
)

// queueItem pairs a State with its BFS depth.
type queueItem struct {
	state amphipod.State
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	opts  BFSOptions
	queue []queueItem
	res   *BFSResult
	done  bool
}

// BFS runs breadth-first search from start, applying any number of
// functional Options.
// Returns ErrInvalidState for an unconstructed start, ErrOptionViolation
// for bad options, the context error on cancellation, or any user-supplied
// hook error. The partial result is returned alongside cancellation and
// hook errors.
func BFS(start amphipod.State, opts ...Option) (*BFSResult, error) {
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if start.Depth() == 0 {
		return nil, ErrInvalidState
	}

	w := &walker{
		opts: o,
		res: &BFSResult{
			Depth:       make(map[amphipod.State]int),
			Parent:      make(map[amphipod.State]amphipod.State),
			FewestMoves: -1,
			start:       start,
			via:         make(map[amphipod.State]amphipod.Move),
		},
	}

	// Seed queue with start (no parent)
	w.enqueue(start, 0)
	// Main loop
	return w.res, w.loop()
}

// enqueue records s at depth d, bumps its level count and adds it to the queue.
func (w *walker) enqueue(s amphipod.State, d int) {
	w.res.Depth[s] = d
	if d == len(w.res.Levels) {
		w.res.Levels = append(w.res.Levels, 0)
	}
	w.res.Levels[d]++
	w.queue = append(w.queue, queueItem{state: s, depth: d})
}

// loop processes the queue until empty, error, goal, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 && !w.done {
		// cancellation check (once per loop)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if w.done {
			break
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// dequeue pops the first item.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	return item
}

// visit notes the first organized State and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	if item.state.Organized() && w.res.FewestMoves < 0 {
		w.res.FewestMoves = item.depth
		w.res.Goal = item.state
		w.done = w.opts.StopAtGoal
	}
	if err := w.opts.OnVisit(item.state, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at depth %d: %w", item.depth, err)
	}
	return nil
}

// enqueueNeighbors applies filtering and the depth and state limits, and
// enqueues each unseen successor. A limit only marks the walk Truncated
// when it actually holds back an unseen State.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	limited := w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth
	for _, m := range item.state.Moves() {
		if !w.opts.FilterMove(m) {
			continue
		}
		if _, seen := w.res.Depth[m.Next]; seen {
			continue
		}
		if limited || (w.opts.MaxStates > 0 && len(w.res.Depth) >= w.opts.MaxStates) {
			w.res.Truncated = true
			return
		}
		w.res.Parent[m.Next] = item.state
		w.res.via[m.Next] = m
		w.enqueue(m.Next, nextDepth)
	}
}
