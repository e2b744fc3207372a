// Package dijkstra implements uniform-cost search over burrow states.
//
// The graph is implicit: vertices are amphipod.State values and edges are
// produced on demand by State.Moves. Solve pops states in order of
// accumulated energy and returns as soon as an organized State comes off
// the frontier; with non-negative move costs that first goal is optimal.
//
// Notes on implementation choices:
//
//   - The best-known-cost table is a map keyed by State value; the reachable
//     space is finite but far too sparse to index densely.
//   - We use a “lazy” decrease-key strategy: improved states are pushed again
//     and outdated heap entries are skipped when popped.
//   - The heap orders by cost only; the State is an opaque payload.
package dijkstra

import (
	"container/heap"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/burrow/amphipod"
)

// Solve returns the minimum energy needed to organize start.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. start must be a constructed State (ErrInvalidState).
//
// If no organized State is reachable, Result.Solved is false and err is nil.
//
// Complexity:
//
//   - Time:  O((V + E) log V) over the reachable states V and moves E.
//   - Space: O(V + E) for the cost table and the lazy frontier.
func Solve(start amphipod.State, opts ...Option) (*Result, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate the start State
	if _, err := amphipod.NewState(start.Hall(), roomsOf(start)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidState, err)
	}

	// 3) Prepare the runner with its own table and frontier.
	r := &runner{
		options: cfg,
		log:     cfg.Logger.With(zap.Int("depth", start.Depth())),
		best:    make(map[amphipod.State]int64),
		pq:      make(statePQ, 0, 1024),
		began:   time.Now(),
	}
	if cfg.ReturnPath {
		r.prev = make(map[amphipod.State]step)
	}

	// 4) Seed and run.
	r.init(start)
	res := r.process()
	res.Stats = r.stats
	res.Stats.Distinct = len(r.best)
	res.Stats.Elapsed = time.Since(r.began)

	if res.Solved {
		r.log.Debug("burrow organized",
			zap.Int64("cost", res.Cost),
			zap.Int("expanded", r.stats.Expanded),
			zap.Int("distinct", res.Stats.Distinct),
			zap.Duration("elapsed", res.Stats.Elapsed))
	} else {
		r.log.Debug("frontier exhausted without an organized burrow",
			zap.Int("expanded", r.stats.Expanded),
			zap.Int("distinct", res.Stats.Distinct))
	}

	return res, nil
}

func roomsOf(s amphipod.State) [amphipod.RoomCount]amphipod.Room {
	var rooms [amphipod.RoomCount]amphipod.Room
	for i := range rooms {
		rooms[i] = s.Room(i)
	}
	return rooms
}

// step is a predecessor record: the parent State and the move out of it.
type step struct {
	parent amphipod.State
	move   amphipod.Move
}

// runner holds the mutable state for a single Solve execution.
type runner struct {
	options Options                  // Configuration options
	log     *zap.Logger              // Logger with run fields attached
	best    map[amphipod.State]int64 // State → best known accumulated cost
	prev    map[amphipod.State]step  // State → how it was best reached; nil unless ReturnPath
	pq      statePQ                  // Min-heap of frontier entries
	stats   Stats                    // Work counters
	began   time.Time                // Start of the run
	start   amphipod.State           // Seed, the end of path reconstruction
}

// init records the start at cost zero and pushes it onto the frontier.
func (r *runner) init(start amphipod.State) {
	r.start = start
	r.best[start] = 0
	heap.Init(&r.pq)
	r.push(0, start)

	r.log.Debug("search started", zap.Stringer("start", start))
}

func (r *runner) push(cost int64, s amphipod.State) {
	heap.Push(&r.pq, &stateItem{state: s, cost: cost})
	r.stats.Pushed++
	if n := r.pq.Len(); n > r.stats.MaxFrontier {
		r.stats.MaxFrontier = n
	}
}

// process is the main loop. It pops the cheapest entry, returns on the first
// organized State, skips stale entries and relaxes the moves of the rest.
func (r *runner) process() *Result {
	for r.pq.Len() > 0 {
		// 1) Pop the cheapest entry.
		item := heap.Pop(&r.pq).(*stateItem)
		r.stats.Popped++

		// 2) A cheaper route was recorded after this entry was queued.
		if item.cost > r.best[item.state] {
			r.stats.Stale++
			continue
		}
		r.options.OnPop(item.cost, item.state)

		// 3) Goal: the first organized pop is the optimum.
		if item.state.Organized() {
			res := &Result{Solved: true, Cost: item.cost}
			if r.prev != nil {
				res.Path = r.path(item.state)
			}
			return res
		}

		// 4) Expand.
		r.relax(item.cost, item.state)
	}

	return &Result{}
}

// relax pushes every successor of s whose total cost beats the table.
func (r *runner) relax(cost int64, s amphipod.State) {
	r.stats.Expanded++
	if r.stats.Expanded%r.options.ProgressEvery == 0 {
		r.log.Debug("search progress",
			zap.Int("expanded", r.stats.Expanded),
			zap.Int("frontier", r.pq.Len()),
			zap.Int("distinct", len(r.best)),
			zap.Int64("cost", cost))
	}

	var m amphipod.Move
	var total int64
	for _, m = range s.Moves() {
		total = cost + m.Cost
		if total > r.options.MaxCost {
			continue
		}
		// Absent entries count as infinite.
		if known, ok := r.best[m.Next]; ok && total >= known {
			continue
		}
		r.best[m.Next] = total
		if r.prev != nil {
			r.prev[m.Next] = step{parent: s, move: m}
		}
		r.push(total, m.Next)
	}
}

// path walks the predecessor table back from goal to the start.
func (r *runner) path(goal amphipod.State) []amphipod.Move {
	var moves []amphipod.Move
	for cur := goal; cur != r.start; {
		st, ok := r.prev[cur]
		if !ok {
			break
		}
		moves = append(moves, st.move)
		cur = st.parent
	}
	for i, j := 0, len(moves)-1; i < j; i, j = i+1, j-1 {
		moves[i], moves[j] = moves[j], moves[i]
	}

	return moves
}

// stateItem is a frontier entry. Only cost takes part in ordering.
type stateItem struct {
	state amphipod.State
	cost  int64
}

// statePQ is a min-heap of *stateItem ordered by cost ascending.
// Outdated entries stay in the heap and are skipped when popped.
type statePQ []*stateItem

// Len returns the number of items in the heap.
func (pq statePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller cost → higher priority.
func (pq statePQ) Less(i, j int) bool { return pq[i].cost < pq[j].cost }

// Swap swaps two elements in the heap.
func (pq statePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *stateItem.
func (pq *statePQ) Push(x interface{}) { *pq = append(*pq, x.(*stateItem)) }

// Pop removes and returns the last element; heap.Pop has already moved the
// minimum there.
func (pq *statePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
