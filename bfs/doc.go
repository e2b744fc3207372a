// Package bfs provides breadth-first exploration of burrow states,
// returning move-count distances, parent links, and per-level counts.
//
// What
//
//   - Explore States in non-decreasing move count from a start State.
//     Every legal move is one edge regardless of its energy.
//   - Returns a BFSResult containing:
//   - Levels: how many States are first reached after i moves
//   - Depth: map from State → move count from start
//   - Parent: map from State → its predecessor in the BFS tree
//   - FewestMoves: depth of the shallowest organized State (-1 if none)
//   - Hooks and limits: OnVisit (may abort), FilterMove, MaxDepth, MaxStates,
//     StopAtGoal.
//
// Why
//
//   - The fewest-moves solution is usually not the cheapest one; comparing
//     both shows how much the energy weights shape the answer.
//   - Level counts describe the size of the state space the energy search
//     has to cope with.
//
// Determinism
//
//	State.Moves yields moves in a fixed order, and BFS enqueues them in that
//	order, so the visit sequence and the Parent links are reproducible.
//
// Complexity (V = reachable States, E = generated moves)
//
//   - Time:   O(V + E)
//   - Memory: O(V)       (queue, Depth and Parent maps)
//
// Usage
//
//	res, err := bfs.BFS(start, bfs.WithStopAtGoal())
//	if err != nil {
//		// ErrInvalidState, ErrOptionViolation, ctx errors or hook errors
//	}
//	path, _ := res.PathTo(res.Goal)
//
// Options
//
//   - DefaultOptions(): background Context, no-op hook, no limits, no filtering.
//   - WithContext(ctx):      cancellation, checked once per dequeued State.
//   - WithMaxDepth(d):       do not expand beyond d moves (d > 0).
//   - WithMaxStates(n):      stop recording new States after n.
//   - WithFilterMove(fn):    skip moves for which fn returns false.
//   - WithOnVisit(fn):       hook during visit; returning error aborts BFS.
//   - WithStopAtGoal():      end at the first organized State.
//
// Errors
//
//   - ErrInvalidState     if the start State is the zero value.
//   - ErrOptionViolation  if an Option is invalid (e.g. negative MaxDepth).
//   - ErrNotReached       from PathTo for an unseen State.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
