// Package dijkstra finds the least energy needed to organize a burrow, using
// uniform-cost search (Dijkstra's algorithm) over an implicit state graph.
//
// Overview:
//
//   - Vertices are amphipod.State values; edges are the legal moves returned by
//     State.Moves, weighted by their energy cost. Nothing is enumerated upfront.
//   - A min-heap frontier ordered purely by accumulated cost drives exploration;
//     a map from State to best-known cost prunes revisits.
//   - The first organized State popped from the frontier carries the optimum,
//     because all move costs are positive.
//
// Key features:
//
//   - Functional options allow fine-tuning behavior without changing the API signature.
//   - ReturnPath: if enabled, keeps a predecessor table and returns the optimal moves.
//   - MaxCost: never queues states beyond the given energy, bounding the search.
//   - Logger: structured zap logging of start, periodic progress and outcome.
//   - OnPop: hook observing every expanded state in pop order.
//
// Outcomes:
//
//   - Result.Solved == true:  Result.Cost is the minimum energy.
//   - Result.Solved == false: the frontier was exhausted; no organized State is
//     reachable (within MaxCost). This is not an error.
//
// Error handling (sentinel errors):
//
//   - ErrInvalidState:
//     Returned if the start State was not built through amphipod.NewState.
//   - ErrOptionViolation:
//     Returned if an option carried an invalid value (negative MaxCost,
//     non-positive ProgressEvery).
//
// API reference:
//
//	func Solve(start amphipod.State, opts ...Option) (*Result, error)
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V) over reachable states V and generated moves E.
//   - Space: O(V + E) for the cost table and the lazy frontier.
//
// Thread safety:
//
//   - Every Solve call owns its frontier and table; concurrent calls on
//     different (or the same) start States are safe.
package dijkstra
