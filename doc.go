// Package astar provides a generalized A* search over caller-defined state
// spaces: any comparable position type, any successor enumeration, any cost
// function. The library owns no graph representation — the caller supplies
// the graph implicitly through a MoveFunc and the metric through a CostFunc,
// and FindPath returns the resulting path (or reports that none exists).
//
// Overview:
//
//   - FindPath expands positions in order of recorded-cost-so-far plus the
//     caller's cost estimate to the goal, maintaining an open set (discovered,
//     not yet expanded) and an evaluated set (expanded, never re-expanded).
//   - Each expansion enumerates successors via MoveFunc, filters out already
//     evaluated positions, and relaxes the remainder.
//   - The search terminates when the goal is picked from the frontier (found)
//     or the open set empties (ErrNoPath).
//
// When to use:
//
//   - Pathfinding over implicit or lazily generated state spaces where
//     materializing the whole graph up front is impossible or wasteful:
//     puzzles, planners, tile maps, word ladders, routing over generated
//     topologies.
//   - Any search where the node type is naturally a Go value (struct key,
//     int, string) rather than an index into a prebuilt adjacency structure.
//
// Relaxation metric — read this before relying on weights:
//
//   - The recorded cost of a position is its HOP COUNT from start (edge
//     count of the reconstructed predecessor chain), not an accumulated edge
//     weight. Relaxation replaces a predecessor only when the tentative hop
//     count is strictly smaller.
//   - The caller's CostFunc only ranks the frontier: it decides which open
//     position is expanded next, and therefore which of several equal-hop
//     routes is discovered first. It never accumulates into recorded costs.
//   - Consequence: returned paths minimize hops. With a non-uniform metric
//     this is NOT weighted shortest path. The divergence is deliberate and
//     preserved; see Determinism below for controlling tie outcomes.
//
// Path shape:
//
//   - The returned path runs from the position just after start up to and
//     including the goal. Start itself is never included; in particular
//     start == goal yields a found result with an empty path. Callers that
//     want start present must prepend it.
//
// Complexity:
//
//   - Time:  O(V² + V·E) worst case over the reachable portion of the
//     state space — frontier selection is a linear scan of the open set
//     (V per pick, V picks) and each relaxation walks a predecessor chain
//     (up to V per edge).
//   - Space: O(V) for the evaluated set, open set, cost and predecessor
//     maps, plus whatever MoveFunc allocates per call.
//
// Errors (sentinel):
//
//   - ErrNilMoveFunc     if the successor function is nil.
//   - ErrNilCostFunc     if the cost function is nil.
//   - ErrOptionViolation if an option carries an invalid value.
//   - ErrNoPath          if the frontier empties before the goal is reached.
//   - ErrLimitExceeded   if WithMaxExpansions or WithMaxOpenSet trips.
//   - Context errors propagate unchanged when WithContext is used.
//
// API reference:
//
//	func FindPath[P comparable](
//	    move MoveFunc[P],
//	    cost CostFunc[P],
//	    start, goal P,
//	    opts ...Option[P],
//	) (*Result[P], error)
//
//	  - move:  enumerates positions reachable from its argument. Duplicates
//	           in the returned slice are tolerated.
//	  - cost:  estimate between two positions; called as cost(goal, p) while
//	           ranking the frontier. Must be finite and non-negative for the
//	           frontier ordering to be meaningful.
//	  - opts:  WithContext, WithMaxExpansions, WithMaxOpenSet, WithTieBreak,
//	           WithOnExpand, WithOnRelax.
//	  - Result: Path (root-exclusive), Hops (recorded hop count of the
//	           goal), Expanded (number of positions expanded).
//
// Determinism:
//
//   - Frontier ties are broken by map iteration order, which Go randomizes.
//     Searches remain correct but equal-hop outcomes may vary between runs.
//     Supply WithTieBreak with a total order over positions to make every
//     pick, and therefore every returned path, reproducible.
//
// Thread safety:
//
//   - Every FindPath call owns its entire state; concurrent calls are
//     independent. Hooks run on the calling goroutine. MoveFunc and
//     CostFunc must be safe for the caller's own concurrency patterns.
//
// Unbounded state spaces:
//
//   - On an infinite graph with no reachable goal the loop does not
//     terminate on its own. Bound it with WithContext, WithMaxExpansions
//     or WithMaxOpenSet.
package astar
