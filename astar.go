// Package astar: the FindPath entry point and the search loop tying the
// model operations together.
package astar

import "fmt"

// FindPath runs an A* search from start to goal over the state space
// implied by move, ranking the frontier with cost, and applying any number
// of functional Options.
//
// On success it returns the root-exclusive path to the goal together with
// the goal's recorded hop count and the number of expanded positions. It
// returns ErrNilMoveFunc or ErrNilCostFunc for missing inputs,
// ErrOptionViolation for bad options, ErrNoPath when the frontier empties,
// ErrLimitExceeded when a configured bound trips, the context's error on
// cancellation, or any error returned by the OnExpand hook.
func FindPath[P comparable](
	move MoveFunc[P],
	cost CostFunc[P],
	start, goal P,
	opts ...Option[P],
) (*Result[P], error) {
	// 1) Validate the two mandatory callbacks.
	if move == nil {
		return nil, ErrNilMoveFunc
	}
	if cost == nil {
		return nil, ErrNilCostFunc
	}

	// 2) Build options and surface any invalid one immediately.
	o := DefaultOptions[P]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// 3) Seed the model with start and hand over to the runner.
	r := &runner[P]{
		move: move,
		opts: o,
		goal: goal,
		m:    newModel(start),
		score: func(p P) float64 {
			return cost(goal, p)
		},
	}

	return r.loop()
}

// runner owns the mutable state of a single search.
type runner[P comparable] struct {
	move     MoveFunc[P]
	opts     Options[P]
	goal     P
	score    func(P) float64
	m        *model[P]
	expanded int
}

// loop picks, checks and expands frontier positions until the goal is
// reached, the frontier empties, a bound trips, or the context is done.
func (r *runner[P]) loop() (*Result[P], error) {
	for {
		// cancellation check (once per iteration)
		select {
		case <-r.opts.Ctx.Done():
			return nil, r.opts.Ctx.Err()
		default:
		}

		current, ok := r.m.cheapestOpen(r.score, r.opts.TieBreak)
		if !ok {
			// Frontier exhausted: every position reachable from start has
			// been expanded without meeting the goal.
			return nil, ErrNoPath
		}

		if current == r.goal {
			return &Result[P]{
				Path:     r.m.reconstructPath(current),
				Hops:     r.m.costs[current],
				Expanded: r.expanded,
			}, nil
		}

		if err := r.expand(current); err != nil {
			return nil, err
		}
	}
}

// expand moves current from the open set to the evaluated set, enumerates
// its successors, and relaxes every successor not yet evaluated. Evaluated
// positions never re-enter the open set.
func (r *runner[P]) expand(current P) error {
	if r.opts.MaxExpansions > 0 && r.expanded >= r.opts.MaxExpansions {
		return fmt.Errorf("%w: expansion cap %d reached", ErrLimitExceeded, r.opts.MaxExpansions)
	}

	delete(r.m.open, current)
	r.m.evaluated[current] = true
	r.expanded++
	if err := r.opts.OnExpand(current, r.m.costs[current]); err != nil {
		return fmt.Errorf("astar: OnExpand error at %v: %w", current, err)
	}

	for _, nb := range r.move(current) {
		if r.m.evaluated[nb] {
			continue
		}
		// The relaxation below guarantees a cost entry for nb: a position
		// without one has no prior record, so the commit is unconditional.
		r.m.open[nb] = true
		if hops, committed := r.m.updateCost(current, nb); committed {
			r.opts.OnRelax(current, nb, hops)
		}
	}

	if r.opts.MaxOpenSet > 0 && len(r.m.open) > r.opts.MaxOpenSet {
		return fmt.Errorf("%w: open set grew past %d", ErrLimitExceeded, r.opts.MaxOpenSet)
	}

	return nil
}
