// Package astar: function types, result shape, sentinel errors and
// configuration options for the search.
package astar

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors returned by FindPath.
var (
	// ErrNilMoveFunc is returned when the successor function is nil.
	ErrNilMoveFunc = errors.New("astar: move function is nil")

	// ErrNilCostFunc is returned when the cost function is nil.
	ErrNilCostFunc = errors.New("astar: cost function is nil")

	// ErrOptionViolation is returned when an option carries an invalid value
	// (for example a negative expansion limit).
	ErrOptionViolation = errors.New("astar: invalid option supplied")

	// ErrNoPath is returned when the open set empties before the goal is
	// reached. A malformed successor function and a genuinely disconnected
	// goal surface identically.
	ErrNoPath = errors.New("astar: no path found")

	// ErrLimitExceeded is returned when a configured search bound
	// (WithMaxExpansions, WithMaxOpenSet) trips before the search resolves.
	ErrLimitExceeded = errors.New("astar: search limit exceeded")
)

// CostFunc estimates the cost between two positions. During frontier
// ranking it is invoked as cost(goal, candidate). Estimates must be finite
// and non-negative for the frontier ordering to be meaningful.
type CostFunc[P comparable] func(goal, candidate P) float64

// MoveFunc enumerates the positions reachable from p in one step.
// Returning a nil or empty slice marks p as a dead end. Duplicate entries
// are tolerated.
type MoveFunc[P comparable] func(p P) []P

// Result holds the outcome of a successful search.
//
// Path runs from the position immediately after start up to and including
// the goal; start itself is never included, so start == goal produces an
// empty Path. Hops is the recorded hop count of the goal (zero when
// start == goal). Expanded counts the positions moved to the evaluated set.
type Result[P comparable] struct {
	Path     []P
	Hops     float64
	Expanded int
}

// Option configures FindPath via functional arguments. An invalid value is
// recorded internally and surfaced as ErrOptionViolation when FindPath runs.
type Option[P comparable] func(*Options[P])

// Options holds parameters and callbacks customizing a search.
type Options[P comparable] struct {
	// Ctx allows cancellation and deadlines; polled once per expansion.
	Ctx context.Context

	// MaxExpansions, if > 0, aborts the search with ErrLimitExceeded once
	// that many positions have been expanded. 0 disables the cap.
	MaxExpansions int

	// MaxOpenSet, if > 0, aborts the search with ErrLimitExceeded when the
	// open set grows past this size. 0 disables the cap.
	MaxOpenSet int

	// TieBreak, when non-nil, orders positions whose frontier totals are
	// equal: the position for which TieBreak(a, b) reports a-before-b wins.
	// Nil leaves ties to map iteration order (nondeterministic).
	TieBreak func(a, b P) bool

	// OnExpand is called when a position is moved to the evaluated set,
	// with its recorded hop count. A returned error aborts the search and
	// propagates to the caller.
	OnExpand func(p P, hops float64) error

	// OnRelax is called after every committed relaxation, with the new
	// predecessor link from→to and the committed hop count.
	OnRelax func(from, to P, hops float64)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no expansion or open-set caps
//   - nondeterministic tie-breaking
//   - no-op hooks.
func DefaultOptions[P comparable]() Options[P] {
	return Options[P]{
		Ctx:           context.Background(),
		MaxExpansions: 0,
		MaxOpenSet:    0,
		TieBreak:      nil,
		OnExpand:      func(P, float64) error { return nil },
		OnRelax:       func(P, P, float64) {},
		err:           nil,
	}
}

// WithContext sets a custom context for cancellation and deadlines.
func WithContext[P comparable](ctx context.Context) Option[P] {
	return func(o *Options[P]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxExpansions caps how many positions the search may expand.
//
//	n > 0: abort with ErrLimitExceeded after n expansions
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions[P comparable](n int) Option[P] {
	return func(o *Options[P]) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithMaxOpenSet caps the size of the open set.
//
//	n > 0: abort with ErrLimitExceeded when the open set exceeds n
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxOpenSet[P comparable](n int) Option[P] {
	return func(o *Options[P]) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxOpenSet cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxOpenSet = n
	}
}

// WithTieBreak installs a total order over positions used to break frontier
// ties deterministically. Passing nil restores the default (map order).
func WithTieBreak[P comparable](less func(a, b P) bool) Option[P] {
	return func(o *Options[P]) {
		o.TieBreak = less
	}
}

// WithOnExpand registers a callback invoked as each position is expanded;
// returning an error from the callback stops the search.
func WithOnExpand[P comparable](fn func(p P, hops float64) error) Option[P] {
	return func(o *Options[P]) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnRelax registers a callback invoked on every committed relaxation.
func WithOnRelax[P comparable](fn func(from, to P, hops float64)) Option[P] {
	return func(o *Options[P]) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}
