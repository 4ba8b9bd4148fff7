// Package astar: the search-state model shared by the frontier selector,
// the cost relaxer and the path reconstructor.
package astar

import "fmt"

// model holds the per-search state. One model is created per FindPath call,
// mutated only by the owning runner, and discarded when the search ends.
type model[P comparable] struct {
	evaluated map[P]bool    // expanded positions; never re-expanded
	open      map[P]bool    // discovered positions pending expansion
	costs     map[P]float64 // best known hop count from start
	cameFrom  map[P]P       // predecessor on the best known path
}

// newModel seeds the state with the start position: open = {start},
// costs[start] = 0, everything else empty.
func newModel[P comparable](start P) *model[P] {
	return &model[P]{
		evaluated: make(map[P]bool),
		open:      map[P]bool{start: true},
		costs:     map[P]float64{start: 0},
		cameFrom:  make(map[P]P),
	}
}

// cheapestOpen scans the open set and returns the position minimizing
// costs[p] + score(p). Ties go to the first position encountered in map
// order unless less is non-nil, in which case less decides.
// The second return is false when the open set is empty.
//
// Every open position must have a recorded cost: positions only enter the
// open set through the runner, which writes costs first. A missing entry is
// a logic fault, not a runtime condition, and panics.
func (m *model[P]) cheapestOpen(score func(P) float64, less func(a, b P) bool) (P, bool) {
	var (
		best      P
		bestTotal float64
		found     bool
	)
	for p := range m.open {
		c, ok := m.costs[p]
		if !ok {
			panic(fmt.Sprintf("astar: open position %v has no recorded cost", p))
		}
		total := c + score(p)
		switch {
		case !found:
			best, bestTotal, found = p, total, true
		case total < bestTotal:
			best, bestTotal = p, total
		case total == bestTotal && less != nil && less(p, best):
			best = p
		}
	}

	return best, found
}

// chainLen returns the hop count of the predecessor chain ending at p:
// the number of links followed until a position with no entry. Iterative on
// purpose — chain length equals path length, which is unbounded.
func (m *model[P]) chainLen(p P) int {
	n := 0
	for {
		prev, ok := m.cameFrom[p]
		if !ok {
			return n
		}
		n++
		p = prev
	}
}

// updateCost relaxes neighbour through current. The tentative metric is the
// hop count of the path to neighbour with current as its predecessor, i.e.
// chainLen(current) + 1 — the caller's cost function plays no part here.
// The update commits only when neighbour has no recorded cost yet or the
// tentative hop count is strictly smaller; otherwise the model is left
// untouched. Returns the tentative hop count and whether it was committed.
func (m *model[P]) updateCost(current, neighbour P) (float64, bool) {
	tentative := float64(m.chainLen(current) + 1)
	if prev, ok := m.costs[neighbour]; ok && tentative >= prev {
		return tentative, false
	}
	m.costs[neighbour] = tentative
	m.cameFrom[neighbour] = current

	return tentative, true
}

// reconstructPath walks predecessor links backward from goal until a
// position with no entry, then reverses the collected positions into a
// forward path. The chain root (principally start) carries no entry and is
// therefore never part of the result; a goal with no entry yields an empty
// path. The predecessor forest is acyclic by construction, so the walk
// always terminates.
func (m *model[P]) reconstructPath(goal P) []P {
	var path []P
	for cur := goal; ; {
		prev, ok := m.cameFrom[cur]
		if !ok {
			break
		}
		path = append(path, cur)
		cur = prev
	}
	// reverse into root → goal order
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
