package check

import (
	"sort"

	"github.com/katalvlaran/bvcheck/propast"
	"github.com/katalvlaran/bvcheck/space"
)

// exJoin folds the join of z over id's direct successors, returning the
// successor that produced the result, for use by both computeEG and
// computeEU's existential-next step.
func (c *LabellingComputer) exJoin(id space.StateId, z map[space.StateId]TriState) (TriState, *space.StateId) {
	successors := append([]space.Edge{}, c.sp.Successors(id)...)
	sort.Slice(successors, func(i, j int) bool { return successors[i].To < successors[j].To })

	value := False
	var next *space.StateId
	for _, e := range successors {
		if z[e.To] > value {
			value = z[e.To]
			to := e.To
			next = &to
		}
	}
	return value, next
}

// computeEG evaluates EG(inner) as the greatest fixed point of
// Z = inner meet EX(Z), a monotone decreasing Kleene iteration starting
// from Z = True everywhere: the classic CheckEG worklist procedure lifted
// from Boolean sets to the three-value lattice.
func (c *LabellingComputer) computeEG(entry propast.Entry) (map[space.StateId]Label, error) {
	innerUpdate, err := c.Compute(entry.Inner)
	if err != nil {
		return nil, err
	}
	innerInfo := c.checks[entry.Inner]
	states := c.sp.States()

	z := map[space.StateId]TriState{}
	next := map[space.StateId]*space.StateId{}
	for _, id := range states {
		z[id] = True
	}

	for changed := true; changed; {
		changed = false
		for _, id := range states {
			innerVal := c.pointLookup(innerUpdate, innerInfo, id).Value
			exVal, exNext := c.exJoin(id, z)
			newVal := meet(innerVal, exVal)
			if newVal != z[id] {
				z[id] = newVal
				next[id] = exNext
				changed = true
			}
		}
	}

	update := map[space.StateId]Label{}
	for _, id := range states {
		l := newLabel()
		l.History[c.historyIndex] = HistoryPoint{Value: z[id], Next: next[id]}
		update[id] = l
	}
	return update, nil
}

// computeEU evaluates EU(hold,until) as the least fixed point of
// Z = until join (hold meet EX(Z)), a monotone increasing Kleene iteration
// starting from Z = False everywhere: the classic CheckEU worklist
// procedure lifted to the three-value lattice. A state satisfied directly
// by until carries no Next (the culprit walk, if any, continues into
// until itself); one reached through hold-and-next records the successor
// that justified it.
func (c *LabellingComputer) computeEU(entry propast.Entry) (map[space.StateId]Label, error) {
	holdUpdate, err := c.Compute(entry.Hold)
	if err != nil {
		return nil, err
	}
	untilUpdate, err := c.Compute(entry.Until)
	if err != nil {
		return nil, err
	}
	holdInfo := c.checks[entry.Hold]
	untilInfo := c.checks[entry.Until]
	states := c.sp.States()

	z := map[space.StateId]TriState{}
	next := map[space.StateId]*space.StateId{}
	fromUntil := map[space.StateId]bool{}
	for _, id := range states {
		z[id] = False
	}

	for changed := true; changed; {
		changed = false
		for _, id := range states {
			holdPoint := c.pointLookup(holdUpdate, holdInfo, id)
			untilPoint := c.pointLookup(untilUpdate, untilInfo, id)
			exVal, exNext := c.exJoin(id, z)
			nextVal := meet(holdPoint.Value, exVal)

			var newVal TriState
			var newNext *space.StateId
			var newFromUntil bool
			if untilPoint.Value >= nextVal {
				newVal = untilPoint.Value
				newFromUntil = true
			} else {
				newVal = nextVal
				newNext = exNext
			}
			if newVal != z[id] || newFromUntil != fromUntil[id] {
				z[id] = newVal
				next[id] = newNext
				fromUntil[id] = newFromUntil
				changed = true
			}
		}
	}

	update := map[space.StateId]Label{}
	for _, id := range states {
		l := newLabel()
		l.History[c.historyIndex] = HistoryPoint{Value: z[id], Next: next[id]}
		update[id] = l
	}
	return update, nil
}
