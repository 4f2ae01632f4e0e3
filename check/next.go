package check

import (
	"sort"

	"github.com/katalvlaran/bvcheck/propast"
	"github.com/katalvlaran/bvcheck/space"
)

// computeNext evaluates EX (isUniversal=false) or AX (isUniversal=true):
// a state's value folds its direct successors' inner values with meet
// (AX) or join (EX), starting from the ground value True (AX is vacuously
// true with no successors) or False (EX is vacuously false with none).
// The successor that last changed the running fold is recorded as the
// resulting HistoryPoint's Next.
func (c *LabellingComputer) computeNext(dirty map[space.StateId]bool, entry propast.Entry, isUniversal bool, update map[space.StateId]Label) error {
	innerUpdate, err := c.Compute(entry.Inner)
	if err != nil {
		return err
	}
	innerInfo := c.checks[entry.Inner]

	full := map[space.StateId]bool{}
	for id := range dirty {
		full[id] = true
	}
	for id := range innerUpdate {
		for _, e := range c.sp.Predecessors(id) {
			full[e.From] = true
		}
	}

	for _, id := range sortedStateIds(full) {
		successors := append([]space.Edge{}, c.sp.Successors(id)...)
		sort.Slice(successors, func(i, j int) bool { return successors[i].To < successors[j].To })

		value := triFromBool(isUniversal)
		var next *space.StateId
		for _, e := range successors {
			succPoint := c.pointLookup(innerUpdate, innerInfo, e.To)
			var newValue TriState
			if isUniversal {
				newValue = meet(value, succPoint.Value)
			} else {
				newValue = join(value, succPoint.Value)
			}
			if newValue != value {
				value = newValue
				to := e.To
				next = &to
			}
		}

		l := newLabel()
		l.History[c.historyIndex] = HistoryPoint{Value: value, Next: next}
		update[id] = l
	}
	return nil
}
