package check

import (
	"github.com/katalvlaran/bvcheck/propast"
	"github.com/katalvlaran/bvcheck/space"
)

// pointLookup returns a state's recorded HistoryPoint for a sub-formula,
// preferring a value just computed this round (update) over the
// previously memoized one (info.Labelling).
func (c *LabellingComputer) pointLookup(update map[space.StateId]Label, info *CheckInfo, id space.StateId) HistoryPoint {
	if l, ok := update[id]; ok {
		return l.AtIndex(c.historyIndex)
	}
	if info != nil {
		if l, ok := info.Labelling[id]; ok {
			return l.AtIndex(c.historyIndex)
		}
	}
	return HistoryPoint{}
}

// computeBiLogic evaluates Or (isAnd=false) or And (isAnd=true): the
// state's value is the meet (And) or join (Or) of its two operands, ties
// broken toward the left (Hold) operand, matching the reference checker's
// tie-break rule.
func (c *LabellingComputer) computeBiLogic(entry propast.Entry, isAnd bool) (map[space.StateId]Label, error) {
	aUpdate, err := c.Compute(entry.Hold)
	if err != nil {
		return nil, err
	}
	bUpdate, err := c.Compute(entry.Until)
	if err != nil {
		return nil, err
	}
	aInfo := c.checks[entry.Hold]
	bInfo := c.checks[entry.Until]

	dirty := map[space.StateId]bool{}
	for id := range aUpdate {
		dirty[id] = true
	}
	for id := range bUpdate {
		dirty[id] = true
	}

	update := map[space.StateId]Label{}
	for _, id := range sortedStateIds(dirty) {
		aPoint := c.pointLookup(aUpdate, aInfo, id)
		bPoint := c.pointLookup(bUpdate, bInfo, id)

		var result HistoryPoint
		if isAnd {
			if aPoint.Value <= bPoint.Value {
				result = aPoint
			} else {
				result = bPoint
			}
		} else {
			if aPoint.Value < bPoint.Value {
				result = bPoint
			} else {
				result = aPoint
			}
		}

		l := newLabel()
		l.History[c.historyIndex] = result
		update[id] = l
	}
	return update, nil
}
