package check

import (
	"sort"

	"github.com/golang/glog"

	"github.com/katalvlaran/bvcheck/propast"
	"github.com/katalvlaran/bvcheck/space"
)

// LabellingComputer walks a normalized propast.Table bottom-up over a
// StateSpace, memoizing one CheckInfo per sub-formula index.
type LabellingComputer struct {
	table        *propast.Table
	sp           *space.StateSpace
	checks       map[int]*CheckInfo
	historyIndex HistoryIndex
	veryDirty    map[space.StateId]bool
}

// NewLabellingComputer builds a computer for table over sp. The first
// Compute call for a sub-formula treats every state sp holds at that
// moment as dirty, so it labels the whole space.
func NewLabellingComputer(sp *space.StateSpace, table *propast.Table) *LabellingComputer {
	return &LabellingComputer{
		table:     table,
		sp:        sp,
		checks:    map[int]*CheckInfo{},
		veryDirty: map[space.StateId]bool{},
	}
}

// MarkVeryDirty forces the named states to be recomputed for every
// sub-formula on the next Compute call, even if nothing else changed
// about them. The ids are added to the current very-dirty set; BeginRound,
// which a CEGAR round calls instead, replaces that set.
func (c *LabellingComputer) MarkVeryDirty(ids []space.StateId) {
	for _, id := range ids {
		c.veryDirty[id] = true
	}
}

// Info returns the memoized CheckInfo for subIdx, or nil if it has never
// been computed.
func (c *LabellingComputer) Info(subIdx int) *CheckInfo {
	return c.checks[subIdx]
}

func (c *LabellingComputer) dirtyForCompute(subIdx int) (*CheckInfo, map[space.StateId]bool) {
	info, ok := c.checks[subIdx]
	dirty := map[space.StateId]bool{}
	if ok {
		for id := range info.Dirty {
			dirty[id] = true
		}
		info.Dirty = map[space.StateId]bool{}
	} else {
		info = newCheckInfo()
		c.checks[subIdx] = info
		for _, id := range c.sp.States() {
			dirty[id] = true
		}
	}
	for id := range c.veryDirty {
		dirty[id] = true
	}
	for id := range dirty {
		if _, err := c.sp.State(id); err != nil {
			delete(dirty, id)
		}
	}
	return info, dirty
}

// Compute recomputes sub-formula subIdx's labelling over its currently
// dirty states (and every state on first computation), returning the set
// of states whose Label actually changed.
func (c *LabellingComputer) Compute(subIdx int) (map[space.StateId]Label, error) {
	info, dirty := c.dirtyForCompute(subIdx)
	entry := c.table.Entry(subIdx)
	glog.V(2).Infof("check: computing sub-formula %d (%s) over %d dirty state(s)", subIdx, entry.Kind, len(dirty))

	update := map[space.StateId]Label{}
	var err error
	switch entry.Kind {
	case propast.Const:
		v := triFromBool(entry.ConstValue)
		for id := range dirty {
			update[id] = constantLabel(c.historyIndex, v)
		}
	case propast.Atomic:
		err = c.computeAtomic(dirty, entry, update)
	case propast.Negation:
		update, err = c.computeNegation(entry)
	case propast.Or:
		update, err = c.computeBiLogic(entry, false)
	case propast.And:
		update, err = c.computeBiLogic(entry, true)
	case propast.EX:
		err = c.computeNext(dirty, entry, false, update)
	case propast.AX:
		err = c.computeNext(dirty, entry, true, update)
	case propast.EG:
		update, err = c.computeEG(entry)
	case propast.EU:
		update, err = c.computeEU(entry)
	default:
		err = &ErrUnexpectedKind{Kind: entry.Kind}
	}
	if err != nil {
		return nil, err
	}

	changed, err := c.updateLabelling(info, update)
	if err != nil {
		return nil, err
	}
	return changed, nil
}

// updateLabelling merges update into info.Labelling, refusing to silently
// overwrite a history point already recorded at the same index with a
// different value (that would mean a fixed-point pass recomputed the same
// round with a different answer, an engine bug). It returns the subset of
// update whose label actually changed.
func (c *LabellingComputer) updateLabelling(info *CheckInfo, update map[space.StateId]Label) (map[space.StateId]Label, error) {
	changed := map[space.StateId]Label{}
	for id, newLabel := range update {
		current, has := info.Labelling[id]
		if !has {
			info.Labelling[id] = newLabel
			changed[id] = newLabel
			continue
		}
		anyChange := false
		merged := current
		for hi, point := range newLabel.History {
			if prev, ok := merged.History[hi]; ok {
				if prev != point {
					return nil, ErrLabelConflict
				}
				continue
			}
			merged.History[hi] = point
			anyChange = true
		}
		if !anyChange {
			if c.veryDirty[id] {
				changed[id] = merged
			}
			continue
		}
		info.Labelling[id] = merged
		changed[id] = merged
	}
	return changed, nil
}

func (c *LabellingComputer) computeAtomic(dirty map[space.StateId]bool, entry propast.Entry, update map[space.StateId]Label) error {
	for id := range dirty {
		state, err := c.sp.State(id)
		if err != nil {
			return err
		}
		v, err := evaluateAtomic(state, entry)
		if err != nil {
			return err
		}
		if entry.Complementary {
			v = v.Not()
		}
		update[id] = constantLabel(c.historyIndex, v)
	}
	return nil
}

func (c *LabellingComputer) computeNegation(entry propast.Entry) (map[space.StateId]Label, error) {
	update, err := c.Compute(entry.Inner)
	if err != nil {
		return nil, err
	}
	negated := map[space.StateId]Label{}
	for id, l := range update {
		nl := newLabel()
		for hi, p := range l.History {
			nl.History[hi] = HistoryPoint{Value: p.Value.Not(), Next: p.Next}
		}
		negated[id] = nl
	}
	return negated, nil
}

// sortedStateIds returns the keys of m in ascending StateId order, for
// deterministic witness selection.
func sortedStateIds(m map[space.StateId]bool) []space.StateId {
	ids := make([]space.StateId, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
