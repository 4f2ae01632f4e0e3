package check

import "github.com/katalvlaran/bvcheck/space"

// Invalidate is the purge hook a CEGAR round calls after space.Purge: for
// every sub-formula it drops the purged states' memoized Label (they no
// longer exist) and folds the purged ids into Dirty. Compute leaves out of
// its dirty set every id the state space no longer holds, so a purged id
// is never evaluated again.
func (c *LabellingComputer) Invalidate(purged []space.StateId) {
	for _, info := range c.checks {
		for _, id := range purged {
			delete(info.Labelling, id)
			info.Dirty[id] = true
		}
	}
}

// BeginRound advances the computer to a new history index and marks force
// as very dirty for the next Compute pass: every sub-formula recomputes
// those states regardless of its own memoized Dirty set, and records the
// new value at the new index rather than conflicting with what was
// recorded before refinement changed the state space under them.
func (c *LabellingComputer) BeginRound(force []space.StateId) {
	c.historyIndex++
	c.veryDirty = map[space.StateId]bool{}
	for _, id := range force {
		c.veryDirty[id] = true
	}
}
