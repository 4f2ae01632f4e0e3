package check

import "github.com/katalvlaran/bvcheck/space"

// CheckInfo is the memoized labelling state for one sub-formula: every
// state's recorded Label and the set of states due for recomputation.
// FixedReaches is allocated empty and nothing in this package writes to
// it; convergence of EG and EU is not recorded per history index.
type CheckInfo struct {
	Labelling    map[space.StateId]Label
	Dirty        map[space.StateId]bool
	FixedReaches map[HistoryIndex]bool
}

func newCheckInfo() *CheckInfo {
	return &CheckInfo{
		Labelling:    map[space.StateId]Label{},
		Dirty:        map[space.StateId]bool{},
		FixedReaches: map[HistoryIndex]bool{},
	}
}
