package check

import (
	"github.com/katalvlaran/bvcheck/space"
)

// TriState is a three-valued truth value ordered False < Unknown < True, so
// that meet (and) is the minimum and join (or) is the maximum of the
// Kleene truth tables.
type TriState int

const (
	False TriState = iota
	Unknown
	True
)

func triFromBool(b bool) TriState {
	if b {
		return True
	}
	return False
}

// Not negates a TriState; Unknown negates to itself.
func (t TriState) Not() TriState {
	switch t {
	case True:
		return False
	case False:
		return True
	default:
		return Unknown
	}
}

func meet(a, b TriState) TriState {
	if a < b {
		return a
	}
	return b
}

func join(a, b TriState) TriState {
	if a > b {
		return a
	}
	return b
}

// HistoryIndex versions a Label's entries. The labelling engine stamps
// every recomputation of a sub-formula with the index current at the time,
// so values recorded before a refinement round stay apart from those
// recorded after it.
type HistoryIndex int

// HistoryPoint is one recorded value of a sub-formula at one state. Next,
// populated by EX/AX/EG/EU, names the direct successor whose own value
// justified this one; a culprit walk follows it one step and continues
// descending from there. Const and Atomic never set it; Negation, Or and
// And carry over the Next of the operand point they are built from.
type HistoryPoint struct {
	Value TriState
	Next  *space.StateId
}

// Label is a state's recorded history of values for one sub-formula.
type Label struct {
	History map[HistoryIndex]HistoryPoint
}

func newLabel() Label {
	return Label{History: map[HistoryIndex]HistoryPoint{}}
}

func constantLabel(hi HistoryIndex, v TriState) Label {
	l := newLabel()
	l.History[hi] = HistoryPoint{Value: v}
	return l
}

// AtIndex returns the most recent HistoryPoint recorded at or before hi. If
// nothing has been recorded yet it returns the zero HistoryPoint (False,
// no witnesses).
func (l Label) AtIndex(hi HistoryIndex) HistoryPoint {
	best := HistoryIndex(-1)
	found := false
	for idx := range l.History {
		if idx <= hi && (!found || idx > best) {
			best = idx
			found = true
		}
	}
	if !found {
		return HistoryPoint{}
	}
	return l.History[best]
}

// Latest returns the HistoryPoint recorded at the greatest index, or the
// zero HistoryPoint if the label has no history yet.
func (l Label) Latest() HistoryPoint {
	best := HistoryIndex(-1)
	found := false
	for idx := range l.History {
		if !found || idx > best {
			best = idx
			found = true
		}
	}
	if !found {
		return HistoryPoint{}
	}
	return l.History[best]
}
