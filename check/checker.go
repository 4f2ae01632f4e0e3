package check

import (
	"fmt"

	"github.com/katalvlaran/bvcheck/propast"
	"github.com/katalvlaran/bvcheck/space"
)

// Outcome is the three possible answers a property check can reach.
type Outcome int

const (
	Holds Outcome = iota
	DoesNotHold
	Indeterminate
)

func (o Outcome) String() string {
	switch o {
	case Holds:
		return "holds"
	case DoesNotHold:
		return "does_not_hold"
	default:
		return "unknown"
	}
}

// Culprit is a path from the start state to a state where the property's
// truth depends on an atomic field that is still unknown: refining that
// field's precision is what a CEGAR round needs to do to make progress.
type Culprit struct {
	Path []space.StateId
	Name string
}

// Verdict is the outcome of checking one property over a state space,
// carrying a Culprit when Outcome is Indeterminate.
type Verdict struct {
	Outcome Outcome
	Culprit *Culprit
}

// Check computes the property's labelling over the whole space and reads
// off the start state's value.
func (c *LabellingComputer) Check() (Verdict, error) {
	start, err := c.sp.Start()
	if err != nil {
		return Verdict{}, err
	}
	if _, err := c.Compute(c.table.Root); err != nil {
		return Verdict{}, err
	}
	info := c.checks[c.table.Root]
	point := info.Labelling[start].AtIndex(c.historyIndex)

	switch point.Value {
	case True:
		return Verdict{Outcome: Holds}, nil
	case False:
		return Verdict{Outcome: DoesNotHold}, nil
	default:
		culprit, err := c.ExtractCulprit(c.table.Root, start)
		if err != nil {
			return Verdict{}, err
		}
		return Verdict{Outcome: Indeterminate, Culprit: culprit}, nil
	}
}

// ExtractCulprit walks down from subIdx at state start, following whichever
// operand or successor the labelling actually depended on, until it
// reaches the Atomic entry whose value is unknown. Negation and the
// And/Or tie-break descend without moving along the path; EX/AX/EG/EU
// follow their recorded HistoryPoint.Next one step.
func (c *LabellingComputer) ExtractCulprit(subIdx int, start space.StateId) (*Culprit, error) {
	return c.extractFrom(subIdx, []space.StateId{start})
}

func (c *LabellingComputer) extractFrom(subIdx int, path []space.StateId) (*Culprit, error) {
	id := path[len(path)-1]
	info := c.checks[subIdx]
	if info == nil {
		return nil, fmt.Errorf("check: sub-formula %d was never computed", subIdx)
	}
	point := info.Labelling[id].AtIndex(c.historyIndex)
	if point.Value != Unknown {
		return nil, fmt.Errorf("check: state %d is not unknown for sub-formula %d", id, subIdx)
	}

	entry := c.table.Entry(subIdx)
	switch entry.Kind {
	case propast.Atomic:
		out := append([]space.StateId{}, path...)
		return &Culprit{Path: out, Name: entry.Name}, nil
	case propast.Negation:
		return c.extractFrom(entry.Inner, path)
	case propast.Or, propast.And:
		aInfo := c.checks[entry.Hold]
		aValue := aInfo.Labelling[id].AtIndex(c.historyIndex).Value
		if aValue == Unknown {
			return c.extractFrom(entry.Hold, path)
		}
		return c.extractFrom(entry.Until, path)
	case propast.EX, propast.AX, propast.EG:
		if point.Next == nil {
			return nil, fmt.Errorf("check: unknown %s labelling at state %d has no recorded successor", entry.Kind, id)
		}
		return c.extractFrom(entry.Inner, append(path, *point.Next))
	case propast.EU:
		if point.Next == nil {
			// the unknown value came from until directly at this state
			return c.extractFrom(entry.Until, path)
		}
		nextPath := append(path, *point.Next)
		holdPoint := c.checks[entry.Hold].Labelling[id].AtIndex(c.historyIndex)
		if holdPoint.Value == Unknown {
			return c.extractFrom(entry.Hold, path)
		}
		return c.extractFrom(subIdx, nextPath)
	default:
		return nil, &ErrUnexpectedKind{Kind: entry.Kind}
	}
}
