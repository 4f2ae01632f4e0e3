package check

import (
	"errors"
	"fmt"
)

// ErrLabelConflict is a fatal internal-consistency failure: the labelling
// engine computed two different values for the same state, sub-formula and
// history index. A correct engine never revisits a history index with a
// changed answer; if this fires, a fixed-point iteration has a bug.
var ErrLabelConflict = errors.New("check: conflicting label recorded for the same history index")

// ErrAtomicUnknown is returned when an Atomic entry names a field the
// Machine's state does not carry, or carries in a form check cannot read:
// for a bare atom, neither bool nor a one-bit bv.ThreeValued; for a
// field == literal atom, not a bv.ThreeValued (of any width).
type ErrAtomicUnknown struct {
	Field string
}

func (e *ErrAtomicUnknown) Error() string {
	return fmt.Sprintf("check: atomic field %q not present or not boolean-shaped", e.Field)
}

// ErrUnexpectedKind is returned when a propast.Table handed to a
// LabellingComputer contains an operator Compute does not evaluate
// (anything other than Const, Atomic, Negation, Or, And, EX, AX, EG, EU);
// call propast.Table.PNF and propast.Table.ENF first.
type ErrUnexpectedKind struct {
	Kind fmt.Stringer
}

func (e *ErrUnexpectedKind) Error() string {
	return fmt.Sprintf("check: sub-formula kind %s is not in the minimal basis; run PNF/ENF first", e.Kind)
}
