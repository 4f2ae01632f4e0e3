package check

import (
	"github.com/katalvlaran/bvcheck/bv"
	"github.com/katalvlaran/bvcheck/machine"
	"github.com/katalvlaran/bvcheck/propast"
)

// evaluateAtomic reads entry's named field from state and reduces it to a
// TriState. A plain witness atom (entry.HasLiteral false) takes a bool
// field directly, or a one-bit bv.ThreeValued via its zero/one masks, the
// same way a 1-bit abstract bit already encodes three-valuedness. A
// "field == literal" atom (entry.HasLiteral true) instead reads the field
// as a bv.ThreeValued of its own width and reduces bv.Eq against that
// width's encoding of entry.LiteralValue. Any other shape, or a missing
// field, is an error: atomic propositions are meant to name either a
// boolean witness field such as machine.Safe or a bit-vector field
// compared against a literal, not an arbitrary other value.
func evaluateAtomic(state machine.State, entry propast.Entry) (TriState, error) {
	value, ok := state[entry.Name]
	if !ok {
		return Unknown, &ErrAtomicUnknown{Field: entry.Name}
	}
	if entry.HasLiteral {
		v, ok := value.(bv.ThreeValued)
		if !ok {
			return Unknown, &ErrAtomicUnknown{Field: entry.Name}
		}
		return triFromBit(bv.Eq(v, bv.Known(v.Width(), entry.LiteralValue)), entry.Name)
	}
	switch v := value.(type) {
	case bool:
		return triFromBool(v), nil
	case bv.ThreeValued:
		if v.Width() != 1 {
			return Unknown, &ErrAtomicUnknown{Field: entry.Name}
		}
		return triFromBit(v, entry.Name)
	default:
		return Unknown, &ErrAtomicUnknown{Field: entry.Name}
	}
}

// triFromBit reduces a one-bit bv.ThreeValued to a TriState via its
// zero/one masks; name is only used to build ErrAtomicUnknown on the
// all-zeros-mask impossible case newRaw already rules out elsewhere.
func triFromBit(v bv.ThreeValued, name string) (TriState, error) {
	couldBeFalse := v.ZeroMask()&1 != 0
	couldBeTrue := v.OneMask()&1 != 0
	switch {
	case couldBeTrue && couldBeFalse:
		return Unknown, nil
	case couldBeTrue:
		return True, nil
	case couldBeFalse:
		return False, nil
	default:
		return Unknown, &ErrAtomicUnknown{Field: name}
	}
}
