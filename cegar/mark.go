package cegar

import (
	"github.com/katalvlaran/bvcheck/bv"
	"github.com/katalvlaran/bvcheck/machine"
)

// joinFieldMark merges b into a (either of which may be nil, meaning "no
// demand yet"), reporting whether the result is strictly more precise
// than a. A Mark and an ArrayMark never mix on the same field name, since
// a Machine's fields have a fixed shape for their whole life.
func joinFieldMark(a, b machine.FieldMark) (machine.FieldMark, bool) {
	if b == nil {
		return a, false
	}
	if a == nil {
		return b, !isEmptyFieldMark(b)
	}
	switch bv1 := a.(type) {
	case bv.Mark:
		bv2, ok := b.(bv.Mark)
		if !ok {
			return a, false
		}
		joined := bv.JoinMark(bv1, bv2)
		return joined, joined.Bits() != bv1.Bits()
	case bv.ArrayMark:
		am2, ok := b.(bv.ArrayMark)
		if !ok {
			return a, false
		}
		joined := bv.JoinArrayMark(bv1, am2)
		grew := joined.Default().Bits() != bv1.Default().Bits() || len(joined.Cases()) != len(bv1.Cases())
		return joined, grew
	default:
		return a, false
	}
}

func isEmptyFieldMark(m machine.FieldMark) bool {
	switch v := m.(type) {
	case bv.Mark:
		return v.IsEmpty()
	case bv.ArrayMark:
		return v.Default().IsEmpty() && len(v.Cases()) == 0
	default:
		return false
	}
}

// joinInputMark merges src into dst (allocating dst if nil), reporting
// whether any field actually grew more precise.
func joinInputMark(dst machine.InputMark, src machine.InputMark) (machine.InputMark, bool) {
	if dst == nil {
		dst = machine.InputMark{}
	}
	grew := false
	for name, m := range src {
		joined, fieldGrew := joinFieldMark(dst[name], m)
		if fieldGrew {
			grew = true
		}
		dst[name] = joined
	}
	return dst, grew
}

// joinStateMark merges src into dst the same way joinInputMark does,
// for the state half of a backward step's result.
func joinStateMark(dst machine.StateMark, src machine.StateMark) (machine.StateMark, bool) {
	if dst == nil {
		dst = machine.StateMark{}
	}
	grew := false
	for name, m := range src {
		joined, fieldGrew := joinFieldMark(dst[name], m)
		if fieldGrew {
			grew = true
		}
		dst[name] = joined
	}
	return dst, grew
}
