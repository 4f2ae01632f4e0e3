package bv

// This file collects the backward ("mark") companions to the forward
// operators in bitwise.go, compare.go and ext.go: each takes the forward
// operands plus a mark on the result and returns the marks those operands
// need so a concrete machine could recompute the marked output bits. Every
// operator here is sound (it never under-marks) and locally minimal where
// the per-bit value lets it short-circuit (AND/OR's dominating zero/one,
// XOR's already-known operand) — the same "observability don't care"
// trick the generated backward code performs bit by bit.

func bitKnown(zeros, ones uint64, bigK uint8) (known, zero bool) {
	z := zeros&(uint64(1)<<bigK) != 0
	o := ones&(uint64(1)<<bigK) != 0
	return z != o, z && !o
}

// NotBackward propagates markOut straight through: each output bit is the
// complement of the same input bit, so the mark transfers one to one.
func NotBackward(t ThreeValued, markOut Mark) Mark {
	return MarkFromBits(t.width, markOut.Bits())
}

// AndBackward propagates markOut onto a and b, skipping a marked bit on an
// operand whenever the other operand is known-0 at that bit (the result is
// known-0 regardless, so neither operand needs further refinement there).
func AndBackward(a, b ThreeValued, markOut Mark) (markA, markB Mark) {
	var bitsA, bitsB uint64
	for bigK := uint8(0); bigK < a.width; bigK++ {
		if markOut.Bits()&(uint64(1)<<bigK) == 0 {
			continue
		}
		aKnown, aZero := bitKnown(a.zeros, a.ones, bigK)
		bKnown, bZero := bitKnown(b.zeros, b.ones, bigK)
		if aZero || bZero {
			continue
		}
		if !aKnown {
			bitsA |= uint64(1) << bigK
		}
		if !bKnown {
			bitsB |= uint64(1) << bigK
		}
	}
	return MarkFromBits(a.width, bitsA), MarkFromBits(b.width, bitsB)
}

// OrBackward propagates markOut onto a and b, skipping a marked bit on an
// operand whenever the other operand is known-1 at that bit.
func OrBackward(a, b ThreeValued, markOut Mark) (markA, markB Mark) {
	var bitsA, bitsB uint64
	for bigK := uint8(0); bigK < a.width; bigK++ {
		if markOut.Bits()&(uint64(1)<<bigK) == 0 {
			continue
		}
		aKnown, aZero := bitKnown(a.zeros, a.ones, bigK)
		bKnown, bZero := bitKnown(b.zeros, b.ones, bigK)
		aOne := aKnown && !aZero
		bOne := bKnown && !bZero
		if aOne || bOne {
			continue
		}
		if !aKnown {
			bitsA |= uint64(1) << bigK
		}
		if !bKnown {
			bitsB |= uint64(1) << bigK
		}
	}
	return MarkFromBits(a.width, bitsA), MarkFromBits(b.width, bitsB)
}

// XorBackward propagates markOut onto a and b: a bit needs only the
// operand still unknown when the other is already known, and needs both
// when neither is known.
func XorBackward(a, b ThreeValued, markOut Mark) (markA, markB Mark) {
	var bitsA, bitsB uint64
	for bigK := uint8(0); bigK < a.width; bigK++ {
		if markOut.Bits()&(uint64(1)<<bigK) == 0 {
			continue
		}
		aKnown, _ := bitKnown(a.zeros, a.ones, bigK)
		bKnown, _ := bitKnown(b.zeros, b.ones, bigK)
		if aKnown && bKnown {
			continue
		}
		if !aKnown {
			bitsA |= uint64(1) << bigK
		}
		if !bKnown {
			bitsB |= uint64(1) << bigK
		}
	}
	return MarkFromBits(a.width, bitsA), MarkFromBits(b.width, bitsB)
}

// compareBackward is the shared backward rule for every comparison and
// equality operator: since a single output bit can in general depend on
// every input bit (a carry-borrow-style chain for Ugt/Sgt, a full
// bitwise scan for Eq), any non-empty markOut marks both operands in
// full.
func compareBackward(a, b ThreeValued, markOut Mark) (markA, markB Mark) {
	if markOut.IsEmpty() {
		return EmptyMark(a.width), EmptyMark(b.width)
	}
	return FullMark(a.width), FullMark(b.width)
}

// EqBackward is compareBackward specialised to Eq's signature.
func EqBackward(a, b ThreeValued, markOut Mark) (markA, markB Mark) { return compareBackward(a, b, markOut) }

// UgtBackward, UgteBackward, SgtBackward, SgteBackward, UltBackward,
// UlteBackward, SltBackward, SlteBackward all share the same full-operand
// backward rule as EqBackward.
func UgtBackward(a, b ThreeValued, markOut Mark) (Mark, Mark)  { return compareBackward(a, b, markOut) }
func UgteBackward(a, b ThreeValued, markOut Mark) (Mark, Mark) { return compareBackward(a, b, markOut) }
func SgtBackward(a, b ThreeValued, markOut Mark) (Mark, Mark)  { return compareBackward(a, b, markOut) }
func SgteBackward(a, b ThreeValued, markOut Mark) (Mark, Mark) { return compareBackward(a, b, markOut) }
func UltBackward(a, b ThreeValued, markOut Mark) (Mark, Mark)  { return compareBackward(a, b, markOut) }
func UlteBackward(a, b ThreeValued, markOut Mark) (Mark, Mark) { return compareBackward(a, b, markOut) }
func SltBackward(a, b ThreeValued, markOut Mark) (Mark, Mark)  { return compareBackward(a, b, markOut) }
func SlteBackward(a, b ThreeValued, markOut Mark) (Mark, Mark) { return compareBackward(a, b, markOut) }

// ZExtBackward and SExtBackward propagate markOut's low bits (the ones
// that existed before extension) straight back onto t; SExt additionally
// marks t's sign bit whenever any of the newly introduced high bits were
// marked, since those bits all replicate it.
func ZExtBackward(t ThreeValued, newWidth uint8, markOut Mark) Mark {
	oldMask := mask(t.width)
	return MarkFromBits(t.width, markOut.Bits()&oldMask)
}

func SExtBackward(t ThreeValued, newWidth uint8, markOut Mark) Mark {
	oldMask := mask(t.width)
	bits := markOut.Bits() & oldMask
	if markOut.Bits()&^oldMask != 0 {
		bits |= signBitMask(t.width)
	}
	return MarkFromBits(t.width, bits)
}
