package bv

// shiftBackward is the common backward rule for Sll/Srl/Sra: the operand
// is marked, for every concrete amount the (possibly unknown) amount
// operand can take, with the input bits that amount would route into the
// marked output bits; amount itself is marked in full whenever it is not
// already precisely known and any output bit is marked, since resolving
// which concrete amount was used is exactly what would let the operand
// mark narrow from this union down to one component.
func shiftBackward(t, amount ThreeValued, markOut Mark, perAmt func(outBits uint64, amt uint8) uint64) (markT, markAmount Mark) {
	if markOut.IsEmpty() {
		return EmptyMark(t.width), EmptyMark(amount.width)
	}
	width := t.width
	m := mask(width)
	var bitsT uint64
	minShift := amount.UMin()
	maxShift := amount.UMax()
	if maxShift > uint64(width-1) {
		maxShift = uint64(width - 1)
	}
	for i := minShift; i <= maxShift; i++ {
		if !amount.CanContain(i) {
			continue
		}
		bitsT |= perAmt(markOut.Bits(), uint8(i)) & m
	}

	markAmount = EmptyMark(amount.width)
	if !amount.IsFullyKnown() {
		markAmount = FullMark(amount.width)
	}
	return MarkFromBits(width, bitsT), markAmount
}

// SllBackward marks the input bits a left shift by each achievable amount
// would have read from, for every output bit markOut sets.
func SllBackward(t, amount ThreeValued, markOut Mark) (markT, markAmount Mark) {
	return shiftBackward(t, amount, markOut, func(outBits uint64, amt uint8) uint64 {
		return outBits >> amt
	})
}

// SrlBackward marks the input bits a logical right shift by each
// achievable amount would have read from.
func SrlBackward(t, amount ThreeValued, markOut Mark) (markT, markAmount Mark) {
	return shiftBackward(t, amount, markOut, func(outBits uint64, amt uint8) uint64 {
		return outBits << amt
	})
}

// SraBackward marks the same input bits SrlBackward would, plus the sign
// bit whenever an overflowing amount (one at or beyond width) is
// achievable, since those output bits all replicate it.
func SraBackward(t, amount ThreeValued, markOut Mark) (markT, markAmount Mark) {
	markT, markAmount = shiftBackward(t, amount, markOut, func(outBits uint64, amt uint8) uint64 {
		return outBits << amt
	})
	if !markOut.IsEmpty() && amount.UMax() >= uint64(t.width) {
		markT = JoinMark(markT, MarkFromBits(t.width, signBitMask(t.width)))
	}
	return markT, markAmount
}
