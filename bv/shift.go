package bv

// shift implements the generic three-valued shift from the source
// the three-valued shift formula: for every concrete amount the three-valued amount
// operand can take, in [0, width-1], shift the operand's zero/one masks
// with the supplied per-amount functions and join the results; if the
// amount can be width or larger, seed the result with the shiftFloor value
// (all-zero for logical shifts, all-sign for arithmetic right shift).
func shift(t, amount ThreeValued, shiftFloor ThreeValued, zerosShift, onesShift func(v uint64, amt uint8) uint64) ThreeValued {
	requireSameWidth(t, amount)
	width := t.width
	if width == 0 {
		return t
	}

	m := mask(width)
	overflow := amount.UMax() >= uint64(width)

	zeros := shiftFloor.zeros
	ones := shiftFloor.ones
	if !overflow {
		zeros = 0
		ones = 0
	}

	minShift := amount.UMin()
	if minShift > uint64(width-1) {
		minShift = uint64(width - 1)
	}
	maxShift := amount.UMax()
	if maxShift > uint64(width-1) {
		maxShift = uint64(width - 1)
	}

	for i := minShift; i <= maxShift; i++ {
		if !amount.CanContain(i) {
			continue
		}
		shiftedZeros := zerosShift(t.zeros, uint8(i)) & m
		shiftedOnes := onesShift(t.ones, uint8(i)) & m
		zeros |= shiftedZeros
		ones |= shiftedOnes
	}
	return newRaw(width, zeros, ones)
}

// Sll computes the three-valued logical left shift of t by amount.
func Sll(t, amount ThreeValued) ThreeValued {
	width := t.width
	zerosShift := func(v uint64, amt uint8) uint64 {
		return (v << amt) | mask(amt)
	}
	onesShift := func(v uint64, amt uint8) uint64 {
		return v << amt
	}
	return shift(t, amount, Known(width, 0), zerosShift, onesShift)
}

// Srl computes the three-valued logical right shift of t by amount.
func Srl(t, amount ThreeValued) ThreeValued {
	width := t.width
	zerosShift := func(v uint64, amt uint8) uint64 {
		amountMask := mask(amt)
		var leftMask uint64
		if int(width)-int(amt) >= 0 {
			leftMask = amountMask << (uint(width) - uint(amt))
		}
		return (v >> amt) | leftMask
	}
	onesShift := func(v uint64, amt uint8) uint64 {
		return v >> amt
	}
	return shift(t, amount, Known(width, 0), zerosShift, onesShift)
}

// Sra computes the three-valued arithmetic right shift of t by amount: the
// bits shifted in from the left replicate whatever the sign bit might be.
func Sra(t, amount ThreeValued) ThreeValued {
	width := t.width
	srl := func(v uint64, amt uint8) uint64 {
		if signBitMask(width)&v != 0 {
			amountMask := mask(amt)
			leftMask := amountMask << (uint(width) - uint(amt))
			return (v >> amt) | leftMask
		}
		return v >> amt
	}
	// the floor value for sra depends on whether the sign bit can be set:
	// if it can, overflowing shifts saturate to all-ones (all-sign-1); if
	// the sign bit is known 0, they saturate to all-zero. Represent both
	// possibilities soundly by joining them when the sign bit is unknown.
	var floor ThreeValued
	switch {
	case t.isOnesSignBitSet() && !t.isZerosSignBitSet():
		floor = Known(width, mask(width))
	case t.isZerosSignBitSet() && !t.isOnesSignBitSet():
		floor = Known(width, 0)
	default:
		floor = Unknown(width)
	}
	return shift(t, amount, floor, srl, srl)
}
