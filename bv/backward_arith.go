package bv

import "math/bits"

// highestSetBit returns the index of the highest set bit of m and true, or
// (0, false) if m is zero.
func highestSetBit(m uint64) (uint8, bool) {
	if m == 0 {
		return 0, false
	}
	return uint8(bits.Len64(m) - 1), true
}

// carryChainMark builds the sound, locally-minimal backward mark for any
// operator whose output bit k depends on input bits 0..k of every operand
// (the shape of a ripple-carry add/subtract): marking the highest bit
// markOut sets is enough to require every input bit a carry could have
// touched on the way to it.
func carryChainMark(width uint8, markOut Mark) Mark {
	high, ok := highestSetBit(markOut.Bits())
	if !ok {
		return EmptyMark(width)
	}
	upTo := (uint64(1) << (high + 1)) - 1
	return MarkFromBits(width, upTo&mask(width))
}

// AddBackward and SubBackward mark, on each operand, every bit from 0 up
// to the highest bit markOut sets — sound for a ripple-carry adder, where
// a high output bit's value can depend on a carry generated at any lower
// input bit.
func AddBackward(a, b ThreeValued, markOut Mark) (markA, markB Mark) {
	m := carryChainMark(a.width, markOut)
	return m, MarkFromBits(b.width, m.Bits())
}

func SubBackward(a, b ThreeValued, markOut Mark) (markA, markB Mark) {
	m := carryChainMark(a.width, markOut)
	return m, MarkFromBits(b.width, m.Bits())
}

// NegBackward marks t the same way Sub(Known(width,0), t) would mark its
// second operand, since Neg is defined in terms of Sub.
func NegBackward(t ThreeValued, markOut Mark) Mark {
	return carryChainMark(t.width, markOut)
}

// MulBackward conservatively marks every bit of both operands whenever any
// output bit is marked: the shift-and-add construction Mul uses can route
// any input bit of a, combined with any bit of b, into any product bit, so
// this package does not attempt a tighter per-bit mark for multiplication
// (the same open point the forward Mul resolution documents).
func MulBackward(a, b ThreeValued, markOut Mark) (markA, markB Mark) {
	if markOut.IsEmpty() {
		return EmptyMark(a.width), EmptyMark(b.width)
	}
	return FullMark(a.width), FullMark(b.width)
}
