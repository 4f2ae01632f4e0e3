package bv

// Not computes the three-valued logical negation of t: known-0 and known-1
// bits swap, unknown bits stay unknown.
func Not(t ThreeValued) ThreeValued {
	return newRaw(t.width, t.ones, t.zeros)
}

// And computes the three-valued bitwise AND of a and b. Both operands must
// share a width.
func And(a, b ThreeValued) ThreeValued {
	requireSameWidth(a, b)
	zeros := a.zeros | b.zeros
	ones := a.ones & b.ones
	return newRaw(a.width, zeros, ones)
}

// Or computes the three-valued bitwise OR of a and b.
func Or(a, b ThreeValued) ThreeValued {
	requireSameWidth(a, b)
	zeros := a.zeros & b.zeros
	ones := a.ones | b.ones
	return newRaw(a.width, zeros, ones)
}

// Xor computes the three-valued bitwise XOR of a and b.
func Xor(a, b ThreeValued) ThreeValued {
	requireSameWidth(a, b)
	zeros := (a.zeros & b.zeros) | (a.ones & b.ones)
	ones := (a.zeros & b.ones) | (a.ones & b.zeros)
	return newRaw(a.width, zeros, ones)
}

func requireSameWidth(a, b ThreeValued) {
	if a.width != b.width {
		panic("bv: operands must share a width")
	}
}
