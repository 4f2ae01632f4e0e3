package bv

// Neg computes the three-valued arithmetic negation of t, defined as 0 - t
// under wrapping arithmetic.
func Neg(t ThreeValued) ThreeValued {
	return Sub(Known(t.width, 0), t)
}

// minMaxCompute implements the "minimum/maximum of the running sum over a
// low-bit mask" method: for each output bit
// k, it computes the extremal sums Hmin/Hmax over the low k+1 bits of the
// operands (masked to modMask, the callbacks are responsible for masking)
// and declares bit k known only if those extremes agree once shifted down
// by k.
func minMaxCompute(width uint8, fmin, fmax func(modMask uint64) uint64) ThreeValued {
	var zeros, ones uint64
	for k := uint8(0); k < width; k++ {
		modMask := (uint64(1) << uint(k+1)) - 1
		hMin := fmin(modMask)
		hMax := fmax(modMask)
		zetaMin := hMin >> k
		zetaMax := hMax >> k
		if zetaMin != zetaMax {
			zeros |= uint64(1) << k
			ones |= uint64(1) << k
		} else if zetaMin&1 != 0 {
			ones |= uint64(1) << k
		} else {
			zeros |= uint64(1) << k
		}
	}
	return newRaw(width, zeros, ones)
}

// Add computes the three-valued sum of a and b via minMaxCompute.
func Add(a, b ThreeValued) ThreeValued {
	requireSameWidth(a, b)
	return minMaxCompute(a.width,
		func(modMask uint64) uint64 { return (a.UMin() & modMask) + (b.UMin() & modMask) },
		func(modMask uint64) uint64 { return (a.UMax() & modMask) + (b.UMax() & modMask) },
	)
}

// Sub computes the three-valued difference a - b via minMaxCompute, using
// a's minimum against b's maximum (and vice versa) the way the source
// sub_min/sub_max pair does.
func Sub(a, b ThreeValued) ThreeValued {
	requireSameWidth(a, b)
	return minMaxCompute(a.width,
		func(modMask uint64) uint64 { return (a.UMin() & modMask) - (b.UMax() & modMask) },
		func(modMask uint64) uint64 { return (a.UMax() & modMask) - (b.UMin() & modMask) },
	)
}

// Mul computes the three-valued product of a and b.
//
// Multiplication has no direct three-valued formula; this package resolves
// it with a bit-serial shift-and-add: for each bit k of b, the partial product is
// known-zero if that bit is known-0, (a << k) if known-1, and the join of
// those two extremes if unknown; partial products accumulate through the
// three-valued Add already proven sound above. The algorithm is sound and
// monotone (each partial product is a sound, monotone function of a and
// the corresponding bit of b, and both Sll and Add are sound and
// monotone), though it is not the tightest possible abstraction for
// multiplication.
func Mul(a, b ThreeValued) ThreeValued {
	requireSameWidth(a, b)
	width := a.width
	acc := Known(width, 0)
	for k := uint8(0); k < width; k++ {
		bitMask := uint64(1) << k
		knownZero := b.zeros&bitMask != 0 && b.ones&bitMask == 0
		knownOne := b.ones&bitMask != 0 && b.zeros&bitMask == 0
		var partial ThreeValued
		switch {
		case knownZero:
			partial = Known(width, 0)
		case knownOne:
			partial = Sll(a, Known(width, uint64(k)))
		default:
			partial = Join(Known(width, 0), Sll(a, Known(width, uint64(k))))
		}
		acc = Add(acc, partial)
	}
	return acc
}

// Join returns the smallest ThreeValued whose concretization contains the
// concretizations of both a and b: the union of two abstract values,
// computed by OR-ing their zero/one masks together. Used wherever a
// forward operator must combine several possible contributions, such as a
// bit-mask switch default arm or an array read across several compatible
// index classes.
func Join(a, b ThreeValued) ThreeValued {
	requireSameWidth(a, b)
	return newRaw(a.width, a.zeros|b.zeros, a.ones|b.ones)
}
