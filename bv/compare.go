package bv

// boolResult builds a width-1 ThreeValued from "can be false"/"can be true"
// flags, the shape every comparison operator in the source returns.
func boolResult(canBeFalse, canBeTrue bool) ThreeValued {
	var zeros, ones uint64
	if canBeFalse {
		zeros = 1
	}
	if canBeTrue {
		ones = 1
	}
	return newRaw(1, zeros, ones)
}

// Eq computes three-valued equality: known-true iff a and b are the same
// fully-known value, known-false iff some bit is known-0 in one and
// known-1 in the other, unknown otherwise.
func Eq(a, b ThreeValued) ThreeValued {
	requireSameWidth(a, b)
	m := mask(a.width)
	canBeSameBits := (a.zeros & b.zeros) | (a.ones & b.ones)
	canBeDifferentBits := (a.zeros & b.ones) | (a.ones & b.zeros)
	canBeSame := canBeSameBits&m == m
	canBeDifferent := canBeDifferentBits&m != 0
	return boolResult(canBeDifferent, canBeSame)
}

// Ugt computes three-valued unsigned greater-than.
func Ugt(a, b ThreeValued) ThreeValued {
	requireSameWidth(a, b)
	canBeFalse := a.UMin() <= b.UMax()
	canBeTrue := a.UMax() > b.UMin()
	return boolResult(canBeFalse, canBeTrue)
}

// Ugte computes three-valued unsigned greater-than-or-equal.
func Ugte(a, b ThreeValued) ThreeValued {
	requireSameWidth(a, b)
	canBeFalse := a.UMin() < b.UMax()
	canBeTrue := a.UMax() >= b.UMin()
	return boolResult(canBeFalse, canBeTrue)
}

// Sgt computes three-valued signed greater-than.
func Sgt(a, b ThreeValued) ThreeValued {
	requireSameWidth(a, b)
	canBeFalse := a.SMin() <= b.SMax()
	canBeTrue := a.SMax() > b.SMin()
	return boolResult(canBeFalse, canBeTrue)
}

// Sgte computes three-valued signed greater-than-or-equal.
func Sgte(a, b ThreeValued) ThreeValued {
	requireSameWidth(a, b)
	canBeFalse := a.SMin() < b.SMax()
	canBeTrue := a.SMax() >= b.SMin()
	return boolResult(canBeFalse, canBeTrue)
}

// Ult computes three-valued unsigned less-than as the negation of Ugte.
func Ult(a, b ThreeValued) ThreeValued { return Not(Ugte(a, b)) }

// Ulte computes three-valued unsigned less-than-or-equal as the negation of Ugt.
func Ulte(a, b ThreeValued) ThreeValued { return Not(Ugt(a, b)) }

// Slt computes three-valued signed less-than as the negation of Sgte.
func Slt(a, b ThreeValued) ThreeValued { return Not(Sgte(a, b)) }

// Slte computes three-valued signed less-than-or-equal as the negation of Sgt.
func Slte(a, b ThreeValued) ThreeValued { return Not(Sgt(a, b)) }
