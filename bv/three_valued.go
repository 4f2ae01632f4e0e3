package bv

import (
	"fmt"
	"sort"
)

// MaxWidth is the largest bit-vector width this package represents: masks
// are stored in a single uint64.
const MaxWidth = 64

// ThreeValued is an abstract bit vector of a fixed width: a pair of masks
// (zeros, ones) such that every bit is marked possibly-zero, possibly-one,
// or both (unknown). The zero value is not a valid ThreeValued; always
// construct one through Unknown, Known, or KnownBits.
type ThreeValued struct {
	width uint8
	zeros uint64
	ones  uint64
}

func mask(width uint8) uint64 {
	if width == 0 {
		return 0
	}
	if width >= MaxWidth {
		return ^uint64(0)
	}
	return (uint64(1) << width) - 1
}

func signBitMask(width uint8) uint64 {
	if width == 0 {
		return 0
	}
	return uint64(1) << (width - 1)
}

// newRaw constructs a ThreeValued from already-masked zeros/ones, asserting
// the domain invariant holds. Every constructor in this package except
// Unknown, which sets both masks to all-ones directly, funnels through here.
func newRaw(width uint8, zeros, ones uint64) ThreeValued {
	m := mask(width)
	if zeros&^m != 0 || ones&^m != 0 {
		panic(fmt.Sprintf("bv: masks exceed width %d", width))
	}
	if zeros|ones != m {
		panic(fmt.Sprintf("bv: every bit of a width-%d value must be possibly-zero or possibly-one", width))
	}
	return ThreeValued{width: width, zeros: zeros, ones: ones}
}

// Unknown returns the fully unknown value of the given width.
func Unknown(width uint8) ThreeValued {
	m := mask(width)
	return ThreeValued{width: width, zeros: m, ones: m}
}

// Known returns the concrete value v represented exactly, truncated to width.
func Known(width uint8, v uint64) ThreeValued {
	v &= mask(width)
	return newRaw(width, ^v&mask(width), v)
}

// KnownBits returns a value whose bits are taken from v wherever the
// corresponding bit of known is set, and unknown elsewhere.
func KnownBits(width uint8, v, known uint64) ThreeValued {
	m := mask(width)
	known &= m
	v &= m
	zeros := (^v | ^known) & m
	ones := (v | ^known) & m
	return newRaw(width, zeros, ones)
}

// Width reports the bit width of t.
func (t ThreeValued) Width() uint8 { return t.width }

// ZeroMask returns the raw possibly-zero mask.
func (t ThreeValued) ZeroMask() uint64 { return t.zeros }

// OneMask returns the raw possibly-one mask.
func (t ThreeValued) OneMask() uint64 { return t.ones }

// UnknownMask returns the bits that are neither known-0 nor known-1.
func (t ThreeValued) UnknownMask() uint64 { return t.zeros & t.ones }

// IsFullyKnown reports whether every bit of t is known.
func (t ThreeValued) IsFullyKnown() bool { return t.UnknownMask() == 0 }

// Value returns the concrete value of t and true, if t is fully known.
func (t ThreeValued) Value() (uint64, bool) {
	if !t.IsFullyKnown() {
		return 0, false
	}
	return t.ones, true
}

// UMin returns the unsigned minimum value t can take.
func (t ThreeValued) UMin() uint64 { return ^t.zeros & mask(t.width) }

// UMax returns the unsigned maximum value t can take.
func (t ThreeValued) UMax() uint64 { return t.ones }

func (t ThreeValued) isZerosSignBitSet() bool { return t.zeros&signBitMask(t.width) != 0 }
func (t ThreeValued) isOnesSignBitSet() bool  { return t.ones&signBitMask(t.width) != 0 }

// SMin returns the signed minimum value t can take, as a sign-extended int64.
func (t ThreeValued) SMin() int64 {
	umin := t.UMin()
	if t.isOnesSignBitSet() {
		umin |= signBitMask(t.width)
	}
	return signExtendToInt64(umin, t.width)
}

// SMax returns the signed maximum value t can take, as a sign-extended int64.
func (t ThreeValued) SMax() int64 {
	umax := t.UMax()
	if t.isZerosSignBitSet() {
		umax &^= signBitMask(t.width)
	}
	return signExtendToInt64(umax, t.width)
}

func signExtendToInt64(v uint64, width uint8) int64 {
	if width == 0 || width >= MaxWidth {
		return int64(v)
	}
	if v&signBitMask(width) != 0 {
		v |= ^mask(width)
	}
	return int64(v)
}

// CanContain reports whether the concrete value v is compatible with t,
// i.e. every bit of v agrees with at least one possibility of t.
func (t ThreeValued) CanContain(v uint64) bool {
	m := mask(t.width)
	v &= m
	return ((^v&t.zeros)|(v&t.ones))&m == m
}

// Equal reports structural equality, the same notion the domain uses for
// state-space deduplication.
func (t ThreeValued) Equal(o ThreeValued) bool {
	return t.width == o.width && t.zeros == o.zeros && t.ones == o.ones
}

// sortThreeValued orders values by (width, zeros, ones), giving any set of
// ThreeValued a single deterministic order regardless of the map they
// happened to be collected from.
func sortThreeValued(values []ThreeValued) {
	sort.Slice(values, func(i, j int) bool {
		a, b := values[i], values[j]
		if a.width != b.width {
			return a.width < b.width
		}
		if a.zeros != b.zeros {
			return a.zeros < b.zeros
		}
		return a.ones < b.ones
	})
}

// String renders t as one character per bit, most significant first,
// using '0'/'1' for known bits, 'X' for unknown, and (in the impossible
// case) 'V' for an invalid bit with neither flag set.
func (t ThreeValued) String() string {
	buf := make([]byte, t.width)
	for i := uint8(0); i < t.width; i++ {
		bigK := t.width - i - 1
		zero := (t.zeros>>bigK)&1 != 0
		one := (t.ones>>bigK)&1 != 0
		var c byte
		switch {
		case zero && one:
			c = 'X'
		case zero:
			c = '0'
		case one:
			c = '1'
		default:
			c = 'V'
		}
		buf[i] = c
	}
	return string(buf)
}
