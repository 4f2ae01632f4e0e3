package bv

// Mark is a set of bits of a fixed width: the semantics are "knowing these
// bits of the associated value precisely would have refined a downstream
// decision." The empty mark is all-zeros; marks combine by JoinMark (OR).
type Mark struct {
	width uint8
	bits  uint64
}

// EmptyMark returns the empty mark of the given width.
func EmptyMark(width uint8) Mark {
	return Mark{width: width}
}

// FullMark returns a mark with every bit of the given width set.
func FullMark(width uint8) Mark {
	return Mark{width: width, bits: mask(width)}
}

// MarkFromBits returns a mark with exactly the given bits set, truncated
// to width.
func MarkFromBits(width uint8, bits uint64) Mark {
	return Mark{width: width, bits: bits & mask(width)}
}

// Width reports the bit width of m.
func (m Mark) Width() uint8 { return m.width }

// Bits returns the raw bitmask.
func (m Mark) Bits() uint64 { return m.bits }

// IsEmpty reports whether no bit is marked.
func (m Mark) IsEmpty() bool { return m.bits == 0 }

// JoinMark returns the union of two marks of the same width.
func JoinMark(a, b Mark) Mark {
	if a.width != b.width {
		panic("bv: marks must share a width")
	}
	return Mark{width: a.width, bits: a.bits | b.bits}
}

// Contains reports whether m has at least the bits of other set.
func (m Mark) Contains(other Mark) bool {
	return other.bits&^m.bits == 0
}

// String renders the mark as a string of '.'/'#' characters, most
// significant bit first, '#' where the bit is marked.
func (m Mark) String() string {
	buf := make([]byte, m.width)
	for i := uint8(0); i < m.width; i++ {
		bigK := m.width - i - 1
		if (m.bits>>bigK)&1 != 0 {
			buf[i] = '#'
		} else {
			buf[i] = '.'
		}
	}
	return string(buf)
}
