package bv

// ArrayValue is the abstract value of a bit-vector array: elements of
// width Elem, indexed by bit vectors of width Index. It is represented as
// a default element (the value any index not covered by an explicit case
// takes) plus a sparse map of index classes to element values, matching
// the same data model used throughout this package. Index classes need not be
// singletons: a case key is itself a ThreeValued, so one entry can stand
// for every index compatible with a partially-known pattern.
type ArrayValue struct {
	indexWidth, elemWidth uint8
	def                   ThreeValued
	cases                 map[ThreeValued]ThreeValued
}

// NewArray returns an array of the given index/element widths with every
// index mapped to def.
func NewArray(indexWidth, elemWidth uint8, def ThreeValued) ArrayValue {
	if def.Width() != elemWidth {
		panic("bv: array default element width mismatch")
	}
	return ArrayValue{indexWidth: indexWidth, elemWidth: elemWidth, def: def, cases: map[ThreeValued]ThreeValued{}}
}

// IndexWidth reports the width of indices into the array.
func (a ArrayValue) IndexWidth() uint8 { return a.indexWidth }

// ElemWidth reports the width of the array's elements.
func (a ArrayValue) ElemWidth() uint8 { return a.elemWidth }

// Default returns the element value any uncased index takes.
func (a ArrayValue) Default() ThreeValued { return a.def }

// Cases returns the sparse index-class-to-element map. The returned map
// must be treated as read-only.
func (a ArrayValue) Cases() map[ThreeValued]ThreeValued { return a.cases }

// String renders a deterministically, sorting cases by their index
// class's own String so two structurally equal arrays always render
// identically regardless of Go's unspecified map iteration order.
func (a ArrayValue) String() string {
	keys := make([]ThreeValued, 0, len(a.cases))
	for k := range a.cases {
		keys = append(keys, k)
	}
	sortThreeValued(keys)

	s := "default=" + a.def.String()
	for _, k := range keys {
		s += " " + k.String() + "->" + a.cases[k].String()
	}
	return s
}

func overlaps(a, b ThreeValued) bool {
	m := mask(a.width)
	canBeSameBits := (a.zeros & b.zeros) | (a.ones & b.ones)
	return canBeSameBits&m == m
}

// Read returns the join of every element value whose index class overlaps
// idx, plus the default. Joining in the default even when idx might in
// fact be fully covered by explicit cases is a deliberate, documented
// over-approximation (this package does not track the complement of the
// stored index classes) — it keeps Read always sound at the cost of some
// precision.
func (a ArrayValue) Read(idx ThreeValued) ThreeValued {
	requireIndexWidth(a, idx)
	result := a.def
	for class, elem := range a.cases {
		if overlaps(class, idx) {
			result = Join(result, elem)
		}
	}
	return result
}

// Write returns the array obtained by writing val at every index
// compatible with idx: existing classes incompatible with idx are kept
// unchanged, classes compatible with idx have val joined into their
// element, and idx itself becomes (or extends) a class seeded from the
// value Read would have returned beforehand joined with val. This is a
// weak (join, never overwrite) update throughout, rather than a
// precision-preserving strong update at fully-known indices.
func (a ArrayValue) Write(idx, val ThreeValued) ArrayValue {
	requireIndexWidth(a, idx)
	if val.Width() != a.elemWidth {
		panic("bv: array write element width mismatch")
	}

	before := a.Read(idx)
	newCases := make(map[ThreeValued]ThreeValued, len(a.cases)+1)
	for class, elem := range a.cases {
		if overlaps(class, idx) {
			newCases[class] = Join(elem, val)
		} else {
			newCases[class] = elem
		}
	}
	if _, exists := newCases[idx]; !exists {
		newCases[idx] = Join(before, val)
	}
	return ArrayValue{indexWidth: a.indexWidth, elemWidth: a.elemWidth, def: a.def, cases: newCases}
}

func requireIndexWidth(a ArrayValue, idx ThreeValued) {
	if idx.Width() != a.indexWidth {
		panic("bv: array index width mismatch")
	}
}

// ArrayMark is the mark-shaped counterpart of ArrayValue: a default mark
// plus a sparse map of index classes to element marks, following the same
// shape as ArrayValue: a default mark plus a sparse map of index classes to element marks.
type ArrayMark struct {
	indexWidth, elemWidth uint8
	def                   Mark
	cases                 map[ThreeValued]Mark
}

// NewArrayMark returns an empty array mark of the given widths.
func NewArrayMark(indexWidth, elemWidth uint8) ArrayMark {
	return ArrayMark{indexWidth: indexWidth, elemWidth: elemWidth, def: EmptyMark(elemWidth), cases: map[ThreeValued]Mark{}}
}

// IndexWidth reports the width of indices into the array mark.
func (m ArrayMark) IndexWidth() uint8 { return m.indexWidth }

// ElemWidth reports the width of the array mark's elements.
func (m ArrayMark) ElemWidth() uint8 { return m.elemWidth }

// Default returns the mark any uncased index carries.
func (m ArrayMark) Default() Mark { return m.def }

// Cases returns the sparse index-class-to-mark map. Read-only.
func (m ArrayMark) Cases() map[ThreeValued]Mark { return m.cases }

// JoinArrayMark unions two array marks pointwise: every case present in
// either operand appears in the result, with marks OR-ed where both
// define it.
func JoinArrayMark(a, b ArrayMark) ArrayMark {
	result := ArrayMark{indexWidth: a.indexWidth, elemWidth: a.elemWidth, def: JoinMark(a.def, b.def), cases: map[ThreeValued]Mark{}}
	for class, mk := range a.cases {
		result.cases[class] = mk
	}
	for class, mk := range b.cases {
		if existing, ok := result.cases[class]; ok {
			result.cases[class] = JoinMark(existing, mk)
		} else {
			result.cases[class] = mk
		}
	}
	return result
}

// ArrayReadBackward propagates a mark on the result of Read(arr, idx) back
// onto arr's contributing classes (weighted by which are still live
// candidates for idx, i.e. overlap it) and the default, plus a mark on idx
// itself: idx is marked in full whenever more than one distinct candidate
// element contributed, since knowing idx precisely would have picked a
// single one of them.
func ArrayReadBackward(arr ArrayValue, idx ThreeValued, markOut Mark) (markArr ArrayMark, markIdx Mark) {
	markArr = NewArrayMark(arr.indexWidth, arr.elemWidth)
	if markOut.IsEmpty() {
		return markArr, EmptyMark(arr.indexWidth)
	}

	contributors := 0
	if overlapsDefault(arr, idx) {
		markArr.def = JoinMark(markArr.def, markOut)
		contributors++
	}
	for class, elem := range arr.cases {
		if overlaps(class, idx) {
			markArr.cases[class] = markOut
			_ = elem
			contributors++
		}
	}
	markIdx := EmptyMark(arr.indexWidth)
	if contributors > 1 {
		markIdx = FullMark(arr.indexWidth)
	}
	return markArr, markIdx
}

// overlapsDefault reports whether idx can select an index not covered by
// any explicit case, in which case the default element contributes to
// Read(idx). This package does not track the exact complement of the
// stored classes, so it always answers true; see the Read doc comment for
// the same trade-off.
func overlapsDefault(arr ArrayValue, idx ThreeValued) bool {
	return true
}

// ArrayWriteBackward propagates a mark on the result of Write(arr, idx,
// val) back onto arr, idx, and val: arr keeps markOut's default and case
// marks, val gets every case mark whose class can overlap idx plus the
// default mark, and idx is marked in full whenever it is not fully known,
// whether or not markOut marks anything. The idx mark is not narrowed to
// the indices whose value would differ.
func ArrayWriteBackward(arr ArrayValue, idx, val ThreeValued, markOut ArrayMark) (markArr ArrayMark, markIdx Mark, markVal Mark) {
	markArr = NewArrayMark(arr.indexWidth, arr.elemWidth)
	markArr.def = markOut.def
	for class, mk := range markOut.cases {
		markArr.cases[class] = mk
	}

	markVal = EmptyMark(arr.elemWidth)
	for class, mk := range markOut.cases {
		if overlaps(class, idx) {
			markVal = JoinMark(markVal, mk)
		}
	}
	if !markOut.def.IsEmpty() {
		markVal = JoinMark(markVal, markOut.def)
	}

	markIdx = EmptyMark(arr.indexWidth)
	if !idx.IsFullyKnown() {
		markIdx = FullMark(arr.indexWidth)
	}
	return markArr, markIdx, markVal
}
