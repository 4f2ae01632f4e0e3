// Package bv implements the three-valued bit-vector abstract domain: the
// forward operators that compute an abstract result from abstract operands,
// and the backward ("mark") operators that propagate a demand for precision
// from an output back onto the operands that produced it.
//
// A ThreeValued value of width W is the pair (zeros, ones) of W-bit masks
// described by the invariant zeros|ones == allOnes(W): every bit is at
// least possibly-0 or possibly-1. A bit is known-0 when only zeros is set,
// known-1 when only ones is set, and unknown when both are set. Widths are
// bounded by 64 so every mask fits in a single machine word.
//
// A Mark is a single W-bit mask recording which bits of some value, if
// known precisely, would have refined a downstream decision. Marks join by
// bitwise OR and start empty.
//
// ArrayValue and ArrayMark extend both notions to arrays indexed by a
// bit vector: a default element plus a sparse map of index classes to
// element (or mark) values, handling an unknown-indexed read as a join
// over every compatible case.
package bv
