// Package machine defines the interface a finite-state bit-vector
// transition system implements to be explored and checked: a pure Init
// over nondeterministic input producing an initial state, a pure Next
// advancing one step, and the backward ("mark") companions of both that
// propagate a demand for precision from an output state back onto the
// input and predecessor state that produced it.
//
// A State and an Input are both named records — map[string]Value — rather
// than per-machine generated Go structs, since nothing in this module
// translates a higher-level machine description into Go source; callers
// write Init/Next/InitBackward/NextBackward by hand, directly against the
// abstract values in package bv.
//
// Machines signal their own illegal operations (an out-of-range array
// index, a division by zero, a bit width mismatch) by returning a state
// with PanicState set, not by returning a Go error or panicking, so panic
// is system-modeled data, never a host-language exception. The checker
// does not derive the machine.Safe atom from the panic field; it reads a
// state field of that name.
package machine
