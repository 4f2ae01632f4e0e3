// Package check computes a three-valued CTL labelling over a state space
// and combines it into a safety/liveness verdict.
//
// A property's propast.Table is normalized to the minimal operator basis
// before it reaches this package (Const, Atomic, Negation, Or, EX, EG, EU).
// LabellingComputer walks that basis bottom-up, recording one Label per
// state per sub-formula in a CheckInfo, and reports which states changed
// so a caller can re-run just the dirty fringe after a refinement round.
//
// EG and EU are computed as monotone Kleene iterations over the three-value
// lattice False < Unknown < True (greatest fixed point descending from
// True, least fixed point ascending from False), the three-valued lift of
// the CheckEG/CheckEU worklist procedures from Clarke et al.'s Model
// Checking, the same textbook algorithms the Boolean cross-check in the
// space package's SCC search is built on.
package check
