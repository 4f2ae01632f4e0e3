// Package cegar drives counterexample-guided abstraction refinement over a
// space.StateSpace: explore, check a propast.Table's property with
// check.LabellingComputer, and when the verdict comes back Indeterminate,
// walk the reported check.Culprit backward through the checked machine's
// NextBackward/InitBackward to demand more precision on the input bits
// that produced it, then purge the stale successors of whatever states
// grew more precise and loop.
//
// The loop is grounded on the outer driver in
// machine-check-exec-lib/src/model_check.rs (explore, check, extract a
// culprit on an incomplete verdict, refine, repeat) and on the
// backward-composition shape — not the macro machinery — of
// core/machine-check/src/machine/transcription/abstraction/refin.rs: each
// step of a refine pass composes one Next/NextBackward pair in reverse,
// exactly as that generated refin module composes a mark function with
// the abstract function it mirrors.
//
// A round that fails to grow any state's precision signals a contract
// violation in the Machine under test (its forward and backward halves
// disagree about what refining the input could teach the checker) and is
// reported as ErrRefinementNotProductive rather than retried or looped
// forever.
package cegar
