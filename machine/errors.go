package machine

import "errors"

// ErrMachineInvariantViolated names a contract violation of the Machine a
// caller implements: its forward and backward halves disagree about what
// refining the input can teach the checker. No package in this module
// checks for that disagreement or returns this error; an unproductive
// refinement is reported as cegar.ErrRefinementNotProductive instead.
var ErrMachineInvariantViolated = errors.New("machine: forward and backward step disagree on achievable precision")

// ErrUnknownField is returned when a record (State or Input) is read for
// a field name the Machine never declares.
var ErrUnknownField = errors.New("machine: unknown field")
