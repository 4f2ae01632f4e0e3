package space

import "errors"

// ErrStateNotFound is returned when a StateId does not name a state
// currently held by the StateSpace.
var ErrStateNotFound = errors.New("space: state not found")

// ErrStartNotSet is returned by operations that require a start state
// before one has been recorded.
var ErrStartNotSet = errors.New("space: start state not set")
