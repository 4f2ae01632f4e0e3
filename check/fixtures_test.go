package check_test

import (
	"github.com/katalvlaran/bvcheck/bv"
	"github.com/katalvlaran/bvcheck/machine"
)

// alwaysSafeMachine is a single self-looping state whose "safe" field is
// always known-true.
type alwaysSafeMachine struct{}

func (alwaysSafeMachine) Init(machine.Input) (machine.State, error) {
	return machine.State{"safe": bv.Known(1, 1)}, nil
}
func (alwaysSafeMachine) Next(state machine.State, _ machine.Input) (machine.State, error) {
	return state, nil
}
func (alwaysSafeMachine) InitBackward(_ machine.Input, m machine.StateMark) (machine.InputMark, error) {
	return machine.InputMark{}, nil
}
func (alwaysSafeMachine) NextBackward(_ machine.State, _ machine.Input, m machine.StateMark) (machine.StateMark, machine.InputMark, error) {
	return m, machine.InputMark{}, nil
}
func (alwaysSafeMachine) InputFields() []machine.FieldSpec { return nil }

// eventuallyUnsafeMachine starts safe, then moves to a permanently unsafe
// absorbing state.
type eventuallyUnsafeMachine struct{}

func (eventuallyUnsafeMachine) Init(machine.Input) (machine.State, error) {
	return machine.State{"safe": bv.Known(1, 1)}, nil
}
func (eventuallyUnsafeMachine) Next(state machine.State, _ machine.Input) (machine.State, error) {
	return machine.State{"safe": bv.Known(1, 0)}, nil
}
func (eventuallyUnsafeMachine) InitBackward(_ machine.Input, m machine.StateMark) (machine.InputMark, error) {
	return machine.InputMark{}, nil
}
func (eventuallyUnsafeMachine) NextBackward(_ machine.State, _ machine.Input, m machine.StateMark) (machine.StateMark, machine.InputMark, error) {
	return m, machine.InputMark{}, nil
}
func (eventuallyUnsafeMachine) InputFields() []machine.FieldSpec { return nil }

// unknownSafetyMachine never resolves whether it is safe: a single
// self-looping state whose "safe" field starts and stays fully unknown.
type unknownSafetyMachine struct{}

func (unknownSafetyMachine) Init(machine.Input) (machine.State, error) {
	return machine.State{"safe": bv.Unknown(1)}, nil
}
func (unknownSafetyMachine) Next(state machine.State, _ machine.Input) (machine.State, error) {
	return state, nil
}
func (unknownSafetyMachine) InitBackward(_ machine.Input, m machine.StateMark) (machine.InputMark, error) {
	return machine.InputMark{}, nil
}
func (unknownSafetyMachine) NextBackward(_ machine.State, _ machine.Input, m machine.StateMark) (machine.StateMark, machine.InputMark, error) {
	return m, machine.InputMark{}, nil
}
func (unknownSafetyMachine) InputFields() []machine.FieldSpec { return nil }
