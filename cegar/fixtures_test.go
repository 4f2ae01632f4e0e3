package cegar_test

import (
	"github.com/katalvlaran/bvcheck/bv"
	"github.com/katalvlaran/bvcheck/machine"
)

// branchingMachine starts in a known-safe state, then takes one step whose
// safety is unknown until the "trigger" input bit is fully known: under
// full precision both concrete values of trigger lead to a safe state, so
// one round of refinement fully resolves it.
type branchingMachine struct{}

func (branchingMachine) Init(machine.Input) (machine.State, error) {
	return machine.State{"safe": bv.Known(1, 1)}, nil
}

func (branchingMachine) Next(_ machine.State, in machine.Input) (machine.State, error) {
	trig, ok := in["trigger"].(bv.ThreeValued)
	if !ok {
		trig = bv.Unknown(1)
	}
	couldBeZero := trig.ZeroMask()&1 != 0
	couldBeOne := trig.OneMask()&1 != 0
	if couldBeZero && couldBeOne {
		return machine.State{"safe": bv.Unknown(1)}, nil
	}
	return machine.State{"safe": bv.Known(1, 1)}, nil
}

func (branchingMachine) InitBackward(_ machine.Input, _ machine.StateMark) (machine.InputMark, error) {
	return machine.InputMark{}, nil
}

func (branchingMachine) NextBackward(_ machine.State, _ machine.Input, markOut machine.StateMark) (machine.StateMark, machine.InputMark, error) {
	mark := markOut["safe"]
	markState := machine.StateMark{}
	markInput := machine.InputMark{}
	if m, ok := mark.(bv.Mark); ok && !m.IsEmpty() {
		markInput["trigger"] = bv.FullMark(1)
	}
	return markState, markInput, nil
}

func (branchingMachine) InputFields() []machine.FieldSpec {
	return []machine.FieldSpec{{Name: "trigger", Width: 1}}
}

// stuckMachine's own initial state is permanently unknown and no amount
// of input precision can change it (Init ignores its input entirely): the
// culprit path is the start state alone, InitBackward demands no input
// precision, so the very first refinement grows nothing and the runner
// reports ErrRefinementNotProductive instead of looping forever.
type stuckMachine struct{}

func (stuckMachine) Init(machine.Input) (machine.State, error) {
	return machine.State{"safe": bv.Unknown(1)}, nil
}
func (stuckMachine) Next(state machine.State, _ machine.Input) (machine.State, error) {
	return state, nil
}
func (stuckMachine) InitBackward(_ machine.Input, _ machine.StateMark) (machine.InputMark, error) {
	return machine.InputMark{}, nil
}
func (stuckMachine) NextBackward(_ machine.State, _ machine.Input, m machine.StateMark) (machine.StateMark, machine.InputMark, error) {
	return m, machine.InputMark{}, nil
}
func (stuckMachine) InputFields() []machine.FieldSpec { return nil }
