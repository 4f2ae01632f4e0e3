package space_test

import (
	"github.com/katalvlaran/bvcheck/bv"
	"github.com/katalvlaran/bvcheck/machine"
)

// counterMachine is a minimal modulo-N counter used across this
// package's tests: a single "n" field that increments by the input's
// "step" field each Next, wrapping modulo 2^width.
type counterMachine struct {
	width uint8
}

func (m counterMachine) Init(in machine.Input) (machine.State, error) {
	return machine.State{"n": bv.Known(m.width, 0)}, nil
}

func (m counterMachine) Next(state machine.State, in machine.Input) (machine.State, error) {
	n := state["n"].(bv.ThreeValued)
	step := in["step"].(bv.ThreeValued)
	return machine.State{"n": bv.Add(n, step)}, nil
}

func (m counterMachine) InitBackward(in machine.Input, markOut machine.StateMark) (machine.InputMark, error) {
	return machine.InputMark{}, nil
}

func (m counterMachine) NextBackward(state machine.State, in machine.Input, markOut machine.StateMark) (machine.StateMark, machine.InputMark, error) {
	nMark, _ := markOut["n"].(bv.Mark)
	markN, markStep := bv.AddBackward(state["n"].(bv.ThreeValued), in["step"].(bv.ThreeValued), nMark)
	return machine.StateMark{"n": markN}, machine.InputMark{"step": markStep}, nil
}

func (m counterMachine) InputFields() []machine.FieldSpec {
	return []machine.FieldSpec{{Name: "step", Width: m.width}}
}
