package space

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/bvcheck/machine"
)

// StateId identifies a state within a StateSpace. Ids are assigned in
// increasing order as states are first added and are never reused, even
// after Purge, so a StateId observed by one package (history-indexed
// labelling, a counterexample path) stays meaningful for the life of the
// StateSpace.
type StateId int

// NoState is the StateId -1, used as "no such state"; StateSpace never
// assigns it to a real state, since ids start at 0.
const NoState StateId = -1

// Edge is one transition of the explored state space: stepping From under
// Input led to To.
type Edge struct {
	From  StateId
	To    StateId
	Input machine.Input
}

// StateSpace is the directed graph of abstract states explored so far.
type StateSpace struct {
	states     []machine.State
	key        map[string]StateId // canonical encoding -> id, for dedup
	edges      map[StateId][]Edge
	preds      map[StateId][]Edge
	precision  map[StateId]machine.InputMark
	start      StateId
	startIsSet bool
	dirty      map[StateId]bool
	purged     map[StateId]bool
}

// New returns an empty state space.
func New() *StateSpace {
	return &StateSpace{
		key:       map[string]StateId{},
		edges:     map[StateId][]Edge{},
		preds:     map[StateId][]Edge{},
		precision: map[StateId]machine.InputMark{},
		start:     NoState,
		dirty:     map[StateId]bool{},
		purged:    map[StateId]bool{},
	}
}

// canonicalEncode renders a State (or Input) deterministically: field
// names sorted, each value rendered through fmt's %v (which uses a
// value's String method when it implements fmt.Stringer, as every bv
// value type does), so two structurally equal records always encode
// identically regardless of map iteration order.
func canonicalEncode(fields map[string]machine.Value) string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		fmt.Fprintf(&b, "%s=%v;", name, fields[name])
	}
	return b.String()
}

// AddState dedups state against every state already held by structural
// (canonical-encoding) equality, returning the existing id if a match is
// found or registering state as new otherwise. The first state ever
// added additionally becomes the state space's start state.
func (sp *StateSpace) AddState(state machine.State) StateId {
	enc := canonicalEncode(state)
	if id, ok := sp.key[enc]; ok {
		return id
	}

	id := StateId(len(sp.states))
	sp.states = append(sp.states, state)
	sp.key[enc] = id
	sp.precision[id] = machine.InputMark{}
	sp.dirty[id] = true
	if !sp.startIsSet {
		sp.start = id
		sp.startIsSet = true
	}
	return id
}

// State returns the state registered under id.
func (sp *StateSpace) State(id StateId) (machine.State, error) {
	if int(id) < 0 || int(id) >= len(sp.states) || sp.purged[id] {
		return nil, ErrStateNotFound
	}
	return sp.states[id], nil
}

// Start returns the state space's start state id.
func (sp *StateSpace) Start() (StateId, error) {
	if !sp.startIsSet {
		return NoState, ErrStartNotSet
	}
	return sp.start, nil
}

// States returns every state id ever assigned, in ascending order,
// including ids that Purge has since removed.
func (sp *StateSpace) States() []StateId {
	ids := make([]StateId, len(sp.states))
	for i := range sp.states {
		ids[i] = StateId(i)
	}
	return ids
}

// Successors returns the outgoing edges of id.
func (sp *StateSpace) Successors(id StateId) []Edge { return sp.edges[id] }

// Predecessors returns the incoming edges of id.
func (sp *StateSpace) Predecessors(id StateId) []Edge { return sp.preds[id] }

// Precision returns the current input-field precision recorded for id
// (the mark-shaped record that says which input bits Expand should treat
// as significant the next time it enumerates id's inputs).
func (sp *StateSpace) Precision(id StateId) machine.InputMark { return sp.precision[id] }

// SetPrecision replaces the recorded precision for id and marks it dirty,
// so the next Expand re-enumerates its inputs under the new precision.
func (sp *StateSpace) SetPrecision(id StateId, precision machine.InputMark) {
	sp.precision[id] = precision
	sp.dirty[id] = true
}

// addEdge records a transition in both the successor and predecessor
// indexes; Expand calls this once per discovered transition and clears
// the dirty flag separately through MarkClean.
func (sp *StateSpace) addEdge(from, to StateId, in machine.Input) {
	e := Edge{From: from, To: to, Input: in}
	sp.edges[from] = append(sp.edges[from], e)
	sp.preds[to] = append(sp.preds[to], e)
}

// MarkClean clears id's dirty flag, signalling Expand has fully explored
// it under its current precision.
func (sp *StateSpace) MarkClean(id StateId) { delete(sp.dirty, id) }

// Dirty returns every state id still awaiting (re-)expansion, in
// ascending order.
func (sp *StateSpace) Dirty() []StateId {
	ids := make([]StateId, 0, len(sp.dirty))
	for id := range sp.dirty {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
