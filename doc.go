// Package bvcheck is a three-valued, bit-vector-precise model checker: it
// explores a machine.Machine's reachable states into a space.StateSpace,
// checks a CTL-shaped property against it with check.LabellingComputer,
// and when bit-precision is too coarse to resolve the answer, drives
// cegar.Runner's counterexample-guided refinement loop until it either
// converges or exhausts its round budget.
//
// The packages compose in one direction: bv's abstract bit-vector domain
// underlies machine.State/Input fields, machine.Machine is what
// space.StateSpace explores, propast.Table is what check labels over a
// StateSpace, and cegar.Runner is what drives check and space together
// across refinement rounds. Check is the thin entry point that wires all
// of it up for a caller who just wants an answer.
package bvcheck

import (
	"context"

	"github.com/golang/glog"

	"github.com/katalvlaran/bvcheck/cegar"
	"github.com/katalvlaran/bvcheck/check"
	"github.com/katalvlaran/bvcheck/machine"
	"github.com/katalvlaran/bvcheck/propast"
	"github.com/katalvlaran/bvcheck/space"
)

// Re-exported so a caller that only imports the root package still gets
// the full result vocabulary.
type (
	Verdict = check.Verdict
	Outcome = check.Outcome
	Culprit = check.Culprit
	Stats   = cegar.Stats
	Options = cegar.Options
)

const (
	Holds         = check.Holds
	DoesNotHold   = check.DoesNotHold
	Indeterminate = check.Indeterminate
)

// Check parses prop, seeds and explores a fresh state space for m under
// initialInput, and drives the CEGAR loop until the property's verdict
// resolves or opts.MaxRounds is exhausted. It is "thin CLI-adjacent glue"
// over cegar.Run: a library convenience for the common case of checking
// one property against one machine from a cold start, not a surface this
// package prescribes exit codes or process behavior for — any of that is
// left to a caller built on top of it.
func Check(ctx context.Context, m machine.Machine, initialInput machine.Input, prop string, opts Options) (Verdict, Stats, error) {
	table, err := propast.Parse(prop)
	if err != nil {
		return Verdict{}, Stats{}, err
	}
	table.PNF()
	table.ENF()

	sp := space.New()
	if _, err := sp.Seed(m, initialInput); err != nil {
		return Verdict{}, Stats{}, err
	}

	glog.V(1).Infof("bvcheck: checking %q from a fresh state space", prop)
	runner := cegar.NewRunner(sp, m, table, initialInput)
	verdict, stats, err := runner.Run(ctx, opts)
	if err != nil {
		glog.Errorf("bvcheck: %q did not resolve: %v", prop, err)
		return verdict, stats, err
	}
	glog.V(1).Infof("bvcheck: %q resolved to %s after %d states, %d edges, %d refinement round(s)",
		prop, verdict.Outcome, stats.States, stats.Edges, stats.Refinements)
	return verdict, stats, nil
}
