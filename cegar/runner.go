package cegar

import (
	"context"
	"fmt"
	"sort"

	"github.com/golang/glog"

	"github.com/katalvlaran/bvcheck/bv"
	"github.com/katalvlaran/bvcheck/check"
	"github.com/katalvlaran/bvcheck/machine"
	"github.com/katalvlaran/bvcheck/propast"
	"github.com/katalvlaran/bvcheck/space"
)

// Options configures a Run. MaxRounds bounds the number of refinement
// rounds attempted before giving up with an Indeterminate verdict rather
// than looping forever on a property that genuinely needs more rounds
// than the caller is willing to pay for; zero means unbounded. Progress,
// if set, receives one Stats value after every round (Explore included);
// sends are non-blocking, so a caller that isn't reading drops updates
// rather than stalling the loop.
type Options struct {
	MaxRounds int
	Ctx       context.Context
	Progress  chan<- Stats
}

// Stats reports a round's cumulative exploration size: the live state and
// edge counts after the round's Explore step, and how many refinement
// rounds have completed so far.
type Stats struct {
	States      int
	Edges       int
	Refinements int
}

// Runner holds the state space, machine and property one Run call walks
// the CEGAR loop over.
type Runner struct {
	Space    *space.StateSpace
	Machine  machine.Machine
	Property *propast.Table

	seedInput machine.Input
	computer  *check.LabellingComputer
}

// NewRunner builds a Runner. seedInput is the input Seed used (and the
// input InitBackward replays when a refinement round's backward walk
// reaches the start state), so it must be the same value the caller
// passed to Space.Seed before constructing the Runner.
func NewRunner(sp *space.StateSpace, m machine.Machine, prop *propast.Table, seedInput machine.Input) *Runner {
	return &Runner{
		Space:     sp,
		Machine:   m,
		Property:  prop,
		seedInput: seedInput,
	}
}

// Run drives the CEGAR loop: Explore the space, Check the property, and
// on an Indeterminate verdict Refine the precision along the reported
// culprit and loop, until the verdict resolves, MaxRounds is exhausted,
// or a refinement round fails to grow anything (ErrRefinementNotProductive).
func (r *Runner) Run(ctx context.Context, opts Options) (check.Verdict, Stats, error) {
	if ctx == nil {
		ctx = opts.Ctx
	}
	if ctx == nil {
		ctx = context.Background()
	}

	r.computer = check.NewLabellingComputer(r.Space, r.Property)
	stats := Stats{}

	for {
		if err := r.Space.Expand(ctx, r.Machine); err != nil {
			return check.Verdict{}, stats, err
		}
		stats.States, stats.Edges = r.spaceSize()
		r.reportProgress(opts, stats)
		glog.V(2).Infof("cegar: explored %d state(s), %d edge(s) after round %d", stats.States, stats.Edges, stats.Refinements)

		verdict, err := r.computer.Check()
		if err != nil {
			return check.Verdict{}, stats, err
		}
		if verdict.Outcome != check.Indeterminate {
			return verdict, stats, nil
		}
		if opts.MaxRounds > 0 && stats.Refinements >= opts.MaxRounds {
			return verdict, stats, nil
		}
		if verdict.Culprit == nil {
			return check.Verdict{}, stats, fmt.Errorf("cegar: indeterminate verdict carried no culprit")
		}

		grew, err := r.refine(verdict.Culprit)
		if err != nil {
			return check.Verdict{}, stats, err
		}
		if !grew {
			return check.Verdict{}, stats, ErrRefinementNotProductive
		}
		stats.Refinements++
		glog.V(2).Infof("cegar: round %d grew precision along a %d-state culprit path", stats.Refinements, len(verdict.Culprit.Path))
	}
}

func (r *Runner) spaceSize() (states, edges int) {
	for _, id := range r.Space.States() {
		if _, err := r.Space.State(id); err != nil {
			continue
		}
		states++
		edges += len(r.Space.Successors(id))
	}
	return states, edges
}

func (r *Runner) reportProgress(opts Options, stats Stats) {
	if opts.Progress == nil {
		return
	}
	select {
	case opts.Progress <- stats:
	default:
	}
}

// refine walks culprit.Path backward, composing one NextBackward per
// transition, and joins the resulting input marks into each touched
// state's recorded Precision. When the path is a single state (the
// culprit's own atomic value is already indeterminate at the seed state,
// with no transition to walk back through), it instead composes
// InitBackward against the seed input that produced it. It reports
// whether any state's precision strictly grew.
func (r *Runner) refine(culprit *check.Culprit) (bool, error) {
	path := culprit.Path
	if len(path) == 0 {
		return false, fmt.Errorf("cegar: culprit carried an empty path")
	}

	touched := map[space.StateId]bool{}
	grewAny := false
	markOut := machine.StateMark{culprit.Name: bv.FullMark(1)}

	if len(path) == 1 {
		markInput, err := r.Machine.InitBackward(r.seedInput, markOut)
		if err != nil {
			return false, err
		}
		joined, grew := joinInputMark(r.Space.Precision(path[0]), markInput)
		grewAny = grew
		r.Space.SetPrecision(path[0], joined)
		touched[path[0]] = true
	} else {
		for i := len(path) - 1; i > 0; i-- {
			from, to := path[i-1], path[i]
			state, err := r.Space.State(from)
			if err != nil {
				return false, err
			}
			edge, ok := findEdge(r.Space, from, to)
			if !ok {
				return false, fmt.Errorf("cegar: no recorded edge %d -> %d along culprit path", from, to)
			}

			markState, markInput, err := r.Machine.NextBackward(state, edge.Input, markOut)
			if err != nil {
				return false, err
			}

			joined, grew := joinInputMark(r.Space.Precision(from), markInput)
			if grew {
				grewAny = true
			}
			r.Space.SetPrecision(from, joined)
			touched[from] = true

			markOut = markState
		}
	}

	forced := sortedIds(touched)
	purged := r.purgeStaleSuccessors(touched)
	r.computer.Invalidate(purged)
	r.computer.BeginRound(forced)

	return grewAny, nil
}

// purgeStaleSuccessors drops every current successor of a touched state,
// except ones that are themselves touched (a refined state's self-loop,
// or a cycle among several refined states): those edges were computed
// under the old, coarser precision, and the next Expand must re-derive
// them under the refined one rather than pile new edges on top of stale
// ones. A touched state is never purged itself — only grown in place —
// since it may be the start state, whose own content Init already fixed.
func (r *Runner) purgeStaleSuccessors(touched map[space.StateId]bool) []space.StateId {
	var stale []space.StateId
	seen := map[space.StateId]bool{}
	for _, id := range sortedIds(touched) {
		for _, e := range r.Space.Successors(id) {
			if touched[e.To] || seen[e.To] {
				continue
			}
			seen[e.To] = true
			stale = append(stale, e.To)
		}
	}
	if len(stale) == 0 {
		return nil
	}
	return r.Space.Purge(stale)
}

func findEdge(sp *space.StateSpace, from, to space.StateId) (space.Edge, bool) {
	for _, e := range sp.Successors(from) {
		if e.To == to {
			return e, true
		}
	}
	return space.Edge{}, false
}

func sortedIds(set map[space.StateId]bool) []space.StateId {
	ids := make([]space.StateId, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
