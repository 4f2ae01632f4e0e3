package space_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/bvcheck/bv"
	"github.com/katalvlaran/bvcheck/machine"
	"github.com/katalvlaran/bvcheck/space"
)

type PurgeSuite struct {
	suite.Suite
}

func TestPurgeSuite(t *testing.T) {
	suite.Run(t, new(PurgeSuite))
}

func (s *PurgeSuite) TestPurgeRemovesUnreachableDescendants() {
	require := s.Require()
	sp := space.New()
	m := counterMachine{width: 2}
	start, err := sp.Seed(m, machine.Input{})
	require.NoError(err)
	sp.SetPrecision(start, machine.InputMark{"step": bv.FullMark(2)})
	require.NoError(sp.Expand(context.Background(), m))

	successors := sp.Successors(start)
	require.NotEmpty(successors)
	// The first edge is the step-0 self-loop back to start; the last one
	// (step 3) leads to a different state.
	victim := successors[len(successors)-1].To

	purged := sp.Purge([]space.StateId{victim})
	require.Contains(purged, victim)

	_, err = sp.State(victim)
	require.ErrorIs(err, space.ErrStateNotFound)

	_, err = sp.State(start)
	require.NoError(err)
}

func (s *PurgeSuite) TestPurgedIdIsNeverReused() {
	require := s.Require()
	sp := space.New()
	m := counterMachine{width: 2}
	start, err := sp.Seed(m, machine.Input{})
	require.NoError(err)
	sp.SetPrecision(start, machine.InputMark{"step": bv.FullMark(2)})
	require.NoError(sp.Expand(context.Background(), m))

	successors := sp.Successors(start)
	victim := successors[len(successors)-1].To
	sp.Purge([]space.StateId{victim})

	before := len(sp.States())
	id := sp.AddState(machine.State{"n": bv.Known(2, 99)})
	require.NotEqual(victim, id)
	require.Equal(before+1, len(sp.States()))
}
