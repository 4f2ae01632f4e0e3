package cegar_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/bvcheck/cegar"
	"github.com/katalvlaran/bvcheck/check"
	"github.com/katalvlaran/bvcheck/machine"
	"github.com/katalvlaran/bvcheck/propast"
	"github.com/katalvlaran/bvcheck/space"
)

type RunnerSuite struct {
	suite.Suite
}

func TestRunnerSuite(t *testing.T) {
	suite.Run(t, new(RunnerSuite))
}

func (s *RunnerSuite) property() *propast.Table {
	tab := propast.Safety("safe")
	tab.PNF()
	tab.ENF()
	return tab
}

func (s *RunnerSuite) TestConvergesToHoldsAfterOneRefinementRound() {
	require := s.Require()
	sp := space.New()
	m := branchingMachine{}
	_, err := sp.Seed(m, machine.Input{})
	require.NoError(err)

	runner := cegar.NewRunner(sp, m, s.property(), machine.Input{})
	verdict, stats, err := runner.Run(context.Background(), cegar.Options{MaxRounds: 5})
	require.NoError(err)
	require.Equal(check.Holds, verdict.Outcome)
	require.Equal(1, stats.Refinements)
}

func (s *RunnerSuite) TestReportsNotProductiveWhenRootCannotBeRefinedFurther() {
	require := s.Require()
	sp := space.New()
	m := stuckMachine{}
	_, err := sp.Seed(m, nil)
	require.NoError(err)

	runner := cegar.NewRunner(sp, m, s.property(), nil)
	_, _, err = runner.Run(context.Background(), cegar.Options{MaxRounds: 5})
	require.ErrorIs(err, cegar.ErrRefinementNotProductive)
}

func (s *RunnerSuite) TestZeroMaxRoundsIsUnbounded() {
	require := s.Require()
	sp := space.New()
	m := branchingMachine{}
	_, err := sp.Seed(m, machine.Input{})
	require.NoError(err)

	runner := cegar.NewRunner(sp, m, s.property(), machine.Input{})
	verdict, _, err := runner.Run(context.Background(), cegar.Options{})
	require.NoError(err)
	require.Equal(check.Holds, verdict.Outcome)
}
