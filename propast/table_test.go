package propast_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/bvcheck/propast"
)

type TableSuite struct {
	suite.Suite
}

func TestTableSuite(t *testing.T) {
	suite.Run(t, new(TableSuite))
}

func (s *TableSuite) TestSafetyBuildsNegatedEUOfConstAndNegatedAtomic() {
	require := s.Require()
	tab := propast.Safety("safe")

	root := tab.Entry(tab.Root)
	require.Equal(propast.Negation, root.Kind)

	eu := tab.Entry(root.Inner)
	require.Equal(propast.EU, eu.Kind)

	hold := tab.Entry(eu.Hold)
	require.Equal(propast.Const, hold.Kind)
	require.True(hold.ConstValue)

	until := tab.Entry(eu.Until)
	require.Equal(propast.Negation, until.Kind)
	require.Equal("safe", tab.Entry(until.Inner).Name)
}

func (s *TableSuite) TestLenGrowsAsEntriesAreAdded() {
	require := s.Require()
	tab := propast.NewTable()
	require.Equal(0, tab.Len())
	tab.AddAtomic("p")
	require.Equal(1, tab.Len())
	tab.AddAtomic("q")
	require.Equal(2, tab.Len())
}

func (s *TableSuite) TestKindStringIsHumanReadable() {
	require := s.Require()
	require.Equal("EU", propast.EU.String())
	require.Equal("AR", propast.AR.String())
}
