package propast_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/bvcheck/propast"
)

type ENFSuite struct {
	suite.Suite
}

func TestENFSuite(t *testing.T) {
	suite.Run(t, new(ENFSuite))
}

func (s *ENFSuite) TestEFBecomesEU() {
	require := s.Require()
	tab := propast.NewTable()
	atom := tab.AddAtomic("done")
	ef := tab.AddEF(atom)
	tab.SetRoot(ef)

	tab.ENF()

	root := tab.Entry(tab.Root)
	require.Equal(propast.EU, root.Kind)
	require.Equal(propast.Const, tab.Entry(root.Hold).Kind)
	require.True(tab.Entry(root.Hold).ConstValue)
	require.Equal(propast.Atomic, tab.Entry(root.Until).Kind)
}

func (s *ENFSuite) TestAXBecomesNegatedEXOfNegatedInner() {
	require := s.Require()
	tab := propast.NewTable()
	atom := tab.AddAtomic("safe")
	ax := tab.AddAX(atom)
	tab.SetRoot(ax)

	tab.ENF()

	root := tab.Entry(tab.Root)
	require.Equal(propast.Negation, root.Kind)
	ex := tab.Entry(root.Inner)
	require.Equal(propast.EX, ex.Kind)
	inner := tab.Entry(ex.Inner)
	require.Equal(propast.Negation, inner.Kind)
	require.Equal(propast.Atomic, tab.Entry(inner.Inner).Kind)
}

func (s *ENFSuite) TestEGIsAlreadyMinimalAndUnchanged() {
	require := s.Require()
	tab := propast.NewTable()
	atom := tab.AddAtomic("safe")
	eg := tab.AddEG(atom)
	tab.SetRoot(eg)

	tab.ENF()

	root := tab.Entry(tab.Root)
	require.Equal(propast.EG, root.Kind)
	require.Equal(atom, root.Inner)
}

func (s *ENFSuite) TestAndBecomesNegatedOrOfNegatedOperands() {
	require := s.Require()
	tab := propast.NewTable()
	p := tab.AddAtomic("p")
	q := tab.AddAtomic("q")
	and := tab.AddAnd(p, q)
	tab.SetRoot(and)

	tab.ENF()

	root := tab.Entry(tab.Root)
	require.Equal(propast.Negation, root.Kind)
	or := tab.Entry(root.Inner)
	require.Equal(propast.Or, or.Kind)
	require.Equal(propast.Negation, tab.Entry(or.Hold).Kind)
	require.Equal(propast.Negation, tab.Entry(or.Until).Kind)
}

// TestSafetyPropertyReducesToMinimalBasis runs the full PNF then ENF
// pipeline on the default safety idiom and checks every surviving node
// belongs to the minimal basis {Const, Atomic, Negation, Or, EX, EG, EU}.
func (s *ENFSuite) TestSafetyPropertyReducesToMinimalBasis() {
	require := s.Require()
	tab := propast.Safety("safe")
	tab.PNF()
	tab.ENF()

	root := tab.Entry(tab.Root)
	require.Equal(propast.Negation, root.Kind)
	eu := tab.Entry(root.Inner)
	require.Equal(propast.EU, eu.Kind)

	holdNeg := tab.Entry(eu.Hold)
	require.Equal(propast.Negation, holdNeg.Kind)
	require.Equal(propast.Const, tab.Entry(holdNeg.Inner).Kind)

	untilNeg := tab.Entry(eu.Until)
	require.Equal(propast.Negation, untilNeg.Kind)
	require.Equal(propast.Atomic, tab.Entry(untilNeg.Inner).Kind)
	require.Equal("safe", tab.Entry(untilNeg.Inner).Name)
}

func (s *ENFSuite) TestAUReducesToBasisOperators() {
	require := s.Require()
	tab := propast.NewTable()
	p := tab.AddAtomic("p")
	q := tab.AddAtomic("q")
	au := tab.AddAU(p, q)
	tab.SetRoot(au)

	tab.ENF()

	var walk func(idx int)
	allowed := map[propast.Kind]bool{
		propast.Const: true, propast.Atomic: true, propast.Negation: true,
		propast.Or: true, propast.EX: true, propast.EG: true, propast.EU: true,
	}
	walk = func(idx int) {
		e := tab.Entry(idx)
		require.True(allowed[e.Kind], "unexpected kind %s in minimal basis", e.Kind)
		switch e.Kind {
		case propast.Negation, propast.EX, propast.EG:
			walk(e.Inner)
		case propast.Or, propast.EU:
			walk(e.Hold)
			walk(e.Until)
		}
	}
	walk(tab.Root)
}
