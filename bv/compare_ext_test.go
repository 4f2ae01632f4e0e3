package bv_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/bvcheck/bv"
)

type CompareExtSuite struct {
	suite.Suite
}

func TestCompareExtSuite(t *testing.T) {
	suite.Run(t, new(CompareExtSuite))
}

func (s *CompareExtSuite) TestEqKnownValues() {
	require := s.Require()
	v, ok := bv.Eq(bv.Known(4, 3), bv.Known(4, 3)).Value()
	require.True(ok)
	require.Equal(uint64(1), v)

	v, ok = bv.Eq(bv.Known(4, 3), bv.Known(4, 4)).Value()
	require.True(ok)
	require.Equal(uint64(0), v)
}

func (s *CompareExtSuite) TestEqUnknownIsUnresolved() {
	require := s.Require()
	_, ok := bv.Eq(bv.Unknown(4), bv.Known(4, 3)).Value()
	require.False(ok)
}

func (s *CompareExtSuite) TestUgtAndComplement() {
	require := s.Require()
	a := bv.Known(4, 5)
	b := bv.Known(4, 3)
	gt, ok := bv.Ugt(a, b).Value()
	require.True(ok)
	require.Equal(uint64(1), gt)

	lte, ok := bv.Ulte(a, b).Value()
	require.True(ok)
	require.Equal(uint64(0), lte)
}

func (s *CompareExtSuite) TestSgtHandlesNegatives() {
	require := s.Require()
	neg1 := bv.Known(4, 0b1111) // -1
	pos1 := bv.Known(4, 0b0001)
	gt, ok := bv.Sgt(pos1, neg1).Value()
	require.True(ok)
	require.Equal(uint64(1), gt)
}

func (s *CompareExtSuite) TestZExtZeroFillsHighBits() {
	require := s.Require()
	t := bv.Known(4, 0b1010)
	wide := bv.ZExt(t, 8)
	v, ok := wide.Value()
	require.True(ok)
	require.Equal(uint64(0b1010), v)
}

func (s *CompareExtSuite) TestSExtReplicatesSignBit() {
	require := s.Require()
	neg := bv.Known(4, 0b1000) // -8 at width 4
	wide := bv.SExt(neg, 8)
	v, ok := wide.Value()
	require.True(ok)
	require.Equal(uint64(0b11111000), v)
}

func (s *CompareExtSuite) TestSExtOfUnknownSignBitJoinsBothExtensions() {
	require := s.Require()
	t := bv.Unknown(4)
	wide := bv.SExt(t, 6)
	require.False(wide.IsFullyKnown())
	require.True(wide.CanContain(0b111000))
	require.True(wide.CanContain(0b000000))
}
