package bv_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/bvcheck/bv"
)

type MarkSuite struct {
	suite.Suite
}

func TestMarkSuite(t *testing.T) {
	suite.Run(t, new(MarkSuite))
}

func (s *MarkSuite) TestEmptyAndFullMark() {
	require := s.Require()
	require.True(bv.EmptyMark(4).IsEmpty())
	require.False(bv.FullMark(4).IsEmpty())
	require.Equal(uint64(0b1111), bv.FullMark(4).Bits())
}

func (s *MarkSuite) TestJoinMarkIsUnion() {
	require := s.Require()
	a := bv.MarkFromBits(4, 0b0101)
	b := bv.MarkFromBits(4, 0b1010)
	require.Equal(uint64(0b1111), bv.JoinMark(a, b).Bits())
}

func (s *MarkSuite) TestContains() {
	require := s.Require()
	full := bv.FullMark(4)
	partial := bv.MarkFromBits(4, 0b0010)
	require.True(full.Contains(partial))
	require.False(partial.Contains(full))
}

func (s *MarkSuite) TestStringRendersMSBFirst() {
	require := s.Require()
	m := bv.MarkFromBits(4, 0b1000)
	require.Equal("#...", m.String())
}
