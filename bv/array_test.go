package bv_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/bvcheck/bv"
)

type ArraySuite struct {
	suite.Suite
}

func TestArraySuite(t *testing.T) {
	suite.Run(t, new(ArraySuite))
}

func (s *ArraySuite) TestReadOfFreshArrayReturnsDefault() {
	require := s.Require()
	arr := bv.NewArray(4, 8, bv.Known(8, 0))
	v, ok := arr.Read(bv.Known(4, 3)).Value()
	require.True(ok)
	require.Equal(uint64(0), v)
}

func (s *ArraySuite) TestWriteThenReadSameIndex() {
	require := s.Require()
	arr := bv.NewArray(4, 8, bv.Known(8, 0))
	idx := bv.Known(4, 3)
	arr = arr.Write(idx, bv.Known(8, 42))
	// Write is a weak update and Read always joins in the default, so the
	// read gives back the join of the default and the written value.
	result := arr.Read(idx)
	require.True(result.CanContain(42))
	require.True(result.Equal(bv.Join(bv.Known(8, 0), bv.Known(8, 42))))
}

func (s *ArraySuite) TestWriteDoesNotDisturbDisjointIndex() {
	require := s.Require()
	arr := bv.NewArray(4, 8, bv.Known(8, 0))
	arr = arr.Write(bv.Known(4, 3), bv.Known(8, 42))
	v, ok := arr.Read(bv.Known(4, 5)).Value()
	require.True(ok)
	require.Equal(uint64(0), v)
}

func (s *ArraySuite) TestReadWithUnknownIndexJoinsAllCompatibleElements() {
	require := s.Require()
	arr := bv.NewArray(4, 8, bv.Known(8, 0))
	arr = arr.Write(bv.Known(4, 3), bv.Known(8, 42))
	result := arr.Read(bv.Unknown(4))
	require.True(result.CanContain(0))
	require.True(result.CanContain(42))
}

func (s *ArraySuite) TestWriteWithUnknownIndexJoinsEverywhere() {
	require := s.Require()
	arr := bv.NewArray(4, 8, bv.Known(8, 0))
	arr = arr.Write(bv.Unknown(4), bv.Known(8, 7))
	result := arr.Read(bv.Known(4, 9))
	require.True(result.CanContain(0))
	require.True(result.CanContain(7))
}

func (s *ArraySuite) TestArrayReadBackwardMarksIndexWhenMultipleContributors() {
	require := s.Require()
	arr := bv.NewArray(2, 4, bv.Known(4, 0))
	arr = arr.Write(bv.Known(2, 1), bv.Known(4, 5))
	_, markIdx := bv.ArrayReadBackward(arr, bv.Unknown(2), bv.FullMark(4))
	require.False(markIdx.IsEmpty())
}

func (s *ArraySuite) TestArrayWriteBackwardEmptyMarkAtKnownIndexMarksNothing() {
	require := s.Require()
	arr := bv.NewArray(2, 4, bv.Known(4, 0))
	idx := bv.Known(2, 1)
	val := bv.Known(4, 5)
	markOut := bv.NewArrayMark(2, 4)
	_, markIdx, markVal := bv.ArrayWriteBackward(arr, idx, val, markOut)
	require.True(markIdx.IsEmpty())
	require.True(markVal.IsEmpty())
}
