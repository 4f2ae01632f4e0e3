package bv_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/bvcheck/bv"
)

type BackwardSuite struct {
	suite.Suite
}

func TestBackwardSuite(t *testing.T) {
	suite.Run(t, new(BackwardSuite))
}

func (s *BackwardSuite) TestNotBackwardIsIdentity() {
	require := s.Require()
	mark := bv.MarkFromBits(4, 0b0101)
	require.Equal(mark.Bits(), bv.NotBackward(bv.Unknown(4), mark).Bits())
}

func (s *BackwardSuite) TestAndBackwardSkipsKnownZeroOperand() {
	require := s.Require()
	a := bv.Known(4, 0) // every bit known-0
	b := bv.Unknown(4)
	markOut := bv.FullMark(4)
	markA, markB := bv.AndBackward(a, b, markOut)
	require.True(markA.IsEmpty())
	require.True(markB.IsEmpty())
}

func (s *BackwardSuite) TestAndBackwardMarksBothWhenAmbiguous() {
	require := s.Require()
	a := bv.Unknown(4)
	b := bv.Unknown(4)
	markOut := bv.FullMark(4)
	markA, markB := bv.AndBackward(a, b, markOut)
	require.False(markA.IsEmpty())
	require.False(markB.IsEmpty())
}

func (s *BackwardSuite) TestOrBackwardSkipsKnownOneOperand() {
	require := s.Require()
	a := bv.Known(4, 0b1111)
	b := bv.Unknown(4)
	markOut := bv.FullMark(4)
	markA, markB := bv.OrBackward(a, b, markOut)
	require.True(markA.IsEmpty())
	require.True(markB.IsEmpty())
}

func (s *BackwardSuite) TestXorBackwardMarksOnlyUnresolvedOperand() {
	require := s.Require()
	a := bv.Known(4, 0b0000)
	b := bv.Unknown(4)
	markOut := bv.FullMark(4)
	markA, markB := bv.XorBackward(a, b, markOut)
	require.True(markA.IsEmpty())
	require.False(markB.IsEmpty())
}

func (s *BackwardSuite) TestCompareBackwardMarksWholeOperandsOnAnyMark() {
	require := s.Require()
	a := bv.Unknown(4)
	b := bv.Unknown(4)
	markA, markB := bv.EqBackward(a, b, bv.FullMark(1))
	require.Equal(uint64(0b1111), markA.Bits())
	require.Equal(uint64(0b1111), markB.Bits())
}

func (s *BackwardSuite) TestCompareBackwardEmptyWhenUnmarked() {
	require := s.Require()
	a := bv.Unknown(4)
	b := bv.Unknown(4)
	markA, markB := bv.EqBackward(a, b, bv.EmptyMark(1))
	require.True(markA.IsEmpty())
	require.True(markB.IsEmpty())
}

func (s *BackwardSuite) TestAddBackwardMarksUpToHighestBit() {
	require := s.Require()
	a := bv.Unknown(4)
	b := bv.Unknown(4)
	markOut := bv.MarkFromBits(4, 0b0100) // only bit 2 marked
	markA, markB := bv.AddBackward(a, b, markOut)
	require.Equal(uint64(0b0111), markA.Bits())
	require.Equal(uint64(0b0111), markB.Bits())
}

func (s *BackwardSuite) TestSllBackwardMarksShiftedSourceBits() {
	require := s.Require()
	t := bv.Unknown(4)
	amount := bv.Known(4, 1)
	markOut := bv.MarkFromBits(4, 0b0010) // output bit 1 marked
	markT, markAmount := bv.SllBackward(t, amount, markOut)
	require.Equal(uint64(0b0001), markT.Bits()) // came from input bit 0
	require.True(markAmount.IsEmpty())          // amount already known
}

func (s *BackwardSuite) TestZExtBackwardDropsPaddingMarks() {
	require := s.Require()
	t := bv.Unknown(4)
	markOut := bv.MarkFromBits(8, 0b11110000) // only padding bits marked
	mark := bv.ZExtBackward(t, 8, markOut)
	require.True(mark.IsEmpty())
}

func (s *BackwardSuite) TestSExtBackwardMarksSignBitForPadding() {
	require := s.Require()
	t := bv.Unknown(4)
	markOut := bv.MarkFromBits(8, 0b00010000) // one padding bit marked
	mark := bv.SExtBackward(t, 8, markOut)
	require.Equal(signBit4, mark.Bits()&signBit4)
}

const signBit4 = 0b1000
