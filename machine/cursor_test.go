package machine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/bvcheck/machine"
)

type CursorSuite struct {
	suite.Suite
}

func TestCursorSuite(t *testing.T) {
	suite.Run(t, new(CursorSuite))
}

func (s *CursorSuite) TestCursorYieldsInOrder() {
	require := s.Require()
	values := []int{10, 20, 30}
	cursor := machine.NewInputCursor(func(i int) (machine.Input, bool, error) {
		if i >= len(values) {
			return nil, false, nil
		}
		return machine.Input{"v": values[i]}, true, nil
	})

	ctx := context.Background()
	for _, want := range values {
		in, ok, err := cursor.Next(ctx)
		require.NoError(err)
		require.True(ok)
		require.Equal(want, in["v"])
	}
	_, ok, err := cursor.Next(ctx)
	require.NoError(err)
	require.False(ok)
	require.True(cursor.Done())
}

func (s *CursorSuite) TestResetRewinds() {
	require := s.Require()
	cursor := machine.NewInputCursor(func(i int) (machine.Input, bool, error) {
		if i >= 1 {
			return nil, false, nil
		}
		return machine.Input{"v": i}, true, nil
	})
	ctx := context.Background()
	_, ok, _ := cursor.Next(ctx)
	require.True(ok)
	_, ok, _ = cursor.Next(ctx)
	require.False(ok)

	cursor.Reset()
	in, ok, err := cursor.Next(ctx)
	require.NoError(err)
	require.True(ok)
	require.Equal(0, in["v"])
}

func (s *CursorSuite) TestCancelledContextStopsCursor() {
	require := s.Require()
	cursor := machine.NewInputCursor(func(i int) (machine.Input, bool, error) {
		return machine.Input{"v": i}, true, nil
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, ok, err := cursor.Next(ctx)
	require.Error(err)
	require.False(ok)
}

func (s *CursorSuite) TestProducerErrorStopsCursor() {
	require := s.Require()
	boom := context.DeadlineExceeded
	cursor := machine.NewInputCursor(func(i int) (machine.Input, bool, error) {
		return nil, false, boom
	})
	_, ok, err := cursor.Next(context.Background())
	require.ErrorIs(err, boom)
	require.False(ok)
}
