package jobs

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeriodic_RunsImmediatelyAndOnTicks(t *testing.T) {
	var calls atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())

	job := NewHorizonJob(func(context.Context) (int, error) {
		if calls.Add(1) == 3 {
			cancel()
		}
		return 1, nil
	}, 5*time.Millisecond, nil)

	err := job.Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	assert.GreaterOrEqual(t, calls.Load(), int32(3))
}

func TestPeriodic_FailuresDoNotStopTheLoop(t *testing.T) {
	var calls atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())

	job := NewReleaseReconcileJob(func(context.Context) (int, error) {
		if calls.Add(1) >= 2 {
			cancel()
		}
		return 0, errors.New("dynamodb unavailable")
	}, 5*time.Millisecond, nil)

	require.ErrorIs(t, job.Run(ctx), context.Canceled)
	assert.GreaterOrEqual(t, calls.Load(), int32(2))
}

func TestPeriodic_ZeroIntervalIsDisabled(t *testing.T) {
	called := false
	job := NewHorizonJob(func(context.Context) (int, error) {
		called = true
		return 0, nil
	}, 0, nil)

	require.NoError(t, job.Run(context.Background()))
	assert.False(t, called)
}

func TestPeriodic_TimeoutBoundsEachRun(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	job := &Periodic{
		Name:     "bounded",
		Interval: time.Hour,
		Timeout:  10 * time.Millisecond,
		Task: func(runCtx context.Context) (int, error) {
			defer cancel()
			_, ok := runCtx.Deadline()
			assert.True(t, ok)
			return 0, nil
		},
	}

	require.ErrorIs(t, job.Run(ctx), context.Canceled)
}
