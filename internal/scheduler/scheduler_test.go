package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAfterRunsCallback(t *testing.T) {
	s := New()
	defer s.Close()

	var ran atomic.Int32
	_, err := s.After(5*time.Millisecond, func(ctx context.Context) {
		assert.NoError(t, ctx.Err())
		ran.Add(1)
	})
	require.NoError(t, err)

	require.Eventually(t, func() bool { return ran.Load() == 1 }, time.Second, 2*time.Millisecond)
	assert.Equal(t, 0, s.Pending())
}

func TestCancelStopsPendingTask(t *testing.T) {
	s := New()
	defer s.Close()

	var ran atomic.Bool
	id, err := s.After(50*time.Millisecond, func(context.Context) { ran.Store(true) })
	require.NoError(t, err)

	assert.True(t, s.Cancel(id))
	assert.False(t, s.Cancel(id))
	time.Sleep(80 * time.Millisecond)
	assert.False(t, ran.Load())
}

func TestAfterKeyedSupersedes(t *testing.T) {
	s := New()
	defer s.Close()

	var first, second atomic.Bool
	_, err := s.AfterKeyed("greeting", 30*time.Millisecond, func(context.Context) { first.Store(true) })
	require.NoError(t, err)
	_, err = s.AfterKeyed("greeting", 10*time.Millisecond, func(context.Context) { second.Store(true) })
	require.NoError(t, err)
	assert.Equal(t, 1, s.Pending())

	require.Eventually(t, second.Load, time.Second, 2*time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	assert.False(t, first.Load())
}

func TestCloseCancelsEverything(t *testing.T) {
	s := New()

	var ran atomic.Int32
	for i := 0; i < 5; i++ {
		_, err := s.After(40*time.Millisecond, func(context.Context) { ran.Add(1) })
		require.NoError(t, err)
	}
	s.Close()
	s.Close()

	_, err := s.After(time.Millisecond, func(context.Context) { ran.Add(1) })
	assert.ErrorIs(t, err, ErrClosed)

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(0), ran.Load())
	assert.Equal(t, 0, s.Pending())
}

func TestCloseWaitsForRunningCallback(t *testing.T) {
	s := New()

	started := make(chan struct{})
	var sawCancel atomic.Bool
	_, err := s.After(time.Millisecond, func(ctx context.Context) {
		close(started)
		<-ctx.Done()
		sawCancel.Store(true)
	})
	require.NoError(t, err)

	<-started
	s.Close()
	assert.True(t, sawCancel.Load())
}
