package refresh_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jrsteele09/go-ecom-client/session"
	"github.com/jrsteele09/go-ecom-client/session/refresh"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type countingStore struct {
	calls  atomic.Int64
	result session.RefreshResult
}

func (s *countingStore) RefreshAuth(context.Context) session.RefreshResult {
	s.calls.Add(1)
	return s.result
}

func TestRunner_InvokesImmediatelyAtStart(t *testing.T) {
	store := &countingStore{result: session.RefreshResult{Outcome: session.RefreshNoOp}}
	runner := refresh.NewRunner(store, refresh.WithInterval(time.Hour))
	runner.Start(context.Background())
	defer runner.Stop()

	require.Eventually(t, func() bool {
		return store.calls.Load() == 1
	}, time.Second, 5*time.Millisecond)
}

func TestRunner_FiresOnIntervalAndFailuresDoNotCancel(t *testing.T) {
	store := &countingStore{result: session.RefreshResult{
		Outcome: session.RefreshFailed,
		Err:     errors.New("backend unreachable"),
	}}
	runner := refresh.NewRunner(store, refresh.WithInterval(10*time.Millisecond))
	runner.Start(context.Background())
	defer runner.Stop()

	require.Eventually(t, func() bool {
		return store.calls.Load() >= 3
	}, time.Second, 5*time.Millisecond)
}

func TestRunner_StopCancelsTheLoop(t *testing.T) {
	store := &countingStore{result: session.RefreshResult{Outcome: session.RefreshNoOp}}
	runner := refresh.NewRunner(store, refresh.WithInterval(5*time.Millisecond))
	runner.Start(context.Background())

	require.Eventually(t, func() bool {
		return store.calls.Load() >= 2
	}, time.Second, time.Millisecond)

	runner.Stop()
	after := store.calls.Load()
	time.Sleep(30 * time.Millisecond)
	require.Equal(t, after, store.calls.Load())
}

func TestRunner_ContextCancellationEndsTheLoop(t *testing.T) {
	store := &countingStore{result: session.RefreshResult{Outcome: session.RefreshNoOp}}
	ctx, cancel := context.WithCancel(context.Background())

	runner := refresh.NewRunner(store, refresh.WithInterval(5*time.Millisecond))
	runner.Start(ctx)

	require.Eventually(t, func() bool {
		return store.calls.Load() >= 1
	}, time.Second, time.Millisecond)

	cancel()
	time.Sleep(20 * time.Millisecond)
	after := store.calls.Load()
	time.Sleep(30 * time.Millisecond)
	require.Equal(t, after, store.calls.Load())
}
