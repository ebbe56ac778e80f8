package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ciphershare/go-cipher-share/internal/logger"
)

// spySweeper counts DeleteExpired calls.
type spySweeper struct {
	calls atomic.Int64
	err   error
}

func (s *spySweeper) DeleteExpired(_ context.Context) (int64, int64, error) {
	s.calls.Add(1)
	return 0, 0, s.err
}

func TestNewExpiredSharesJob_ImplementsWorkerInterfaces(t *testing.T) {
	job := NewExpiredSharesJob(&spySweeper{}, time.Hour, logger.Nop())
	require.NotNil(t, job)

	var _ Worker = job
	var _ Stoppable = job
}

func TestExpiredSharesJob_Start_SweepsImmediatelyAndOnTicker(t *testing.T) {
	spy := &spySweeper{}
	job := NewExpiredSharesJob(spy, 10*time.Millisecond, logger.Nop())

	// 10ms interval plus the immediate sweep: 55ms gives several calls.
	job.Start(context.Background())
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := spy.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "expected several sweeps, got: %d", got)
}

func TestExpiredSharesJob_Stop_HaltsSweeping(t *testing.T) {
	spy := &spySweeper{}
	job := NewExpiredSharesJob(spy, 10*time.Millisecond, logger.Nop())

	job.Start(context.Background())
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	// Stop blocks until the goroutine exits, so the count is final here.
	callsAfterStop := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)
	callsLater := spy.calls.Load()

	assert.Equal(t, callsAfterStop, callsLater, "no sweeps may happen after Stop")
}

func TestExpiredSharesJob_Stop_BeforeStart_NoPanic(t *testing.T) {
	job := NewExpiredSharesJob(&spySweeper{}, time.Hour, logger.Nop())

	assert.NotPanics(t, func() { job.Stop() })
}

func TestExpiredSharesJob_DoubleStop_NoPanic(t *testing.T) {
	job := NewExpiredSharesJob(&spySweeper{}, 10*time.Millisecond, logger.Nop())

	job.Start(context.Background())
	job.Stop()

	assert.NotPanics(t, func() { job.Stop() })
}

func TestExpiredSharesJob_DefaultInterval_StillSweepsOnce(t *testing.T) {
	spy := &spySweeper{}
	job := NewExpiredSharesJob(spy, 0, logger.Nop())

	// interval <= 0 falls back to one hour; only the immediate sweep runs
	// within the observation window.
	job.Start(context.Background())
	time.Sleep(20 * time.Millisecond)
	job.Stop()

	assert.Equal(t, int64(1), spy.calls.Load())
}

func TestExpiredSharesJob_Restart_ContinuesSweeping(t *testing.T) {
	spy := &spySweeper{}
	job := NewExpiredSharesJob(spy, 10*time.Millisecond, logger.Nop())

	job.Start(context.Background())
	time.Sleep(30 * time.Millisecond)

	callsBefore := spy.calls.Load()
	assert.Greater(t, callsBefore, int64(0))

	// A second Start stops the previous goroutine and launches a new one.
	job.Start(context.Background())
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	assert.Greater(t, spy.calls.Load(), callsBefore, "restart must keep sweeping")
}

func TestExpiredSharesJob_ContextCancel_StopReturns(t *testing.T) {
	spy := &spySweeper{}
	job := NewExpiredSharesJob(spy, 10*time.Millisecond, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx)
	time.Sleep(30 * time.Millisecond)
	cancel()

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
		// ok
	case <-time.After(1 * time.Second):
		t.Fatal("Stop hung after context cancellation")
	}
}

func TestExpiredSharesJob_SweepError_DoesNotStopJob(t *testing.T) {
	spy := &spySweeper{err: assert.AnError}
	job := NewExpiredSharesJob(spy, 10*time.Millisecond, logger.Nop())

	job.Start(context.Background())
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := spy.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "sweeping must continue despite errors: %d", got)
}

func TestExpiredSharesJob_Run_StartsSweeping(t *testing.T) {
	spy := &spySweeper{}
	job := NewExpiredSharesJob(spy, 10*time.Millisecond, logger.Nop())

	job.Run()
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	assert.Greater(t, spy.calls.Load(), int64(0))
}
