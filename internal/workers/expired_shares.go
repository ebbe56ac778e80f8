package workers

import (
	"context"
	"sync"
	"time"

	"github.com/ciphershare/go-cipher-share/internal/logger"
)

// defaultSweepInterval is used when the configured cleanup interval is
// missing or non-positive.
const defaultSweepInterval = time.Hour

// Sweeper removes expired shared links and the files they orphan.
// service.CleanupService satisfies it.
type Sweeper interface {
	DeleteExpired(ctx context.Context) (linksDeleted int64, filesDeleted int64, err error)
}

// ExpiredSharesJob periodically deletes expired shares. Expiry is already
// enforced on every retrieval, so the job only reclaims storage; a missed
// tick never extends a share's life.
type ExpiredSharesJob struct {
	sweeper  Sweeper
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewExpiredSharesJob creates an ExpiredSharesJob that sweeps every interval.
// The job is idle until Start is called.
func NewExpiredSharesJob(sweeper Sweeper, interval time.Duration, logger *logger.Logger) *ExpiredSharesJob {
	if interval <= 0 {
		interval = defaultSweepInterval
	}
	return &ExpiredSharesJob{sweeper: sweeper, interval: interval, logger: logger}
}

// Run implements Worker. It starts the job with a background context;
// shutdown happens through Stop.
func (j *ExpiredSharesJob) Run() {
	j.Start(context.Background())
}

// Start stops any previously running job, then launches a background
// goroutine that sweeps immediately and again every interval. The goroutine
// exits when ctx is cancelled or Stop is called.
func (j *ExpiredSharesJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(j.logger.WithContext(ctx))
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	j.logger.Info().Dur("interval", j.interval).Msg("expired shares sweeper started")

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		j.sweep(jobCtx)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.sweep(jobCtx)
			}
		}
	}()
}

// Stop cancels the background goroutine's context and blocks until the
// goroutine has fully exited. Safe to call when the job is not running
// (no-op in that case).
func (j *ExpiredSharesJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *ExpiredSharesJob) sweep(ctx context.Context) {
	// Failures are logged by the sweeper itself; the next tick retries.
	_, _, _ = j.sweeper.DeleteExpired(ctx)
}
