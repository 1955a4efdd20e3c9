package service

import (
	"context"
	"sync"
	"time"

	"github.com/yusufaslanargun/Personal-Library-Management-System/internal/logger"
)

// FlushJob periodically runs [SyncService.FlushAllUsers]. It implements
// workers.Worker and is idle until Run is called.
type FlushJob struct {
	syncService SyncService
	interval    time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

func NewFlushJob(syncService SyncService, interval time.Duration, logger *logger.Logger) *FlushJob {
	return &FlushJob{syncService: syncService, interval: interval, logger: logger}
}

// Run stops any previously running loop, then launches a goroutine that
// flushes every interval until ctx is cancelled or Stop is called. A
// non-positive interval leaves the job idle.
func (j *FlushJob) Run(ctx context.Context) {
	if j.interval <= 0 {
		return
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.flush(jobCtx)
			}
		}
	}()

	j.logger.Info().Dur("interval", j.interval).Msg("sync flush job started")
}

func (j *FlushJob) flush(ctx context.Context) {
	n, err := j.syncService.FlushAllUsers(ctx)
	if err != nil {
		j.logger.Warn().Err(err).Int("flushed", n).Msg("periodic sync flush finished with errors")
		return
	}
	j.logger.Debug().Int("flushed", n).Msg("periodic sync flush finished")
}

// Stop cancels the loop and blocks until it has exited. Safe to call when
// the job is not running.
func (j *FlushJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
