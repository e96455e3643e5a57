// Package scheduler hosts recurring background jobs that run independently
// of request handling.
package scheduler

import (
	"context"
	"time"

	"github.com/unifeed/unifeed/logger"
)

// EvictionStore is the slice of the document cache the job needs.
type EvictionStore interface {
	EvictOlderThan(ctx context.Context, retention time.Duration) error
}

// EvictionJob periodically deletes cached documents older than the retention
// window. An eviction failure is logged and the schedule keeps ticking.
type EvictionJob struct {
	store     EvictionStore
	interval  time.Duration
	retention time.Duration
}

func NewEvictionJob(store EvictionStore, interval, retention time.Duration) *EvictionJob {
	return &EvictionJob{store: store, interval: interval, retention: retention}
}

// Run blocks until ctx is cancelled, evicting on every tick. Callers start
// it on its own goroutine.
func (j *EvictionJob) Run(ctx context.Context) {
	logger.L.Infow("starting cache eviction job",
		"interval", j.interval, "retention", j.retention)

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.L.Info("cache eviction job stopped")
			return
		case <-ticker.C:
			if err := j.store.EvictOlderThan(ctx, j.retention); err != nil {
				logger.L.Errorw("cache eviction failed", "error", err)
				continue
			}
			logger.L.Debug("cache eviction run complete")
		}
	}
}
