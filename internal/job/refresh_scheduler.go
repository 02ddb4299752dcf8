// Package job provides background job schedulers.
package job

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"anime-catalog-service/internal/app/service"
	"anime-catalog-service/pkg/locker"
)

// RefreshScheduler periodically re-runs the current-season listing so its
// cache entries stay warm, with distributed locking so a fleet performs one
// upstream refresh per interval instead of one per instance.
type RefreshScheduler struct {
	catalog  *service.CatalogService
	interval time.Duration
	timeout  time.Duration
	pages    int
	logger   *zap.Logger
	locker   locker.DistributedLocker

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// RefreshConfig holds refresh scheduler configuration.
type RefreshConfig struct {
	Interval  time.Duration
	Timeout   time.Duration
	Pages     int
	OnStartup bool
}

// NewRefreshScheduler creates a new RefreshScheduler.
func NewRefreshScheduler(
	catalog *service.CatalogService,
	cfg RefreshConfig,
	logger *zap.Logger,
	locker locker.DistributedLocker,
) *RefreshScheduler {
	pages := cfg.Pages
	if pages < 1 {
		pages = 1
	}

	return &RefreshScheduler{
		catalog:  catalog,
		interval: cfg.Interval,
		timeout:  cfg.Timeout,
		pages:    pages,
		logger:   logger,
		locker:   locker,
	}
}

// Start begins the background refresh job.
func (s *RefreshScheduler) Start(runOnStartup bool) {
	s.ctx, s.cancel = context.WithCancel(context.Background())

	s.logger.Info("starting refresh scheduler",
		zap.Duration("interval", s.interval),
		zap.Int("pages", s.pages),
		zap.Bool("run_on_startup", runOnStartup),
	)

	s.wg.Add(1)
	go s.run(runOnStartup)
}

// Stop gracefully stops the scheduler.
func (s *RefreshScheduler) Stop() {
	s.logger.Info("stopping refresh scheduler")
	s.cancel()
	s.wg.Wait()
	s.logger.Info("refresh scheduler stopped")
}

// run is the main loop of the scheduler.
func (s *RefreshScheduler) run(runOnStartup bool) {
	defer s.wg.Done()

	if runOnStartup {
		s.executeRefresh()
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.ctx.Done():
			return
		case <-ticker.C:
			s.executeRefresh()
		}
	}
}

// executeRefresh warms the current-season cache under a distributed lock.
//
// Locking behavior:
//   - Lock TTL = interval duration (cooldown model, not timeout)
//   - Success: lock held for the full interval so other instances skip
//   - Failure: lock released immediately so another instance may retry
func (s *RefreshScheduler) executeRefresh() {
	const lockKey = "refresh:current-season:lock"

	acquired, err := s.locker.Acquire(s.ctx, lockKey, s.interval)
	if err != nil {
		s.logger.Error("failed to acquire distributed lock", zap.Error(err))

		return
	}
	if !acquired {
		s.logger.Debug("another instance is refreshing, skipping execution")

		return
	}

	ctx, cancel := context.WithTimeout(s.ctx, s.timeout)
	defer cancel()

	start := time.Now()
	warmed := 0
	var lastErr error

	for page := 1; page <= s.pages; page++ {
		result, refreshErr := s.catalog.CurrentSeason(ctx, page, 50)
		if refreshErr != nil {
			lastErr = refreshErr
			s.logger.Warn("refresh page failed",
				zap.Int("page", page),
				zap.Error(refreshErr),
			)
			continue
		}
		warmed += result.Count
	}

	if lastErr != nil {
		if err := s.locker.Release(s.ctx, lockKey); err != nil {
			s.logger.Error("failed to release lock after refresh error", zap.Error(err))
		}
		s.logger.Info("refresh completed with errors, lock released for retry",
			zap.Int("records_warmed", warmed),
			zap.Duration("duration", time.Since(start)),
		)

		return
	}

	s.logger.Info("refresh completed, lock held for cooldown",
		zap.Int("records_warmed", warmed),
		zap.Duration("duration", time.Since(start)),
		zap.Duration("cooldown", s.interval),
	)
}
