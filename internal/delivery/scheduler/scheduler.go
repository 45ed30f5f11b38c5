// Package scheduler runs periodic maintenance inside the API process.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"adcopy/config"
	"adcopy/internal/delivery"
	"adcopy/internal/domain/lifecycle"
	"adcopy/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultInterval = time.Hour

// Params holds dependencies for the cleanup scheduler, injected by Fx.
type Params struct {
	fx.In

	Lc      fx.Lifecycle
	Cfg     *config.Config
	Logger  *slog.Logger
	Cleanup usecase.CleanupUsecase
}

// Scheduler runs cleanup and cache pruning every cleanup.interval.
type Scheduler struct {
	enabled  bool
	interval time.Duration
	cleanup  usecase.CleanupUsecase
	logger   *slog.Logger

	stopOnce sync.Once
	done     chan struct{}
	stopped  chan struct{}
}

// New creates the scheduler. It is registered as a delivery so it starts and
// stops with the servers.
func New(params Params) delivery.Delivery {
	s := &Scheduler{
		interval: defaultInterval,
		cleanup:  params.Cleanup,
		logger:   params.Logger,
		done:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}
	if c := params.Cfg.Cleanup; c != nil {
		s.enabled = c.Enabled
		if c.Interval > 0 {
			s.interval = c.Interval
		}
	}

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s
}

// Serve blocks, running one pass per tick, until the application stops.
func (s *Scheduler) Serve(ctx context.Context) error {
	defer close(s.stopped)

	if !s.enabled {
		s.logger.Info("Cleanup scheduler disabled")

		return nil
	}

	s.logger.Info("Starting cleanup scheduler", slog.Duration("interval", s.interval))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-s.done:
			return nil
		case <-ticker.C:
			s.RunOnce(ctx)
		}
	}
}

// RunOnce performs one cleanup pass followed by a cache prune. Failures are
// logged and never stop the schedule.
func (s *Scheduler) RunOnce(ctx context.Context) {
	report := s.cleanup.PerformCleanup(ctx)
	if report.TempFiles.ScanErr != "" || report.Objects.ScanErr != "" {
		s.logger.Warn("Cleanup scan incomplete",
			slog.String("temp_files", report.TempFiles.ScanErr),
			slog.String("objects", report.Objects.ScanErr),
		)
	}

	if _, err := s.cleanup.PruneCaches(ctx); err != nil {
		s.logger.Warn("Cache prune failed", slog.Any("error", err))
	}
}

func (s *Scheduler) stop(ctx context.Context) error {
	s.stopOnce.Do(func() { close(s.done) })

	waitCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	select {
	case <-s.stopped:
		return nil
	case <-waitCtx.Done():
		return errors.Wrap(waitCtx.Err(), "cleanup scheduler did not stop")
	}
}
