package sweeper

import (
	"context"
	"time"

	"github.com/malnis/cleansched/pkg/types"
)

// ScheduleRepository is the delete surface the sweep needs.
type ScheduleRepository interface {
	// DeleteBefore removes every schedule dated strictly before cutoff and
	// returns the number of deleted rows.
	DeleteBefore(ctx context.Context, cutoff types.DateString) (int64, error)
}

// TimeProvider supplies the current time (injectable for tests).
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging surface used by the sweeper.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics records sweep outcomes. Optional.
type Metrics interface {
	ObserveSweep(deleted int64, err error)
}

// realTimeProvider is the production clock.
type realTimeProvider struct{}

func (realTimeProvider) Now() time.Time { return time.Now() }

// Sweeper deletes schedules whose date has already passed.
// Runs are idempotent: a repeat run with the same cutoff deletes nothing.
type Sweeper struct {
	scheduleRepo ScheduleRepository
	timeProvider TimeProvider
	metrics      Metrics
	logger       Logger
}

// New creates a sweeper. metrics may be nil when metrics are disabled.
func New(scheduleRepo ScheduleRepository, metrics Metrics, logger Logger) *Sweeper {
	return &Sweeper{
		scheduleRepo: scheduleRepo,
		timeProvider: realTimeProvider{},
		metrics:      metrics,
		logger:       logger,
	}
}

// RunOnce purges every schedule dated strictly before today and returns the
// number of deleted records.
//
// A failed sweep is logged and reported to metrics but must never block the
// service: callers treat the returned error as advisory.
func (s *Sweeper) RunOnce(ctx context.Context) (int64, error) {
	cutoff := types.NewDateString(s.timeProvider.Now())

	deleted, err := s.scheduleRepo.DeleteBefore(ctx, cutoff)
	if s.metrics != nil {
		s.metrics.ObserveSweep(deleted, err)
	}
	if err != nil {
		s.logger.Error("Sweep: purge before %s failed: %v", cutoff, err)
		return 0, err
	}

	if deleted > 0 {
		s.logger.Info("Sweep: purged %d stale schedules dated before %s", deleted, cutoff)
	} else {
		s.logger.Info("Sweep: nothing to purge before %s", cutoff)
	}

	return deleted, nil
}

// Start runs one sweep immediately, then repeats on the given interval until
// ctx is cancelled. Errors are swallowed after logging so the loop survives
// transient storage failures.
func (s *Sweeper) Start(ctx context.Context, interval time.Duration) {
	if _, err := s.RunOnce(ctx); err != nil {
		s.logger.Warn("Sweep: startup run failed, will retry on next tick: %v", err)
	}

	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Sweep: stopping")
			return
		case <-ticker.C:
			if _, err := s.RunOnce(ctx); err != nil {
				s.logger.Warn("Sweep: periodic run failed, will retry on next tick: %v", err)
			}
		}
	}
}
