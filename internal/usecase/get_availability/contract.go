package get_availability

import (
	"context"
	"time"

	"github.com/malnis/cleansched/internal/domain"
)

// ScheduleRepository is the read surface the availability computation needs.
type ScheduleRepository interface {
	// ListDateSlots returns the (date, time_slot) projection of all schedules.
	ListDateSlots(ctx context.Context) ([]domain.DateSlot, error)
}

// TimeProvider supplies the current time (injectable for tests).
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging surface used by the use case.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production clock.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
