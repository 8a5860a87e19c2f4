package create_schedule

import (
	"context"

	"github.com/malnis/cleansched/internal/domain"
)

// ScheduleRepository is the write surface the submission path needs.
type ScheduleRepository interface {
	// Create inserts the schedule. The (date, time_slot) uniqueness check is
	// atomic inside the store; a collision returns the repository's slot-taken
	// error.
	Create(ctx context.Context, sched *domain.Schedule) (*domain.Schedule, error)
}

// Logger is the logging surface used by the use case.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
