package schedules

import (
	"context"

	"github.com/malnis/cleansched/internal/domain"
)

// ScheduleRepository is the storage surface for admin schedule management.
type ScheduleRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Schedule, error)
	List(ctx context.Context) ([]*domain.Schedule, error)
	Update(ctx context.Context, id int64, upd *domain.ScheduleUpdate) error
	Delete(ctx context.Context, id int64) error
}

// Logger is the logging surface used by the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
