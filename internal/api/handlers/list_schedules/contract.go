package list_schedules

import (
	"context"

	"github.com/malnis/cleansched/internal/service/schedules/models"
)

type SchedulesService interface {
	List(ctx context.Context) (*models.ScheduleListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
