package update_schedule

import (
	"context"

	"github.com/malnis/cleansched/internal/service/schedules/models"
)

type SchedulesService interface {
	Update(ctx context.Context, id int64, req *models.UpdateScheduleRequest) (*models.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
