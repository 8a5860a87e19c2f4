package create_schedule

import (
	"context"

	createSchedule "github.com/malnis/cleansched/internal/usecase/create_schedule"
)

type CreateScheduleUseCase interface {
	Execute(ctx context.Context, req *createSchedule.Request) (*createSchedule.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
