package create_schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/malnis/cleansched/internal/domain"
	scheduleRepo "github.com/malnis/cleansched/internal/infra/storage/schedule"
)

// UseCase handles client booking submissions.
type UseCase struct {
	scheduleRepo ScheduleRepository
	logger       Logger
}

// NewUseCase creates the submission use case.
func NewUseCase(scheduleRepo ScheduleRepository, logger Logger) *UseCase {
	return &UseCase{
		scheduleRepo: scheduleRepo,
		logger:       logger,
	}
}

// Execute validates the submission and inserts the schedule.
//
// There is deliberately no availability pre-check here: a read-then-write
// sequence admits a race where two concurrent submissions both pass the
// check. The insert itself carries the conflict check through the store's
// unique constraint, so at most one of any set of racing submissions for a
// (date, slot) pair succeeds.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateSchedule: submission for date=%s, slot=%q, service=%q",
		req.Date, req.TimeSlot, req.ServiceType)

	// 1. Validate required fields and formats.
	date, slot, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateSchedule: validation failed: %v", err)
		return nil, err
	}

	// 2. Insert. The store resolves conflicts atomically.
	sched := &domain.Schedule{
		Name:          req.Name,
		Address:       req.Address,
		ContactNumber: req.ContactNumber,
		ServiceType:   req.ServiceType,
		Notes:         req.Notes,
		Latitude:      *req.Latitude,
		Longitude:     *req.Longitude,
		Date:          date,
		TimeSlot:      slot,
	}

	created, err := uc.scheduleRepo.Create(ctx, sched)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrSlotTaken) {
			uc.logger.Warn("CreateSchedule: slot taken for date=%s, slot=%q", date, slot)
			return nil, ErrSlotTaken
		}
		uc.logger.Error("CreateSchedule: failed to create schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to create schedule: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateSchedule: created schedule id=%d for date=%s, slot=%q",
		created.ID, created.Date, created.TimeSlot)

	return &Response{
		ID:            created.ID,
		Name:          created.Name,
		Address:       created.Address,
		ContactNumber: created.ContactNumber,
		ServiceType:   created.ServiceType,
		Notes:         created.Notes,
		Latitude:      created.Latitude,
		Longitude:     created.Longitude,
		Date:          created.Date,
		TimeSlot:      created.TimeSlot,
		CreatedAt:     created.CreatedAt,
	}, nil
}
