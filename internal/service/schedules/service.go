package schedules

import (
	"context"
	"errors"
	"fmt"

	scheduleRepo "github.com/malnis/cleansched/internal/infra/storage/schedule"
	"github.com/malnis/cleansched/internal/service/schedules/models"
)

// Service exposes the admin operations over schedules.
type Service struct {
	scheduleRepo ScheduleRepository
	logger       Logger
}

// NewService creates the schedules service.
func NewService(scheduleRepo ScheduleRepository, logger Logger) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		logger:       logger,
	}
}

// GetByID fetches one schedule.
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ScheduleResponse, error) {
	s.logger.Info("GetByID: fetching schedule id=%d", id)

	sched, err := s.scheduleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			s.logger.Warn("GetByID: schedule id=%d not found", id)
			return nil, ErrScheduleNotFound
		}
		s.logger.Error("GetByID: repository error for schedule id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSchedule(sched), nil
}

// List returns all schedules ordered by date.
func (s *Service) List(ctx context.Context) (*models.ScheduleListResponse, error) {
	schedules, err := s.scheduleRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d schedules", len(schedules))
	return models.FromDomainScheduleList(schedules), nil
}

// Update applies an admin edit and returns the updated schedule.
// Moving a schedule onto an occupied slot fails with ErrSlotTaken.
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("Update: updating schedule id=%d", id)

	upd, err := req.ToDomainUpdate()
	if err != nil {
		s.logger.Warn("Update: invalid update for schedule id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if upd.IsEmpty() {
		s.logger.Warn("Update: empty update for schedule id=%d", id)
		return nil, fmt.Errorf("%w: no fields to update", ErrInvalidInput)
	}

	if err := s.scheduleRepo.Update(ctx, id, upd); err != nil {
		switch {
		case errors.Is(err, scheduleRepo.ErrScheduleNotFound):
			s.logger.Warn("Update: schedule id=%d not found", id)
			return nil, ErrScheduleNotFound
		case errors.Is(err, scheduleRepo.ErrSlotTaken):
			s.logger.Warn("Update: slot taken while updating schedule id=%d", id)
			return nil, ErrSlotTaken
		default:
			s.logger.Error("Update: repository error for schedule id=%d: %v", id, err)
			return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}
	}

	updated, err := s.scheduleRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Update: failed to reload schedule id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - reload error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated schedule id=%d", id)
	return models.FromDomainSchedule(updated), nil
}

// Delete removes a schedule.
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting schedule id=%d", id)

	if err := s.scheduleRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			s.logger.Warn("Delete: schedule id=%d not found", id)
			return ErrScheduleNotFound
		}
		s.logger.Error("Delete: repository error for schedule id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted schedule id=%d", id)
	return nil
}
