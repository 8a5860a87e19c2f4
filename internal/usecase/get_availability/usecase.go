package get_availability

import (
	"context"
	"fmt"
)

// UseCase computes per-date slot availability over the rolling booking window.
type UseCase struct {
	scheduleRepo ScheduleRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the availability use case.
func NewUseCase(scheduleRepo ScheduleRepository, logger Logger) *UseCase {
	return &UseCase{
		scheduleRepo: scheduleRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute returns the open slots for every date of the window.
//
// The result reflects a snapshot of the store at read time; it may be stale
// by the time a submission is attempted. That is fine: the submission path's
// unique constraint is the sole source of truth for acceptance.
func (uc *UseCase) Execute(ctx context.Context, _ *Request) (*Response, error) {
	now := uc.timeProvider.Now()

	// 1. One lightweight read of all (date, slot) pairs.
	dateSlots, err := uc.scheduleRepo.ListDateSlots(ctx)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to list date slots: %v", err)
		return nil, fmt.Errorf("%w: failed to list date slots: %v", ErrInternal, err)
	}

	// 2. Group booked slots by date in one pass.
	booked := buildBookedIndex(dateSlots)

	// 3. Walk the window and subtract the booked set per date. Dates absent
	// from the index yield the full catalog; bookings outside the window are
	// skipped implicitly because the walk never reaches their date.
	window := availabilityWindow(now)
	days := make([]DayAvailability, 0, len(window))
	for _, date := range window {
		days = append(days, DayAvailability{
			Date:  date,
			Slots: openSlots(booked[date]),
		})
	}

	uc.logger.Info("GetAvailability: computed availability for %d dates from %d schedules",
		len(days), len(dateSlots))

	return &Response{Days: days}, nil
}
