package schedules

import "errors"

var (
	// ErrScheduleNotFound is returned when the schedule does not exist.
	ErrScheduleNotFound = errors.New("schedule not found")

	// ErrSlotTaken is returned when an edit collides with an existing
	// (date, time slot) pair.
	ErrSlotTaken = errors.New("slot already booked for this date")

	// ErrInvalidInput is returned on malformed update fields.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on storage or internal failures.
	ErrInternal = errors.New("service: internal error")
)
