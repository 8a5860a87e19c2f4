package create_schedule

import "errors"

var (
	// ErrInvalidInput is returned when a required field is missing or malformed.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidDate is returned when the date is not a valid YYYY-MM-DD value.
	ErrInvalidDate = errors.New("invalid schedule date")

	// ErrInvalidTimeSlot is returned when the time is not one of the catalog
	// slots. Free-form times would create bookings that the availability
	// listing can never surface or free.
	ErrInvalidTimeSlot = errors.New("time slot is not in the catalog")

	// ErrSlotTaken is returned when the (date, time slot) pair is already booked.
	ErrSlotTaken = errors.New("slot already booked for this date")

	// ErrInternal is returned on storage or internal failures.
	ErrInternal = errors.New("usecase: internal error")
)
