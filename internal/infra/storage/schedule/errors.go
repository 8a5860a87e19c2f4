package schedule

import "errors"

var (
	// ErrScheduleNotFound is returned when no schedule exists for the given id.
	ErrScheduleNotFound = errors.New("schedule.repository: schedule not found")

	// ErrSlotTaken is returned when an insert or update collides with an
	// existing (date, time_slot) pair. Raised by the unique constraint, so
	// concurrent writers racing on the same slot get exactly one winner.
	ErrSlotTaken = errors.New("schedule.repository: slot already booked for this date")

	// ErrBuildQuery is returned when building a SQL query fails.
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery is returned when executing a SQL query fails.
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow is returned when scanning a query result fails.
	ErrScanRow = errors.New("schedule.repository: failed to scan row")
)
