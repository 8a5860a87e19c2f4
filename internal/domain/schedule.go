package domain

import (
	"time"

	"github.com/malnis/cleansched/pkg/types"
)

// Schedule represents one confirmed cleaning appointment.
// Date and TimeSlot together identify the booked slot: no two schedules may
// share the same (Date, TimeSlot) pair. The constraint lives in the database
// (unique index), not in application code.
type Schedule struct {
	ID            int64
	Name          string
	Address       string
	ContactNumber string
	ServiceType   string
	Notes         *string
	Latitude      float64
	Longitude     float64
	Date          types.DateString
	TimeSlot      TimeSlot
	CreatedAt     time.Time
}

// ScheduleUpdate carries the mutable fields for an admin edit.
// Nil fields are left unchanged.
type ScheduleUpdate struct {
	Name          *string
	Address       *string
	ContactNumber *string
	ServiceType   *string
	Notes         *string
	Latitude      *float64
	Longitude     *float64
	Date          *types.DateString
	TimeSlot      *TimeSlot
}

// IsEmpty reports whether the update changes nothing.
func (u *ScheduleUpdate) IsEmpty() bool {
	return u.Name == nil && u.Address == nil && u.ContactNumber == nil &&
		u.ServiceType == nil && u.Notes == nil && u.Latitude == nil &&
		u.Longitude == nil && u.Date == nil && u.TimeSlot == nil
}

// DateSlot is the lightweight (date, slot) projection of a schedule,
// used by the availability computation.
type DateSlot struct {
	Date     types.DateString
	TimeSlot TimeSlot
}
