package get_availability

import (
	"github.com/malnis/cleansched/internal/domain"
	"github.com/malnis/cleansched/pkg/types"
)

// Request is empty for now: the window is always computed from the server
// clock. Kept as a struct so the handler contract matches the other use cases.
type Request struct{}

// DayAvailability lists the open slots for one date, in catalog order.
// Slots is empty (never nil) when both slots of the day are booked.
type DayAvailability struct {
	Date  types.DateString
	Slots []domain.TimeSlot
}

// Response holds one entry per date of the availability window, ascending.
// Every date in the window appears, including fully free and fully booked
// ones, so callers never special-case missing dates.
type Response struct {
	Days []DayAvailability
}
