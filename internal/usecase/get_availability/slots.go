package get_availability

import (
	"time"

	"github.com/malnis/cleansched/internal/domain"
	"github.com/malnis/cleansched/pkg/types"
)

// availabilityWindow enumerates every calendar date from now+AvailabilityLeadDays
// through now+AvailabilityWindowMonths (inclusive), ascending.
//
// The window starts tomorrow so same-day booking is never offered. The end is
// two calendar months ahead of today, so the window length follows month
// lengths rather than being a fixed day count.
func availabilityWindow(now time.Time) []types.DateString {
	first := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).
		AddDate(0, 0, domain.AvailabilityLeadDays)
	last := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).
		AddDate(0, domain.AvailabilityWindowMonths, 0)

	dates := make([]types.DateString, 0, 62)
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		dates = append(dates, types.NewDateString(d))
	}
	return dates
}

// buildBookedIndex groups booked slots by date in a single pass over the
// projections. O(n) in the number of schedules.
func buildBookedIndex(dateSlots []domain.DateSlot) map[types.DateString]map[domain.TimeSlot]struct{} {
	index := make(map[types.DateString]map[domain.TimeSlot]struct{}, len(dateSlots))
	for _, ds := range dateSlots {
		taken, ok := index[ds.Date]
		if !ok {
			taken = make(map[domain.TimeSlot]struct{}, 2)
			index[ds.Date] = taken
		}
		taken[ds.TimeSlot] = struct{}{}
	}
	return index
}

// openSlots returns the catalog minus the taken set, preserving catalog order.
// Always returns a non-nil slice.
func openSlots(taken map[domain.TimeSlot]struct{}) []domain.TimeSlot {
	open := make([]domain.TimeSlot, 0, 2)
	for _, slot := range domain.TimeSlots() {
		if _, booked := taken[slot]; !booked {
			open = append(open, slot)
		}
	}
	return open
}
