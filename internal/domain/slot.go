package domain

// TimeSlot is one of the fixed half-day windows a schedule can occupy.
type TimeSlot string

// The slot catalog. Exact strings, order-sensitive for display.
const (
	SlotMorning   TimeSlot = "07:00 AM - 12:00 NN"
	SlotAfternoon TimeSlot = "01:00 PM - 06:00 PM"
)

// TimeSlots returns the slot catalog in display order.
// Returned as a fresh slice so callers can't mutate the catalog.
func TimeSlots() []TimeSlot {
	return []TimeSlot{SlotMorning, SlotAfternoon}
}

// IsValidTimeSlot reports whether the given value belongs to the catalog.
func IsValidTimeSlot(slot TimeSlot) bool {
	for _, s := range TimeSlots() {
		if s == slot {
			return true
		}
	}
	return false
}

// String returns the raw slot value.
func (s TimeSlot) String() string {
	return string(s)
}
