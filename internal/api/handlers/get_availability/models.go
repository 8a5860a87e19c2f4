package get_availability

import (
	getAvailability "github.com/malnis/cleansched/internal/usecase/get_availability"
)

// AvailabilityResponse maps each date of the booking window to its open
// slots, e.g. {"2025-07-10": ["01:00 PM - 06:00 PM"]}. Every date of the
// window is present; a fully booked date maps to an empty array.
type AvailabilityResponse map[string][]string

// FromUseCaseResponse converts the ordered use case response into the HTTP
// map. JSON objects carry no order, so the ordering lives in the use case
// result only.
func FromUseCaseResponse(resp *getAvailability.Response) AvailabilityResponse {
	out := make(AvailabilityResponse, len(resp.Days))
	for _, day := range resp.Days {
		slots := make([]string, 0, len(day.Slots))
		for _, slot := range day.Slots {
			slots = append(slots, slot.String())
		}
		out[day.Date.String()] = slots
	}
	return out
}
