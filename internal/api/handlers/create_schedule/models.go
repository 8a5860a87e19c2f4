package create_schedule

import (
	"time"

	createSchedule "github.com/malnis/cleansched/internal/usecase/create_schedule"
)

// CreateScheduleRequest is the HTTP request model for a booking submission.
// Latitude/Longitude are pointers so "missing" and "zero" are distinguishable;
// a non-numeric JSON value fails decoding outright.
type CreateScheduleRequest struct {
	Name          string   `json:"name"`
	Address       string   `json:"address"`
	ContactNumber string   `json:"contactNumber"`
	Date          string   `json:"date"` // "2025-07-10"
	Time          string   `json:"time"` // "07:00 AM - 12:00 NN"
	ServiceType   string   `json:"serviceType"`
	Notes         *string  `json:"notes,omitempty"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
}

// ScheduleResponse is the HTTP response model for the created booking.
type ScheduleResponse struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Address       string  `json:"address"`
	ContactNumber string  `json:"contactNumber"`
	Date          string  `json:"date"`
	Time          string  `json:"time"`
	ServiceType   string  `json:"serviceType"`
	Notes         *string `json:"notes,omitempty"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	CreatedAt     string  `json:"createdAt"`
}

// ToUseCaseRequest converts the HTTP request into the use case model.
func (r *CreateScheduleRequest) ToUseCaseRequest() *createSchedule.Request {
	return &createSchedule.Request{
		Name:          r.Name,
		Address:       r.Address,
		ContactNumber: r.ContactNumber,
		ServiceType:   r.ServiceType,
		Notes:         r.Notes,
		Latitude:      r.Latitude,
		Longitude:     r.Longitude,
		Date:          r.Date,
		TimeSlot:      r.Time,
	}
}

// FromUseCaseResponse converts the use case response into the HTTP model.
func FromUseCaseResponse(resp *createSchedule.Response) *ScheduleResponse {
	return &ScheduleResponse{
		ID:            resp.ID,
		Name:          resp.Name,
		Address:       resp.Address,
		ContactNumber: resp.ContactNumber,
		Date:          resp.Date.String(),
		Time:          resp.TimeSlot.String(),
		ServiceType:   resp.ServiceType,
		Notes:         resp.Notes,
		Latitude:      resp.Latitude,
		Longitude:     resp.Longitude,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
	}
}
