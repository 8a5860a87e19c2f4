package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/malnis/cleansched/internal/domain"
	"github.com/malnis/cleansched/pkg/types"
)

var (
	// ErrInvalidDate is returned when an update carries a malformed date.
	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

	// ErrInvalidTimeSlot is returned when an update carries a non-catalog slot.
	ErrInvalidTimeSlot = errors.New("time slot is not in the catalog")
)

// UpdateScheduleRequest carries an admin edit. Nil fields stay unchanged.
type UpdateScheduleRequest struct {
	Name          *string  `json:"name,omitempty"`
	Address       *string  `json:"address,omitempty"`
	ContactNumber *string  `json:"contactNumber,omitempty"`
	ServiceType   *string  `json:"serviceType,omitempty"`
	Notes         *string  `json:"notes,omitempty"`
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`
	Date          *string  `json:"date,omitempty"`
	TimeSlot      *string  `json:"time,omitempty"`
}

// ToDomainUpdate validates and converts the request into a domain update.
func (r *UpdateScheduleRequest) ToDomainUpdate() (*domain.ScheduleUpdate, error) {
	upd := &domain.ScheduleUpdate{
		Name:          r.Name,
		Address:       r.Address,
		ContactNumber: r.ContactNumber,
		ServiceType:   r.ServiceType,
		Notes:         r.Notes,
		Latitude:      r.Latitude,
		Longitude:     r.Longitude,
	}

	if r.Date != nil {
		date, err := types.ParseDateString(*r.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDate, *r.Date)
		}
		upd.Date = &date
	}

	if r.TimeSlot != nil {
		slot := domain.TimeSlot(*r.TimeSlot)
		if !domain.IsValidTimeSlot(slot) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTimeSlot, *r.TimeSlot)
		}
		upd.TimeSlot = &slot
	}

	return upd, nil
}

// ScheduleResponse is the admin-facing schedule DTO.
type ScheduleResponse struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Address       string    `json:"address"`
	ContactNumber string    `json:"contactNumber"`
	ServiceType   string    `json:"serviceType"`
	Notes         *string   `json:"notes,omitempty"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	Date          string    `json:"date"`
	TimeSlot      string    `json:"time"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ScheduleListResponse is the list wrapper.
type ScheduleListResponse struct {
	Schedules []ScheduleResponse `json:"schedules"`
}

// FromDomainSchedule converts a domain schedule into the DTO.
func FromDomainSchedule(s *domain.Schedule) *ScheduleResponse {
	if s == nil {
		return nil
	}
	return &ScheduleResponse{
		ID:            s.ID,
		Name:          s.Name,
		Address:       s.Address,
		ContactNumber: s.ContactNumber,
		ServiceType:   s.ServiceType,
		Notes:         s.Notes,
		Latitude:      s.Latitude,
		Longitude:     s.Longitude,
		Date:          s.Date.String(),
		TimeSlot:      s.TimeSlot.String(),
		CreatedAt:     s.CreatedAt,
	}
}

// FromDomainScheduleList converts a slice of domain schedules.
func FromDomainScheduleList(schedules []*domain.Schedule) *ScheduleListResponse {
	out := make([]ScheduleResponse, 0, len(schedules))
	for _, s := range schedules {
		out = append(out, *FromDomainSchedule(s))
	}
	return &ScheduleListResponse{Schedules: out}
}
