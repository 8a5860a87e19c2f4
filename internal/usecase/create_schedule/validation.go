package create_schedule

import (
	"fmt"
	"strings"

	"github.com/malnis/cleansched/internal/domain"
	"github.com/malnis/cleansched/pkg/types"
)

// validateRequest checks required fields and formats. On any failure the
// whole submission is rejected; nothing is written.
func validateRequest(req *Request) (types.DateString, domain.TimeSlot, error) {
	if strings.TrimSpace(req.Name) == "" {
		return "", "", fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(req.Name) > domain.MaxNameLength {
		return "", "", fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Address) == "" {
		return "", "", fmt.Errorf("%w: address is required", ErrInvalidInput)
	}
	if len(req.Address) > domain.MaxAddressLength {
		return "", "", fmt.Errorf("%w: address is too long", ErrInvalidInput)
	}

	if strings.TrimSpace(req.ContactNumber) == "" {
		return "", "", fmt.Errorf("%w: contactNumber is required", ErrInvalidInput)
	}
	if len(req.ContactNumber) > domain.MaxContactLength {
		return "", "", fmt.Errorf("%w: contactNumber is too long", ErrInvalidInput)
	}

	if strings.TrimSpace(req.ServiceType) == "" {
		return "", "", fmt.Errorf("%w: serviceType is required", ErrInvalidInput)
	}
	if len(req.ServiceType) > domain.MaxServiceTypeLength {
		return "", "", fmt.Errorf("%w: serviceType is too long", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return "", "", fmt.Errorf("%w: notes are too long", ErrInvalidInput)
	}

	if req.Latitude == nil {
		return "", "", fmt.Errorf("%w: latitude is required", ErrInvalidInput)
	}
	if req.Longitude == nil {
		return "", "", fmt.Errorf("%w: longitude is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Date) == "" {
		return "", "", fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	date, err := types.ParseDateString(req.Date)
	if err != nil {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidDate, req.Date)
	}

	if strings.TrimSpace(req.TimeSlot) == "" {
		return "", "", fmt.Errorf("%w: time is required", ErrInvalidInput)
	}
	slot := domain.TimeSlot(req.TimeSlot)
	if !domain.IsValidTimeSlot(slot) {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidTimeSlot, req.TimeSlot)
	}

	return date, slot, nil
}
