package create_schedule

import (
	"time"

	"github.com/malnis/cleansched/internal/domain"
	"github.com/malnis/cleansched/pkg/types"
)

// Request carries a client booking submission.
// Latitude/Longitude are pointers so a missing coordinate is distinguishable
// from a zero one.
type Request struct {
	Name          string
	Address       string
	ContactNumber string
	ServiceType   string
	Notes         *string
	Latitude      *float64
	Longitude     *float64
	Date          string
	TimeSlot      string
}

// Response is the created schedule.
type Response struct {
	ID            int64
	Name          string
	Address       string
	ContactNumber string
	ServiceType   string
	Notes         *string
	Latitude      float64
	Longitude     float64
	Date          types.DateString
	TimeSlot      domain.TimeSlot
	CreatedAt     time.Time
}
