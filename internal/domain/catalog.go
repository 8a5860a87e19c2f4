package domain

import "time"

// Service is one entry of the cleaning-service catalog shown on the site.
type Service struct {
	ID          int64
	Name        string
	Description *string
	Price       *float64
	Duration    *string
	Img         *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ServiceUpdate carries the mutable fields for a catalog edit.
// Nil fields are left unchanged.
type ServiceUpdate struct {
	Name        *string
	Description *string
	Price       *float64
	Duration    *string
	Img         *string
}

// Cleaner is one entry of the cleaner roster shown on the site.
type Cleaner struct {
	ID        int64
	Name      string
	Bio       *string
	Img       *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CleanerUpdate carries the mutable fields for a roster edit.
type CleanerUpdate struct {
	Name *string
	Bio  *string
	Img  *string
}
