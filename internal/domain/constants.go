package domain

// Availability window parameters.
const (
	// AvailabilityLeadDays excludes same-day booking: the window starts at
	// today + AvailabilityLeadDays.
	AvailabilityLeadDays = 1

	// AvailabilityWindowMonths is how far ahead availability is reported,
	// in calendar months.
	AvailabilityWindowMonths = 2
)

// Business validation constants.
const (
	MaxNameLength        = 200
	MaxAddressLength     = 500
	MaxContactLength     = 50
	MaxServiceTypeLength = 100
	MaxNotesLength       = 1000
)
