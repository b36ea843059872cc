package domain

// Call durations
const (
	OnboardingDurationMinutes = 40
	FollowupDurationMinutes   = 20
)

// Default schedule policy values
const (
	DefaultOpenTime             = "10:30"
	DefaultCloseTime            = "19:30"
	DefaultBookingMarginMinutes = 20 // fixed look-ahead for the business-hours check
	DefaultSlotDurationMinutes  = OnboardingDurationMinutes
	DefaultSlotStepMinutes      = 5
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
