package domain

import "time"

// CallType represents the kind of coaching call being booked
type CallType string

const (
	CallOnboarding CallType = "onboarding"
	CallFollowup   CallType = "followup"
)

// IsValid returns true for a known call type
func (t CallType) IsValid() bool {
	return t == CallOnboarding || t == CallFollowup
}

// DurationMinutes returns the fixed call length for the type
func (t CallType) DurationMinutes() int {
	if t == CallOnboarding {
		return OnboardingDurationMinutes
	}
	return FollowupDurationMinutes
}

// IsRecurring returns true if calls of this type repeat weekly.
// Only onboarding calls recur in this model.
func (t CallType) IsRecurring() bool {
	return t == CallOnboarding
}

// Booking represents a persisted call appointment with a client.
// A recurring booking occupies its stored interval once, plus a weekly
// follow-up projection on every later date with the same weekday.
type Booking struct {
	ID          string
	ClientID    string
	CallType    CallType
	StartAt     time.Time // literal stored start instant
	Recurring   bool
	DayOfWeek   int       // 0 = Sunday .. 6 = Saturday
	FirstCallAt time.Time // recurrence anchor; equals StartAt at creation
	CreatedAt   time.Time
}

// DurationMinutes returns the literal call length derived from the call type
func (b *Booking) DurationMinutes() int {
	return b.CallType.DurationMinutes()
}

// EndAt returns the literal stored end instant
func (b *Booking) EndAt() time.Time {
	return b.StartAt.Add(time.Duration(b.DurationMinutes()) * time.Minute)
}

// Overlaps reports whether the half-open intervals [start1,end1) and
// [start2,end2) intersect: start1 < end2 && start2 < end1.
// Back-to-back intervals do not overlap.
func Overlaps(start1, end1, start2, end2 time.Time) bool {
	return start1.Before(end2) && start2.Before(end1)
}
