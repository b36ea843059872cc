package domain

import (
	"time"

	"github.com/m04kA/Coach-ScheduleService/pkg/types"
)

// BookedCall is a single calendar-date manifestation of a booking:
// either the booking's own stored interval or a weekly follow-up
// projection of a recurring booking. Derived per query, never persisted.
type BookedCall struct {
	BookingID       string
	ClientName      string
	CallType        CallType
	Recurring       bool
	Start           time.Time
	End             time.Time
	DurationMinutes int
}

// FreeSlot is a candidate booking window inside business hours
type FreeSlot struct {
	Start           time.Time
	End             time.Time
	DurationMinutes int
}

// SchedulePolicy describes the daily booking window and slot geometry.
// The defaults model a 10:30-19:30 day with 40-minute candidate slots
// offered at a 5-minute stride.
type SchedulePolicy struct {
	OpenTime             types.TimeString
	CloseTime            types.TimeString
	BookingMarginMinutes int
	SlotDurationMinutes  int
	SlotStepMinutes      int
}

// DefaultSchedulePolicy returns the standard business-hours policy
func DefaultSchedulePolicy() SchedulePolicy {
	return SchedulePolicy{
		OpenTime:             types.TimeString(DefaultOpenTime),
		CloseTime:            types.TimeString(DefaultCloseTime),
		BookingMarginMinutes: DefaultBookingMarginMinutes,
		SlotDurationMinutes:  DefaultSlotDurationMinutes,
		SlotStepMinutes:      DefaultSlotStepMinutes,
	}
}

// Validate checks that the policy describes a usable booking window
func (p SchedulePolicy) Validate() error {
	if err := p.OpenTime.Validate(); err != nil {
		return err
	}
	if err := p.CloseTime.Validate(); err != nil {
		return err
	}
	return nil
}

// WindowOnDate anchors the business window onto a calendar date,
// returning the half-open interval [open, close)
func (p SchedulePolicy) WindowOnDate(date time.Time) (time.Time, time.Time, error) {
	open, err := p.OpenTime.OnDate(date)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	close, err := p.CloseTime.OnDate(date)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return open, close, nil
}
