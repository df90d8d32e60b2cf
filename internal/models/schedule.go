package models

import (
	"fmt"
	"time"
)

// StoreSchedule holds a store's order acceptance window configuration.
// Times are "HH:MM" strings in the store's local time zone; they are kept
// unparsed so that a malformed value can be detected and failed closed at
// evaluation time rather than silently defaulting.
type StoreSchedule struct {
	StoreID            string    `json:"store_id"`
	BusinessStartTime  string    `json:"business_start_time"`
	OrderCutoffTime    string    `json:"order_cutoff_time"`
	AcceptanceOverride string    `json:"acceptance_override"` // current, tomorrow or closed
	Timezone           string    `json:"timezone"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// ParseClockTime parses an "HH:MM" wall-clock value and returns it as
// minutes since midnight.
func ParseClockTime(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// Validate enforces the schedule-write invariants: both times must parse
// and the window must open before it closes on the same day. Windows that
// span midnight are rejected here because the minute-of-day comparison in
// the evaluator cannot represent them.
func (s *StoreSchedule) Validate() error {
	start, err := ParseClockTime(s.BusinessStartTime)
	if err != nil {
		return &ValidationError{Field: "business_start_time", Reason: err.Error()}
	}
	cutoff, err := ParseClockTime(s.OrderCutoffTime)
	if err != nil {
		return &ValidationError{Field: "order_cutoff_time", Reason: err.Error()}
	}
	if start >= cutoff {
		return &ValidationError{
			Field:  "order_cutoff_time",
			Reason: fmt.Sprintf("cutoff %s must be after business start %s", s.OrderCutoffTime, s.BusinessStartTime),
		}
	}
	switch s.AcceptanceOverride {
	case "", AcceptanceCurrent, AcceptanceTomorrow, AcceptanceClosed:
	default:
		return &ValidationError{Field: "acceptance_override", Reason: fmt.Sprintf("unknown override %q", s.AcceptanceOverride)}
	}
	return nil
}

// Location resolves the schedule's time zone, falling back to UTC when
// unset so callers always get a usable location.
func (s *StoreSchedule) Location() *time.Location {
	if s.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
