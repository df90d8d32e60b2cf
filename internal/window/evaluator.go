// Package window decides whether a store is currently accepting orders and
// which calendar date an incoming order counts against.
package window

import (
	"fmt"
	"time"

	"github.com/platelunch/ordercore/internal/models"
)

// Verdict is the result of evaluating a store's acceptance window at a
// given instant.
type Verdict struct {
	Status     string // models.AcceptanceCurrent, AcceptanceTomorrow or AcceptanceClosed
	CanOrder   bool
	TargetDate string // menu date the order counts against; empty when closed
	Message    string
}

// Evaluate computes the acceptance verdict for now against the schedule.
// It is a pure function: identical inputs always yield identical verdicts,
// and it never touches the real clock or any store. now must already be in
// the store's local time zone.
//
// The override is consulted only once the same-day window has closed; a
// stale "current" override past cutoff reads as closed. A schedule with
// missing or unparseable times fails closed rather than defaulting open.
func Evaluate(now time.Time, schedule *models.StoreSchedule) Verdict {
	if schedule == nil {
		return closedVerdict("ordering is closed")
	}

	startMinutes, err := models.ParseClockTime(schedule.BusinessStartTime)
	if err != nil {
		return closedVerdict("ordering is closed")
	}
	cutoffMinutes, err := models.ParseClockTime(schedule.OrderCutoffTime)
	if err != nil {
		return closedVerdict("ordering is closed")
	}
	// Midnight-spanning windows are rejected at schedule-write time; if one
	// slipped through, fail closed instead of guessing.
	if startMinutes >= cutoffMinutes {
		return closedVerdict("ordering is closed")
	}

	nowMinutes := now.Hour()*60 + now.Minute()

	// Cutoff is exclusive: at exactly the cutoff minute the window is shut.
	if nowMinutes >= startMinutes && nowMinutes < cutoffMinutes {
		return Verdict{
			Status:     models.AcceptanceCurrent,
			CanOrder:   true,
			TargetDate: models.FormatMenuDate(now),
			Message:    fmt.Sprintf("accepting orders for today until %s", schedule.OrderCutoffTime),
		}
	}

	if schedule.AcceptanceOverride == models.AcceptanceTomorrow {
		tomorrow := models.FormatMenuDate(now.AddDate(0, 0, 1))
		return Verdict{
			Status:     models.AcceptanceTomorrow,
			CanOrder:   true,
			TargetDate: tomorrow,
			Message:    fmt.Sprintf("taking orders for tomorrow (%s)", tomorrow),
		}
	}

	return closedVerdict(fmt.Sprintf("ordering is closed; orders are taken from %s to %s", schedule.BusinessStartTime, schedule.OrderCutoffTime))
}

func closedVerdict(message string) Verdict {
	return Verdict{
		Status:   models.AcceptanceClosed,
		CanOrder: false,
		Message:  message,
	}
}
