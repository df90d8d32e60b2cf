// Package refresh runs the operational job that keeps persisted acceptance
// overrides honest. The window evaluator recomputes the time window on
// every call, so ordering stays correct even if this worker never runs;
// the worker only normalises a stale "current" override once the cutoff
// has passed, so dashboards and owner tooling read the true state.
package refresh

import (
	"context"
	"log"
	"time"

	"github.com/platelunch/ordercore/internal/models"
	"github.com/platelunch/ordercore/internal/repositories"
	"github.com/platelunch/ordercore/internal/window"
)

type Worker struct {
	schedules repositories.ScheduleRepository
	interval  time.Duration

	Now func() time.Time
}

func NewWorker(schedules repositories.ScheduleRepository, interval time.Duration) *Worker {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Worker{schedules: schedules, interval: interval, Now: time.Now}
}

// Run loops until the context is cancelled.
func (w *Worker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log.Printf("cutoff refresh worker running every %s", w.interval)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := w.RunOnce(ctx); err != nil {
				log.Printf("cutoff refresh pass failed: %v", err)
			}
		}
	}
}

// RunOnce scans all schedules and closes any "current" override left stale
// past its cutoff.
func (w *Worker) RunOnce(ctx context.Context) error {
	schedules, err := w.schedules.GetAll(ctx)
	if err != nil {
		return err
	}

	for _, schedule := range schedules {
		if schedule.AcceptanceOverride != models.AcceptanceCurrent {
			continue
		}
		now := w.Now().In(schedule.Location())
		verdict := window.Evaluate(now, schedule)
		if verdict.Status != models.AcceptanceClosed {
			continue
		}
		if err := w.schedules.SetOverride(ctx, schedule.StoreID, models.AcceptanceClosed); err != nil {
			log.Printf("failed to close stale override for store %s: %v", schedule.StoreID, err)
			continue
		}
		log.Printf("closed stale override for store %s (cutoff %s)", schedule.StoreID, schedule.OrderCutoffTime)
	}
	return nil
}
