// Package memory provides mutex-guarded in-memory implementations of the
// repository interfaces for tests and single-process deployments.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/platelunch/ordercore/internal/models"
)

type ScheduleRepository struct {
	mu        sync.Mutex
	schedules map[string]*models.StoreSchedule
}

func NewScheduleRepository() *ScheduleRepository {
	return &ScheduleRepository{schedules: make(map[string]*models.StoreSchedule)}
}

func (r *ScheduleRepository) Get(ctx context.Context, storeID string) (*models.StoreSchedule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	schedule, ok := r.schedules[storeID]
	if !ok {
		return nil, models.ErrScheduleNotFound
	}
	copied := *schedule
	return &copied, nil
}

func (r *ScheduleRepository) GetAll(ctx context.Context) ([]*models.StoreSchedule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	schedules := make([]*models.StoreSchedule, 0, len(r.schedules))
	for _, schedule := range r.schedules {
		copied := *schedule
		schedules = append(schedules, &copied)
	}
	return schedules, nil
}

func (r *ScheduleRepository) Upsert(ctx context.Context, schedule *models.StoreSchedule) error {
	if err := schedule.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *schedule
	copied.UpdatedAt = time.Now()
	r.schedules[schedule.StoreID] = &copied
	return nil
}

func (r *ScheduleRepository) SetOverride(ctx context.Context, storeID string, override string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	schedule, ok := r.schedules[storeID]
	if !ok {
		return models.ErrScheduleNotFound
	}
	schedule.AcceptanceOverride = override
	schedule.UpdatedAt = time.Now()
	return nil
}
