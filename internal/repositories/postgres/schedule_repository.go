package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/platelunch/ordercore/internal/models"
)

type ScheduleRepository struct {
	pool *pgxpool.Pool
}

func NewScheduleRepository(pool *pgxpool.Pool) *ScheduleRepository {
	return &ScheduleRepository{pool: pool}
}

func (r *ScheduleRepository) Get(ctx context.Context, storeID string) (*models.StoreSchedule, error) {
	query := `
        SELECT store_id, business_start_time, order_cutoff_time,
               acceptance_override, timezone, updated_at
        FROM store_schedules
        WHERE store_id = $1
    `
	schedule := &models.StoreSchedule{}
	err := r.pool.QueryRow(ctx, query, storeID).Scan(
		&schedule.StoreID,
		&schedule.BusinessStartTime,
		&schedule.OrderCutoffTime,
		&schedule.AcceptanceOverride,
		&schedule.Timezone,
		&schedule.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrScheduleNotFound
	}
	if err != nil {
		return nil, err
	}
	return schedule, nil
}

func (r *ScheduleRepository) GetAll(ctx context.Context) ([]*models.StoreSchedule, error) {
	query := `
        SELECT store_id, business_start_time, order_cutoff_time,
               acceptance_override, timezone, updated_at
        FROM store_schedules
    `
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var schedules []*models.StoreSchedule
	for rows.Next() {
		schedule := &models.StoreSchedule{}
		err := rows.Scan(
			&schedule.StoreID,
			&schedule.BusinessStartTime,
			&schedule.OrderCutoffTime,
			&schedule.AcceptanceOverride,
			&schedule.Timezone,
			&schedule.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, schedule)
	}
	return schedules, rows.Err()
}

func (r *ScheduleRepository) Upsert(ctx context.Context, schedule *models.StoreSchedule) error {
	if err := schedule.Validate(); err != nil {
		return err
	}
	query := `
        INSERT INTO store_schedules (
            store_id, business_start_time, order_cutoff_time,
            acceptance_override, timezone, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (store_id) DO UPDATE SET
            business_start_time = EXCLUDED.business_start_time,
            order_cutoff_time = EXCLUDED.order_cutoff_time,
            acceptance_override = EXCLUDED.acceptance_override,
            timezone = EXCLUDED.timezone,
            updated_at = EXCLUDED.updated_at
    `
	_, err := r.pool.Exec(ctx, query,
		schedule.StoreID,
		schedule.BusinessStartTime,
		schedule.OrderCutoffTime,
		schedule.AcceptanceOverride,
		schedule.Timezone,
		time.Now(),
	)
	return err
}

func (r *ScheduleRepository) SetOverride(ctx context.Context, storeID string, override string) error {
	query := `
        UPDATE store_schedules
        SET acceptance_override = $2, updated_at = $3
        WHERE store_id = $1
    `
	tag, err := r.pool.Exec(ctx, query, storeID, override, time.Now())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrScheduleNotFound
	}
	return nil
}
