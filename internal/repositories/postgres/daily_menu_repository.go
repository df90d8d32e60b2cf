package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/platelunch/ordercore/internal/models"
)

type DailyMenuRepository struct {
	pool *pgxpool.Pool
}

func NewDailyMenuRepository(pool *pgxpool.Pool) *DailyMenuRepository {
	return &DailyMenuRepository{pool: pool}
}

func (r *DailyMenuRepository) Publish(ctx context.Context, menu *models.DailyMenu) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `
        INSERT INTO daily_menus (id, store_id, menu_date, created_at)
        VALUES ($1, $2, $3, $4)
    `
	_, err = tx.Exec(ctx, query, menu.ID, menu.StoreID, menu.MenuDate, time.Now())
	if err != nil {
		return fmt.Errorf("failed to insert daily menu: %w", err)
	}

	_, err = tx.CopyFrom(
		ctx,
		pgx.Identifier{"daily_menu_items"},
		[]string{
			"id", "daily_menu_id", "menu_id", "name", "unit_price",
			"starting_quantity", "current_quantity", "is_available",
		},
		pgx.CopyFromSlice(len(menu.Items), func(i int) ([]interface{}, error) {
			item := menu.Items[i]
			return []interface{}{
				item.ID,
				menu.ID,
				item.MenuID,
				item.Name,
				item.UnitPrice,
				item.StartingQuantity,
				item.CurrentQuantity,
				item.CurrentQuantity > 0,
			}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to insert daily menu items: %w", err)
	}

	return tx.Commit(ctx)
}

func (r *DailyMenuRepository) GetByStoreAndDate(ctx context.Context, storeID, menuDate string) (*models.DailyMenu, error) {
	query := `
        SELECT id, store_id, menu_date, created_at
        FROM daily_menus
        WHERE store_id = $1 AND menu_date = $2
    `
	menu := &models.DailyMenu{}
	err := r.pool.QueryRow(ctx, query, storeID, menuDate).Scan(
		&menu.ID,
		&menu.StoreID,
		&menu.MenuDate,
		&menu.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrMenuNotFound
	}
	if err != nil {
		return nil, err
	}

	itemsQuery := `
        SELECT id, daily_menu_id, menu_id, name, unit_price,
               starting_quantity, current_quantity, is_available
        FROM daily_menu_items
        WHERE daily_menu_id = $1
        ORDER BY name
    `
	rows, err := r.pool.Query(ctx, itemsQuery, menu.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		item := models.DailyMenuItem{}
		err := rows.Scan(
			&item.ID,
			&item.DailyMenuID,
			&item.MenuID,
			&item.Name,
			&item.UnitPrice,
			&item.StartingQuantity,
			&item.CurrentQuantity,
			&item.IsAvailable,
		)
		if err != nil {
			return nil, err
		}
		menu.Items = append(menu.Items, item)
	}
	return menu, rows.Err()
}

func (r *DailyMenuRepository) GetItem(ctx context.Context, itemID string) (*models.DailyMenuItem, error) {
	query := `
        SELECT id, daily_menu_id, menu_id, name, unit_price,
               starting_quantity, current_quantity, is_available
        FROM daily_menu_items
        WHERE id = $1
    `
	item := &models.DailyMenuItem{}
	err := r.pool.QueryRow(ctx, query, itemID).Scan(
		&item.ID,
		&item.DailyMenuID,
		&item.MenuID,
		&item.Name,
		&item.UnitPrice,
		&item.StartingQuantity,
		&item.CurrentQuantity,
		&item.IsAvailable,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrMenuItemNotFound
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

// ConditionalDecrement relies on a single guarded UPDATE so the row lock
// serializes concurrent reservations; two orders can never both consume the
// last unit.
func (r *DailyMenuRepository) ConditionalDecrement(ctx context.Context, itemID string, qty int) (int, error) {
	query := `
        UPDATE daily_menu_items
        SET current_quantity = current_quantity - $2,
            is_available = current_quantity - $2 > 0
        WHERE id = $1 AND current_quantity >= $2
        RETURNING current_quantity
    `
	var remaining int
	err := r.pool.QueryRow(ctx, query, itemID, qty).Scan(&remaining)
	if errors.Is(err, pgx.ErrNoRows) {
		// Either the item does not exist or the stock ran short; look at the
		// row to report which.
		item, getErr := r.GetItem(ctx, itemID)
		if getErr != nil {
			return 0, getErr
		}
		return 0, &models.InsufficientStockError{
			MenuItemID: itemID,
			Requested:  qty,
			Remaining:  item.CurrentQuantity,
		}
	}
	if err != nil {
		return 0, err
	}
	return remaining, nil
}

func (r *DailyMenuRepository) AddStock(ctx context.Context, itemID string, qty int) (int, error) {
	query := `
        UPDATE daily_menu_items
        SET current_quantity = current_quantity + $2,
            is_available = TRUE
        WHERE id = $1
        RETURNING current_quantity
    `
	var remaining int
	err := r.pool.QueryRow(ctx, query, itemID, qty).Scan(&remaining)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, models.ErrMenuItemNotFound
	}
	if err != nil {
		return 0, err
	}
	return remaining, nil
}
