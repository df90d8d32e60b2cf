package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/platelunch/ordercore/internal/models"
)

type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

func (r *OrderRepository) Insert(ctx context.Context, order *models.Order) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `
        INSERT INTO orders (
            id, store_id, menu_date, customer_name, customer_phone,
            payment_method, status, total_amount, created_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    `
	_, err = tx.Exec(ctx, query,
		order.ID,
		order.StoreID,
		order.MenuDate,
		order.CustomerName,
		order.CustomerPhone,
		order.PaymentMethod,
		order.Status,
		order.TotalAmount,
		order.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	_, err = tx.CopyFrom(
		ctx,
		pgx.Identifier{"order_lines"},
		[]string{"order_id", "menu_id", "daily_menu_item_id", "name", "quantity", "unit_price"},
		pgx.CopyFromSlice(len(order.Lines), func(i int) ([]interface{}, error) {
			line := order.Lines[i]
			return []interface{}{
				order.ID,
				line.MenuID,
				line.DailyMenuItemID,
				line.Name,
				line.Quantity,
				line.UnitPrice,
			}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to insert order lines: %w", err)
	}

	return tx.Commit(ctx)
}

func (r *OrderRepository) GetByID(ctx context.Context, orderID string) (*models.Order, error) {
	query := `
        SELECT id, store_id, menu_date, customer_name, customer_phone,
               payment_method, status, total_amount, created_at
        FROM orders
        WHERE id = $1
    `
	order := &models.Order{}
	err := r.pool.QueryRow(ctx, query, orderID).Scan(
		&order.ID,
		&order.StoreID,
		&order.MenuDate,
		&order.CustomerName,
		&order.CustomerPhone,
		&order.PaymentMethod,
		&order.Status,
		&order.TotalAmount,
		&order.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	lines, err := r.getLines(ctx, orderID)
	if err != nil {
		return nil, err
	}
	order.Lines = lines
	return order, nil
}

func (r *OrderRepository) getLines(ctx context.Context, orderID string) ([]models.OrderLine, error) {
	query := `
        SELECT menu_id, daily_menu_item_id, name, quantity, unit_price
        FROM order_lines
        WHERE order_id = $1
    `
	rows, err := r.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []models.OrderLine
	for rows.Next() {
		line := models.OrderLine{}
		err := rows.Scan(
			&line.MenuID,
			&line.DailyMenuItemID,
			&line.Name,
			&line.Quantity,
			&line.UnitPrice,
		)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

// UpdateStatus is guarded by the expected current status; when two owners
// race the same transition only one UPDATE matches.
func (r *OrderRepository) UpdateStatus(ctx context.Context, orderID, fromStatus, toStatus string) (*models.Order, error) {
	query := `
        UPDATE orders
        SET status = $3
        WHERE id = $1 AND status = $2
    `
	tag, err := r.pool.Exec(ctx, query, orderID, fromStatus, toStatus)
	if err != nil {
		return nil, err
	}
	if tag.RowsAffected() == 0 {
		order, getErr := r.GetByID(ctx, orderID)
		if getErr != nil {
			return nil, getErr
		}
		return nil, &models.InvalidTransitionError{OrderID: orderID, From: order.Status, To: toStatus}
	}
	return r.GetByID(ctx, orderID)
}

func (r *OrderRepository) ListByStoreAndDate(ctx context.Context, storeID, menuDate string) ([]*models.Order, error) {
	query := `
        SELECT id, store_id, menu_date, customer_name, customer_phone,
               payment_method, status, total_amount, created_at
        FROM orders
        WHERE store_id = $1 AND menu_date = $2
        ORDER BY created_at
    `
	rows, err := r.pool.Query(ctx, query, storeID, menuDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*models.Order
	for rows.Next() {
		order := &models.Order{}
		err := rows.Scan(
			&order.ID,
			&order.StoreID,
			&order.MenuDate,
			&order.CustomerName,
			&order.CustomerPhone,
			&order.PaymentMethod,
			&order.Status,
			&order.TotalAmount,
			&order.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, order := range orders {
		lines, err := r.getLines(ctx, order.ID)
		if err != nil {
			return nil, err
		}
		order.Lines = lines
	}
	return orders, nil
}
