package repositories

import (
	"context"
	"github.com/platelunch/ordercore/internal/models"
)

type ScheduleRepository interface {
	Get(ctx context.Context, storeID string) (*models.StoreSchedule, error)
	GetAll(ctx context.Context) ([]*models.StoreSchedule, error)
	Upsert(ctx context.Context, schedule *models.StoreSchedule) error
	SetOverride(ctx context.Context, storeID string, override string) error
}

type DailyMenuRepository interface {
	Publish(ctx context.Context, menu *models.DailyMenu) error
	GetByStoreAndDate(ctx context.Context, storeID, menuDate string) (*models.DailyMenu, error)
	GetItem(ctx context.Context, itemID string) (*models.DailyMenuItem, error)

	// ConditionalDecrement atomically subtracts qty from the item's current
	// quantity if and only if at least qty remains, returning the new
	// remaining quantity. On insufficient stock it performs no mutation and
	// returns a models.InsufficientStockError. This is the single primitive
	// the no-oversell guarantee rests on; implementations must serialize
	// concurrent calls for the same item.
	ConditionalDecrement(ctx context.Context, itemID string, qty int) (int, error)

	// AddStock atomically adds qty back to the item's current quantity.
	// Used by owner restocks and by compensating rollbacks only.
	AddStock(ctx context.Context, itemID string, qty int) (int, error)
}

type OrderRepository interface {
	Insert(ctx context.Context, order *models.Order) error
	GetByID(ctx context.Context, orderID string) (*models.Order, error)

	// UpdateStatus moves an order from one status to another, guarded by
	// the expected current status so concurrent transitions cannot both
	// win. Returns models.ErrInvalidTransition when the order is no longer
	// in fromStatus.
	UpdateStatus(ctx context.Context, orderID, fromStatus, toStatus string) (*models.Order, error)

	ListByStoreAndDate(ctx context.Context, storeID, menuDate string) ([]*models.Order, error)
}
