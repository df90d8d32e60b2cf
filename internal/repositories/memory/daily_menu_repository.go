package memory

import (
	"context"
	"sync"

	"github.com/platelunch/ordercore/internal/models"
)

type menuKey struct {
	storeID  string
	menuDate string
}

type DailyMenuRepository struct {
	mu    sync.Mutex
	menus map[menuKey]*models.DailyMenu
	items map[string]*models.DailyMenuItem
}

func NewDailyMenuRepository() *DailyMenuRepository {
	return &DailyMenuRepository{
		menus: make(map[menuKey]*models.DailyMenu),
		items: make(map[string]*models.DailyMenuItem),
	}
}

func (r *DailyMenuRepository) Publish(ctx context.Context, menu *models.DailyMenu) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *menu
	copied.Items = make([]models.DailyMenuItem, len(menu.Items))
	copy(copied.Items, menu.Items)
	for i := range copied.Items {
		copied.Items[i].DailyMenuID = copied.ID
		copied.Items[i].IsAvailable = copied.Items[i].CurrentQuantity > 0
		item := copied.Items[i]
		r.items[item.ID] = &item
	}
	r.menus[menuKey{menu.StoreID, menu.MenuDate}] = &copied
	return nil
}

func (r *DailyMenuRepository) GetByStoreAndDate(ctx context.Context, storeID, menuDate string) (*models.DailyMenu, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	menu, ok := r.menus[menuKey{storeID, menuDate}]
	if !ok {
		return nil, models.ErrMenuNotFound
	}

	copied := *menu
	copied.Items = make([]models.DailyMenuItem, 0, len(menu.Items))
	for _, item := range menu.Items {
		// Quantities live in the item map; the menu copy reflects them.
		if live, ok := r.items[item.ID]; ok {
			copied.Items = append(copied.Items, *live)
		}
	}
	return &copied, nil
}

func (r *DailyMenuRepository) GetItem(ctx context.Context, itemID string) (*models.DailyMenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[itemID]
	if !ok {
		return nil, models.ErrMenuItemNotFound
	}
	copied := *item
	return &copied, nil
}

// ConditionalDecrement performs the read-modify-write under the repository
// mutex, which is the in-process equivalent of the guarded UPDATE the
// Postgres implementation uses.
func (r *DailyMenuRepository) ConditionalDecrement(ctx context.Context, itemID string, qty int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[itemID]
	if !ok {
		return 0, models.ErrMenuItemNotFound
	}
	if qty > item.CurrentQuantity {
		return 0, &models.InsufficientStockError{
			MenuItemID: itemID,
			Requested:  qty,
			Remaining:  item.CurrentQuantity,
		}
	}
	item.CurrentQuantity -= qty
	item.IsAvailable = item.CurrentQuantity > 0
	return item.CurrentQuantity, nil
}

func (r *DailyMenuRepository) AddStock(ctx context.Context, itemID string, qty int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[itemID]
	if !ok {
		return 0, models.ErrMenuItemNotFound
	}
	item.CurrentQuantity += qty
	item.IsAvailable = item.CurrentQuantity > 0
	return item.CurrentQuantity, nil
}
