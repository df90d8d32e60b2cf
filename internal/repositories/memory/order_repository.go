package memory

import (
	"context"
	"sync"

	"github.com/platelunch/ordercore/internal/models"
)

type OrderRepository struct {
	mu     sync.Mutex
	orders map[string]*models.Order
}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{orders: make(map[string]*models.Order)}
}

func (r *OrderRepository) Insert(ctx context.Context, order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := cloneOrder(order)
	r.orders[order.ID] = copied
	return nil
}

func (r *OrderRepository) GetByID(ctx context.Context, orderID string) (*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[orderID]
	if !ok {
		return nil, models.ErrOrderNotFound
	}
	return cloneOrder(order), nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, orderID, fromStatus, toStatus string) (*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[orderID]
	if !ok {
		return nil, models.ErrOrderNotFound
	}
	if order.Status != fromStatus {
		return nil, &models.InvalidTransitionError{OrderID: orderID, From: order.Status, To: toStatus}
	}
	order.Status = toStatus
	return cloneOrder(order), nil
}

func (r *OrderRepository) ListByStoreAndDate(ctx context.Context, storeID, menuDate string) ([]*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var orders []*models.Order
	for _, order := range r.orders {
		if order.StoreID == storeID && order.MenuDate == menuDate {
			orders = append(orders, cloneOrder(order))
		}
	}
	return orders, nil
}

func cloneOrder(order *models.Order) *models.Order {
	copied := *order
	copied.Lines = make([]models.OrderLine, len(order.Lines))
	copy(copied.Lines, order.Lines)
	return &copied
}
