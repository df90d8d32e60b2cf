// Package inventory performs daily menu stock reservations. A multi-line
// reservation either decrements every line or leaves stock exactly as it
// found it.
package inventory

import (
	"context"
	"log"

	"github.com/platelunch/ordercore/internal/models"
	"github.com/platelunch/ordercore/internal/repositories"
)

type Reserver struct {
	menus repositories.DailyMenuRepository
}

func NewReserver(menus repositories.DailyMenuRepository) *Reserver {
	return &Reserver{menus: menus}
}

type reservation struct {
	itemID string
	qty    int
}

// ReserveAll decrements stock for every inventory-backed line. If any line
// fails, decrements already made for this call are compensated in reverse
// order before the error is returned, so a partial reservation is never
// left in place.
func (r *Reserver) ReserveAll(ctx context.Context, lines []models.OrderLine) error {
	var reserved []reservation

	for _, line := range lines {
		if line.DailyMenuItemID == "" {
			continue
		}
		_, err := r.menus.ConditionalDecrement(ctx, line.DailyMenuItemID, line.Quantity)
		if err != nil {
			r.rollback(ctx, reserved)
			return err
		}
		reserved = append(reserved, reservation{itemID: line.DailyMenuItemID, qty: line.Quantity})
	}
	return nil
}

// ReleaseAll returns previously reserved stock, e.g. when an order is
// cancelled. Increments that fail are logged and the rest proceed; stock
// return must not stop halfway because one item is gone.
func (r *Reserver) ReleaseAll(ctx context.Context, lines []models.OrderLine) error {
	var firstErr error
	for _, line := range lines {
		if line.DailyMenuItemID == "" {
			continue
		}
		if _, err := r.menus.AddStock(ctx, line.DailyMenuItemID, line.Quantity); err != nil {
			log.Printf("failed to return %d units to item %s: %v", line.Quantity, line.DailyMenuItemID, err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

func (r *Reserver) rollback(ctx context.Context, reserved []reservation) {
	for i := len(reserved) - 1; i >= 0; i-- {
		res := reserved[i]
		if _, err := r.menus.AddStock(ctx, res.itemID, res.qty); err != nil {
			log.Printf("CRITICAL: failed to roll back reservation of %d units for item %s: %v", res.qty, res.itemID, err)
		}
	}
}
