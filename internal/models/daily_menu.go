package models

import "time"

// DailyMenu is the finite, date-scoped catalog a store publishes for a
// single day. It is identified by (StoreID, MenuDate).
type DailyMenu struct {
	ID        string          `json:"id"`
	StoreID   string          `json:"store_id"`
	MenuDate  string          `json:"menu_date"` // MenuDateLayout, store-local
	Items     []DailyMenuItem `json:"items"`
	CreatedAt time.Time       `json:"created_at"`
}

// DailyMenuItem is one sellable line of a daily menu with a finite stock.
// CurrentQuantity only moves through the reservation decrement, the
// compensating rollback increment and the owner restock operation.
type DailyMenuItem struct {
	ID               string  `json:"id"`
	DailyMenuID      string  `json:"daily_menu_id"`
	MenuID           string  `json:"menu_id"` // catalog item reference
	Name             string  `json:"name"`
	UnitPrice        float64 `json:"unit_price"`
	StartingQuantity int     `json:"starting_quantity"`
	CurrentQuantity  int     `json:"current_quantity"`
	IsAvailable      bool    `json:"is_available"`
}

// Available reports whether any stock remains. IsAvailable is always the
// persisted value of this derivation, never set independently.
func (i *DailyMenuItem) Available() bool {
	return i.CurrentQuantity > 0
}

// ItemByID returns the menu item with the given id, or nil.
func (m *DailyMenu) ItemByID(id string) *DailyMenuItem {
	for idx := range m.Items {
		if m.Items[idx].ID == id {
			return &m.Items[idx]
		}
	}
	return nil
}

// FormatMenuDate renders t as a menu date in t's own location.
func FormatMenuDate(t time.Time) string {
	return t.Format(MenuDateLayout)
}
