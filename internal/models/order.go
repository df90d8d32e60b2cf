package models

import "time"

type Order struct {
	ID            string      `json:"id"`
	StoreID       string      `json:"store_id"`
	MenuDate      string      `json:"menu_date"` // date the order counts against, possibly tomorrow
	Lines         []OrderLine `json:"lines"`
	CustomerName  string      `json:"customer_name"`
	CustomerPhone string      `json:"customer_phone"`
	PaymentMethod string      `json:"payment_method"` // e.g., "card", "cash", "wallet"
	Status        string      `json:"status"`
	TotalAmount   float64     `json:"total_amount"`
	CreatedAt     time.Time   `json:"created_at"`
}

// OrderLine is an immutable line of a placed order. UnitPrice is frozen at
// order time. DailyMenuItemID is set for inventory-backed lines and empty
// for plain catalog lines; an order uses one path or the other, never both.
type OrderLine struct {
	MenuID          string  `json:"menu_id"`
	DailyMenuItemID string  `json:"daily_menu_item_id,omitempty"`
	Name            string  `json:"name"`
	Quantity        int     `json:"quantity"`
	UnitPrice       float64 `json:"unit_price"`
}

func (l OrderLine) Subtotal() float64 {
	return float64(l.Quantity) * l.UnitPrice
}

func (o *Order) Total() float64 {
	total := 0.0
	for _, l := range o.Lines {
		total += l.Subtotal()
	}
	return total
}

// InventoryBacked reports whether the order reserves daily menu stock.
func (o *Order) InventoryBacked() bool {
	return len(o.Lines) > 0 && o.Lines[0].DailyMenuItemID != ""
}

// orderTransitions encodes the forward-only fulfillment state machine.
// Cancellation is reachable until fulfilment; nothing leaves a terminal
// state.
var orderTransitions = map[string][]string{
	OrderStatusPendingPayment:   {OrderStatusPaymentConfirmed, OrderStatusCancelled},
	OrderStatusPaymentConfirmed: {OrderStatusFulfilled, OrderStatusCancelled},
	OrderStatusFulfilled:        {},
	OrderStatusCancelled:        {},
}

// CanTransition reports whether an order status change is legal.
func CanTransition(from, to string) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
