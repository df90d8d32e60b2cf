package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from    string
		to      string
		allowed bool
	}{
		{OrderStatusPendingPayment, OrderStatusPaymentConfirmed, true},
		{OrderStatusPendingPayment, OrderStatusCancelled, true},
		{OrderStatusPaymentConfirmed, OrderStatusFulfilled, true},
		{OrderStatusPaymentConfirmed, OrderStatusCancelled, true},
		{OrderStatusPendingPayment, OrderStatusFulfilled, false},
		{OrderStatusPaymentConfirmed, OrderStatusPendingPayment, false},
		{OrderStatusFulfilled, OrderStatusPendingPayment, false},
		{OrderStatusFulfilled, OrderStatusCancelled, false},
		{OrderStatusCancelled, OrderStatusPendingPayment, false},
		{OrderStatusCancelled, OrderStatusPaymentConfirmed, false},
		{"unknown", OrderStatusFulfilled, false},
	}
	for _, tt := range tests {
		t.Run(tt.from+"->"+tt.to, func(t *testing.T) {
			assert.Equal(t, tt.allowed, CanTransition(tt.from, tt.to))
		})
	}
}

func TestOrderTotal(t *testing.T) {
	order := &Order{
		Lines: []OrderLine{
			{Quantity: 2, UnitPrice: 9.50},
			{Quantity: 1, UnitPrice: 4.25},
		},
	}
	assert.InDelta(t, 23.25, order.Total(), 1e-9)
}

func TestOrderInventoryBacked(t *testing.T) {
	backed := &Order{Lines: []OrderLine{{DailyMenuItemID: "dmi-1", Quantity: 1}}}
	plain := &Order{Lines: []OrderLine{{MenuID: "m-1", Quantity: 1}}}

	assert.True(t, backed.InventoryBacked())
	assert.False(t, plain.InventoryBacked())
}
