// Package notify delivers best-effort "new order" events to store owners.
// Delivery failures are logged, never surfaced into order placement.
package notify

import "context"

type Notifier interface {
	NotifyOwnerNewOrder(ctx context.Context, storeID, orderID string) error
	Close() error
}
