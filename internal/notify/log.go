package notify

import (
	"context"
	"log"
)

// LogNotifier is the fallback used when Kafka is disabled.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) NotifyOwnerNewOrder(ctx context.Context, storeID, orderID string) error {
	log.Printf("new order %s for store %s", orderID, storeID)
	return nil
}

func (n *LogNotifier) Close() error { return nil }
