package models

import (
	"errors"
	"fmt"
)

var (
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrOrderingClosed    = errors.New("ordering closed")
	ErrValidation        = errors.New("validation failed")
	ErrScheduleNotFound  = errors.New("store schedule not found")
	ErrMenuNotFound      = errors.New("daily menu not found")
	ErrMenuItemNotFound  = errors.New("daily menu item not found")
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidTransition = errors.New("invalid order status transition")
)

// InsufficientStockError reports a reservation that asked for more than the
// remaining stock. Remaining is the quantity observed at decision time; a
// concurrent order may have changed it since.
type InsufficientStockError struct {
	MenuItemID string
	Requested  int
	Remaining  int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for item %s: requested %d, %d remaining", e.MenuItemID, e.Requested, e.Remaining)
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }

// ValidationError marks malformed caller input. It is always recoverable by
// correcting the input and is never retried automatically.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// OrderingClosedError carries the evaluator's human-readable message so the
// caller can surface it verbatim.
type OrderingClosedError struct {
	Message string
}

func (e *OrderingClosedError) Error() string {
	if e.Message == "" {
		return "ordering is closed"
	}
	return e.Message
}

func (e *OrderingClosedError) Unwrap() error { return ErrOrderingClosed }

// InvalidTransitionError reports a rejected order status change.
type InvalidTransitionError struct {
	OrderID string
	From    string
	To      string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("order %s: cannot transition from %s to %s", e.OrderID, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error { return ErrInvalidTransition }
