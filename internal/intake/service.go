// Package intake orchestrates order placement: cart validation, acceptance
// window evaluation, inventory reservation and order persistence. Every
// failure before the order record is written leaves stock untouched.
package intake

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/lucsky/cuid"
	"github.com/platelunch/ordercore/internal/inventory"
	"github.com/platelunch/ordercore/internal/models"
	"github.com/platelunch/ordercore/internal/notify"
	"github.com/platelunch/ordercore/internal/repositories"
	"github.com/platelunch/ordercore/internal/window"
)

// CartLine is one requested line of a customer's cart. DailyMenuItemID is
// set when the line targets a published daily menu; for plain catalog lines
// it stays empty and UnitPrice is taken as quoted. Inventory-backed lines
// have their price and name frozen server-side from the menu item.
type CartLine struct {
	MenuID          string
	DailyMenuItemID string
	Name            string
	Quantity        int
	UnitPrice       float64
}

type CustomerInfo struct {
	Name          string
	Phone         string
	PaymentMethod string
}

type Service struct {
	schedules repositories.ScheduleRepository
	menus     repositories.DailyMenuRepository
	orders    repositories.OrderRepository
	reserver  *inventory.Reserver
	notifier  notify.Notifier

	// Now supplies wall-clock time; tests replace it to pin the window.
	Now func() time.Time
}

func NewService(
	schedules repositories.ScheduleRepository,
	menus repositories.DailyMenuRepository,
	orders repositories.OrderRepository,
	notifier notify.Notifier,
) *Service {
	return &Service{
		schedules: schedules,
		menus:     menus,
		orders:    orders,
		reserver:  inventory.NewReserver(menus),
		notifier:  notifier,
		Now:       time.Now,
	}
}

// CheckWindow evaluates the store's acceptance window at the current
// instant, in the store's own time zone.
func (s *Service) CheckWindow(ctx context.Context, storeID string) (window.Verdict, error) {
	schedule, err := s.schedules.Get(ctx, storeID)
	if err != nil {
		return window.Verdict{}, err
	}
	now := s.Now().In(schedule.Location())
	return window.Evaluate(now, schedule), nil
}

// PlaceOrder runs the full intake sequence. On any failure no order record
// exists and every stock decrement made during the call has been undone.
// The owner notification is best-effort and never affects the result.
func (s *Service) PlaceOrder(ctx context.Context, storeID string, cart []CartLine, customer CustomerInfo) (*models.Order, error) {
	if err := validateCart(cart, customer); err != nil {
		return nil, err
	}

	verdict, err := s.CheckWindow(ctx, storeID)
	if err != nil {
		return nil, err
	}
	if !verdict.CanOrder {
		return nil, &models.OrderingClosedError{Message: verdict.Message}
	}

	lines, err := s.resolveLines(ctx, storeID, verdict.TargetDate, cart)
	if err != nil {
		return nil, err
	}

	if err := s.reserver.ReserveAll(ctx, lines); err != nil {
		return nil, err
	}

	order := &models.Order{
		ID:            cuid.New(),
		StoreID:       storeID,
		MenuDate:      verdict.TargetDate,
		Lines:         lines,
		CustomerName:  customer.Name,
		CustomerPhone: customer.Phone,
		PaymentMethod: customer.PaymentMethod,
		Status:        models.OrderStatusPendingPayment,
		CreatedAt:     s.Now(),
	}
	order.TotalAmount = order.Total()

	if err := s.orders.Insert(ctx, order); err != nil {
		// The reservation already happened; give the stock back before
		// surfacing the persistence failure.
		if releaseErr := s.reserver.ReleaseAll(ctx, lines); releaseErr != nil {
			log.Printf("CRITICAL: failed to release stock after insert failure for order %s: %v", order.ID, releaseErr)
		}
		return nil, fmt.Errorf("failed to persist order: %w", err)
	}

	s.emitNewOrder(order)
	return order, nil
}

// resolveLines freezes unit prices and defends against a stale client-side
// menu snapshot: every inventory-backed line must belong to the menu
// published for the resolved target date.
func (s *Service) resolveLines(ctx context.Context, storeID, targetDate string, cart []CartLine) ([]models.OrderLine, error) {
	lines := make([]models.OrderLine, 0, len(cart))

	var menu *models.DailyMenu
	for _, cartLine := range cart {
		line := models.OrderLine{
			MenuID:    cartLine.MenuID,
			Name:      cartLine.Name,
			Quantity:  cartLine.Quantity,
			UnitPrice: cartLine.UnitPrice,
		}
		if cartLine.DailyMenuItemID != "" {
			if menu == nil {
				var err error
				menu, err = s.menus.GetByStoreAndDate(ctx, storeID, targetDate)
				if err != nil {
					return nil, &models.ValidationError{
						Field:  "menu_date",
						Reason: fmt.Sprintf("no daily menu published for %s", targetDate),
					}
				}
			}
			item := menu.ItemByID(cartLine.DailyMenuItemID)
			if item == nil {
				return nil, &models.ValidationError{
					Field:  "daily_menu_item_id",
					Reason: fmt.Sprintf("item %s is not on the %s menu", cartLine.DailyMenuItemID, targetDate),
				}
			}
			line.DailyMenuItemID = item.ID
			line.MenuID = item.MenuID
			line.Name = item.Name
			line.UnitPrice = item.UnitPrice
		}
		lines = append(lines, line)
	}
	return lines, nil
}

func (s *Service) emitNewOrder(order *models.Order) {
	if s.notifier == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	go func() {
		defer cancel()
		if err := s.notifier.NotifyOwnerNewOrder(ctx, order.StoreID, order.ID); err != nil {
			log.Printf("owner notification for order %s failed: %v", order.ID, err)
		}
	}()
}

// UpdateOrderStatus advances the fulfillment state machine, rejecting
// transitions the machine does not allow.
func (s *Service) UpdateOrderStatus(ctx context.Context, orderID, newStatus string) (*models.Order, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !models.CanTransition(order.Status, newStatus) {
		return nil, &models.InvalidTransitionError{OrderID: orderID, From: order.Status, To: newStatus}
	}
	return s.orders.UpdateStatus(ctx, orderID, order.Status, newStatus)
}

// CancelOrder cancels a pending or confirmed order and returns its reserved
// stock to the daily menu. The status update happens first; if a concurrent
// transition wins, no stock moves.
func (s *Service) CancelOrder(ctx context.Context, orderID string) (*models.Order, error) {
	order, err := s.UpdateOrderStatus(ctx, orderID, models.OrderStatusCancelled)
	if err != nil {
		return nil, err
	}
	if err := s.reserver.ReleaseAll(ctx, order.Lines); err != nil {
		log.Printf("order %s cancelled but stock return incomplete: %v", orderID, err)
	}
	return order, nil
}

// RestockItem is the owner-facing explicit restock operation.
func (s *Service) RestockItem(ctx context.Context, itemID string, qty int) (int, error) {
	if qty <= 0 {
		return 0, &models.ValidationError{Field: "quantity", Reason: "restock quantity must be positive"}
	}
	return s.menus.AddStock(ctx, itemID, qty)
}

// PublishDailyMenu creates the day's menu with its starting quantities.
func (s *Service) PublishDailyMenu(ctx context.Context, storeID, menuDate string, items []models.DailyMenuItem) (*models.DailyMenu, error) {
	if _, err := time.Parse(models.MenuDateLayout, menuDate); err != nil {
		return nil, &models.ValidationError{Field: "menu_date", Reason: fmt.Sprintf("invalid date %q", menuDate)}
	}
	if len(items) == 0 {
		return nil, &models.ValidationError{Field: "items", Reason: "a daily menu needs at least one item"}
	}
	menu := &models.DailyMenu{
		ID:        cuid.New(),
		StoreID:   storeID,
		MenuDate:  menuDate,
		CreatedAt: s.Now(),
	}
	for _, item := range items {
		if item.StartingQuantity < 0 {
			return nil, &models.ValidationError{Field: "starting_quantity", Reason: "starting quantity cannot be negative"}
		}
		if item.ID == "" {
			item.ID = cuid.New()
		}
		item.DailyMenuID = menu.ID
		item.CurrentQuantity = item.StartingQuantity
		item.IsAvailable = item.CurrentQuantity > 0
		menu.Items = append(menu.Items, item)
	}
	if err := s.menus.Publish(ctx, menu); err != nil {
		return nil, fmt.Errorf("failed to publish daily menu: %w", err)
	}
	return menu, nil
}

func validateCart(cart []CartLine, customer CustomerInfo) error {
	if len(cart) == 0 {
		return &models.ValidationError{Field: "cart", Reason: "cart is empty"}
	}
	inventoryBacked := cart[0].DailyMenuItemID != ""
	for _, line := range cart {
		if line.Quantity <= 0 {
			return &models.ValidationError{Field: "quantity", Reason: "line quantity must be positive"}
		}
		if (line.DailyMenuItemID != "") != inventoryBacked {
			return &models.ValidationError{Field: "cart", Reason: "an order cannot mix daily menu and catalog lines"}
		}
		if !inventoryBacked && line.MenuID == "" {
			return &models.ValidationError{Field: "menu_id", Reason: "catalog line is missing its menu id"}
		}
	}
	if customer.Name == "" {
		return &models.ValidationError{Field: "customer_name", Reason: "customer name is required"}
	}
	if customer.Phone == "" {
		return &models.ValidationError{Field: "customer_phone", Reason: "customer phone is required"}
	}
	switch customer.PaymentMethod {
	case models.PaymentMethodCard, models.PaymentMethodCash, models.PaymentMethodWallet:
	default:
		return &models.ValidationError{Field: "payment_method", Reason: fmt.Sprintf("unknown payment method %q", customer.PaymentMethod)}
	}
	return nil
}
