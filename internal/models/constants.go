package models

const (
	OrderStatusPendingPayment   = "pending_payment"
	OrderStatusPaymentConfirmed = "payment_confirmed"
	OrderStatusFulfilled        = "fulfilled"
	OrderStatusCancelled        = "cancelled"

	AcceptanceCurrent  = "current"
	AcceptanceTomorrow = "tomorrow"
	AcceptanceClosed   = "closed"

	PaymentMethodCard   = "card"
	PaymentMethodCash   = "cash"
	PaymentMethodWallet = "wallet"
)

// MenuDateLayout is the store-local calendar date format used to key
// daily menus and to denormalise the date onto orders.
const MenuDateLayout = "2006-01-02"
