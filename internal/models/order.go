package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod is how the buyer chose to pay. The method is recorded with
// the order; no gateway is invoked.
type PaymentMethod string

const (
	PaymentMethodCard PaymentMethod = "card"
	PaymentMethodUPI  PaymentMethod = "upi"
	PaymentMethodCOD  PaymentMethod = "cod"
)

// ParsePaymentMethod maps a request string onto a known payment method.
func ParsePaymentMethod(s string) (PaymentMethod, bool) {
	switch PaymentMethod(s) {
	case PaymentMethodCard, PaymentMethodUPI, PaymentMethodCOD:
		return PaymentMethod(s), true
	default:
		return "", false
	}
}

// PaymentStatus is derived from the payment method at checkout and never set
// by the client.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
)

// Status returns the payment status an order settles to at checkout: cash on
// delivery stays pending until the courier collects, everything else is
// treated as captured immediately.
func (m PaymentMethod) Status() PaymentStatus {
	if m == PaymentMethodCOD {
		return PaymentStatusPending
	}
	return PaymentStatusCompleted
}

// OrderLine is one purchased (product, quantity) pairing. UnitPrice is the
// product price at the moment of checkout and is immutable afterwards.
type OrderLine struct {
	ID        string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderID   string          `json:"order_id" gorm:"index;type:varchar(36)"`
	ProductID string          `json:"product_id" gorm:"type:varchar(36)"`
	UnitPrice decimal.Decimal `json:"unit_price" gorm:"type:decimal(12,2)"`
	Quantity  int             `json:"quantity"`
}

// Order is a completed checkout. Orders are append-only: created exactly once
// per checkout and never updated, so there is no UpdatedAt.
type Order struct {
	ID              string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID          string          `json:"user_id" gorm:"index;type:varchar(36)"`
	TotalAmount     decimal.Decimal `json:"total_amount" gorm:"type:decimal(12,2)"`
	PaymentMethod   PaymentMethod   `json:"payment_method" gorm:"type:varchar(16)"`
	PaymentStatus   PaymentStatus   `json:"payment_status" gorm:"type:varchar(16)"`
	DeliveryAddress string          `json:"delivery_address"`
	City            string          `json:"city"`
	Pincode         string          `json:"pincode"`
	Lines           []OrderLine     `json:"items" gorm:"foreignKey:OrderID"`
	CreatedAt       time.Time       `json:"created_at"`
}
