package checkout

import (
	"time"

	"loafer-be/internal/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Step string

const (
	StepInformation Step = "information"
	StepShipping    Step = "shipping"
	StepPayment     Step = "payment"
)

type SessionStatus string

const (
	SessionStatusPending   SessionStatus = "PENDING"
	SessionStatusConfirmed SessionStatus = "CONFIRMED"
	SessionStatusExpired   SessionStatus = "EXPIRED"
)

type ShippingMethod string

const (
	ShippingStandard ShippingMethod = "standard"
	ShippingExpress  ShippingMethod = "express"
)

type PaymentMethod string

const (
	PaymentCredit PaymentMethod = "credit"
	PaymentPaypal PaymentMethod = "paypal"
)

// Contact carries the information step of the checkout form.
type Contact struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// SessionItem is a priced snapshot of a cart line at session creation.
type SessionItem struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Color     string          `json:"color"`
	Size      string          `json:"size"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

type CheckoutSession struct {
	ID             uuid.UUID      `json:"id"`
	UserID         string         `json:"user_id"`
	Items          []SessionItem  `json:"items"`
	Contact        *Contact       `json:"contact,omitempty"`
	ShippingMethod ShippingMethod `json:"shipping_method"`
	PaymentMethod  PaymentMethod  `json:"payment_method,omitempty"`
	Step           Step           `json:"step"`
	Status         SessionStatus  `json:"status"`
	Totals         pricing.Totals `json:"totals"`
	CreatedAt      time.Time      `json:"created_at"`
	ExpiresAt      time.Time      `json:"expires_at"`
}

type OrderStatus string

const (
	OrderStatusPending OrderStatus = "PENDING"
)

type Order struct {
	ID        uuid.UUID      `json:"id"`
	SessionID uuid.UUID      `json:"session_id"`
	UserID    string         `json:"user_id"`
	Items     []SessionItem  `json:"items"`
	Totals    pricing.Totals `json:"totals"`
	Status    OrderStatus    `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
}
