package pricing

import "github.com/shopspring/decimal"

// Fixed storefront pricing parameters. Config may override them; these are
// the documented defaults.
var (
	DefaultTaxRate           = decimal.RequireFromString("0.08")
	DefaultFreeShippingAbove = decimal.NewFromInt(200)
	DefaultShippingFallback  = decimal.NewFromInt(15)
	DefaultStandardRate      = decimal.RequireFromString("9.99")
	DefaultExpressRate       = decimal.RequireFromString("19.99")
)

// ShippingPolicy maps a cart subtotal to a shipping cost. The cart view and
// the checkout flow use two deliberately distinct policies; they are kept as
// separate named strategies and must not be unified.
type ShippingPolicy interface {
	Name() string
	Cost(subtotal decimal.Decimal) decimal.Decimal
}

// ThresholdPolicy is the cart-view policy: shipping is waived when the
// subtotal is strictly greater than FreeAbove, otherwise Fallback applies.
type ThresholdPolicy struct {
	FreeAbove decimal.Decimal
	Fallback  decimal.Decimal
}

func (p ThresholdPolicy) Name() string { return "threshold" }

func (p ThresholdPolicy) Cost(subtotal decimal.Decimal) decimal.Decimal {
	if subtotal.GreaterThan(p.FreeAbove) {
		return decimal.Zero
	}
	return p.Fallback
}

// FlatRatePolicy is the checkout-flow policy: a fixed cost chosen by the
// selected shipping method, independent of the subtotal.
type FlatRatePolicy struct {
	Method string
	Rate   decimal.Decimal
}

func (p FlatRatePolicy) Name() string { return "flat:" + p.Method }

func (p FlatRatePolicy) Cost(decimal.Decimal) decimal.Decimal {
	return p.Rate
}

// DefaultThreshold returns the cart-view policy with the stock parameters.
func DefaultThreshold() ThresholdPolicy {
	return ThresholdPolicy{
		FreeAbove: DefaultFreeShippingAbove,
		Fallback:  DefaultShippingFallback,
	}
}

// StandardRate returns the checkout flat policy for the standard method.
func StandardRate() FlatRatePolicy {
	return FlatRatePolicy{Method: "standard", Rate: DefaultStandardRate}
}

// ExpressRate returns the checkout flat policy for the express method.
func ExpressRate() FlatRatePolicy {
	return FlatRatePolicy{Method: "express", Rate: DefaultExpressRate}
}
