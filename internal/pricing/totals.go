package pricing

import "github.com/shopspring/decimal"

// LineItem is the minimal priced input for total computation. UnitPrice is
// the price captured when the line was added to the cart, never recomputed.
type LineItem struct {
	UnitPrice decimal.Decimal
	Quantity  int
}

// Totals is the priced summary of a cart.
type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// ComputeTotals produces the priced summary for a set of line items under
// the given shipping policy. Tax applies to the subtotal only; shipping is
// never taxed. The computation is pure and deterministic.
func ComputeTotals(items []LineItem, policy ShippingPolicy, taxRate decimal.Decimal) Totals {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	shipping := policy.Cost(subtotal)
	tax := subtotal.Mul(taxRate).Round(2)

	return Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal.Add(shipping).Add(tax),
	}
}
