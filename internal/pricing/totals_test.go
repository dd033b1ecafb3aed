package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestComputeTotals_ThresholdPolicy(t *testing.T) {
	items := []LineItem{
		{UnitPrice: dec("100"), Quantity: 1},
		{UnitPrice: dec("150"), Quantity: 1},
	}

	got := ComputeTotals(items, DefaultThreshold(), DefaultTaxRate)

	// 250 > 200, so shipping is waived; tax applies to the subtotal only.
	assert.True(t, got.Subtotal.Equal(dec("250")), "subtotal %s", got.Subtotal)
	assert.True(t, got.Shipping.Equal(decimal.Zero), "shipping %s", got.Shipping)
	assert.True(t, got.Tax.Equal(dec("20")), "tax %s", got.Tax)
	assert.True(t, got.Total.Equal(dec("270")), "total %s", got.Total)
}

func TestComputeTotals_ThresholdIsStrictlyGreater(t *testing.T) {
	items := []LineItem{{UnitPrice: dec("200"), Quantity: 1}}

	got := ComputeTotals(items, DefaultThreshold(), DefaultTaxRate)

	// A subtotal of exactly 200 does not qualify for free shipping.
	assert.True(t, got.Shipping.Equal(dec("15")), "shipping %s", got.Shipping)
	assert.True(t, got.Total.Equal(dec("231")), "total %s", got.Total)
}

func TestComputeTotals_FlatPolicyIgnoresSubtotal(t *testing.T) {
	items := []LineItem{
		{UnitPrice: dec("100"), Quantity: 1},
		{UnitPrice: dec("150"), Quantity: 1},
	}

	t.Run("express", func(t *testing.T) {
		got := ComputeTotals(items, ExpressRate(), DefaultTaxRate)

		assert.True(t, got.Subtotal.Equal(dec("250")))
		assert.True(t, got.Shipping.Equal(dec("19.99")), "shipping %s", got.Shipping)
		assert.True(t, got.Tax.Equal(dec("20")), "shipping is never taxed")
		assert.True(t, got.Total.Equal(dec("289.99")), "total %s", got.Total)
	})

	t.Run("standard", func(t *testing.T) {
		got := ComputeTotals(items, StandardRate(), DefaultTaxRate)

		assert.True(t, got.Shipping.Equal(dec("9.99")))
		assert.True(t, got.Total.Equal(dec("279.99")), "total %s", got.Total)
	})
}

func TestComputeTotals_QuantityMultiplies(t *testing.T) {
	items := []LineItem{
		{UnitPrice: dec("199"), Quantity: 1},
		{UnitPrice: dec("229"), Quantity: 2},
		{UnitPrice: dec("179"), Quantity: 1},
	}

	got := ComputeTotals(items, DefaultThreshold(), DefaultTaxRate)

	// 199 + 458 + 179 = 836, free shipping, tax 66.88.
	assert.True(t, got.Subtotal.Equal(dec("836")), "subtotal %s", got.Subtotal)
	assert.True(t, got.Shipping.Equal(decimal.Zero))
	assert.True(t, got.Tax.Equal(dec("66.88")), "tax %s", got.Tax)
	assert.True(t, got.Total.Equal(dec("902.88")), "total %s", got.Total)
}

func TestComputeTotals_EmptyCart(t *testing.T) {
	got := ComputeTotals(nil, DefaultThreshold(), DefaultTaxRate)

	assert.True(t, got.Subtotal.Equal(decimal.Zero))
	assert.True(t, got.Shipping.Equal(dec("15")), "an empty cart is under the threshold")
	assert.True(t, got.Tax.Equal(decimal.Zero))
	assert.True(t, got.Total.Equal(dec("15")))
}

func TestComputeTotals_TaxRoundsToCents(t *testing.T) {
	items := []LineItem{{UnitPrice: dec("19.99"), Quantity: 1}}

	got := ComputeTotals(items, StandardRate(), DefaultTaxRate)

	// 19.99 * 0.08 = 1.5992, rounded to 1.60.
	assert.True(t, got.Tax.Equal(dec("1.60")), "tax %s", got.Tax)
	assert.True(t, got.Total.Equal(dec("31.58")), "total %s", got.Total)
}

func TestShippingPolicies_Names(t *testing.T) {
	assert.Equal(t, "threshold", DefaultThreshold().Name())
	assert.Equal(t, "flat:standard", StandardRate().Name())
	assert.Equal(t, "flat:express", ExpressRate().Name())
}
