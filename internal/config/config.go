package config

import (
	"fmt"
	"os"
	"time"

	"loafer-be/internal/catalog"
	"loafer-be/internal/pricing"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

const defaultPriceRanges = "0-100,100-200,200-300,300-1000"

type Config struct {
	AppPort   string
	AppEnv    string
	JWTSecret string
	TokenTTL  time.Duration

	TaxRate           decimal.Decimal
	FreeShippingAbove decimal.Decimal
	ShippingFallback  decimal.Decimal
	StandardShipping  decimal.Decimal
	ExpressShipping   decimal.Decimal

	PriceRanges []catalog.PriceRange
}

// LoadConfig reads the environment (with .env overlay) and validates every
// pricing parameter up front. Malformed price-range tokens are a startup
// error, never a per-request one.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		AppPort:   envOr("APP_PORT", "8080"),
		AppEnv:    os.Getenv("APP_ENV"),
		JWTSecret: envOr("JWT_SECRET", "loafer-dev-secret"),
	}

	ttl, err := time.ParseDuration(envOr("TOKEN_TTL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("TOKEN_TTL: %w", err)
	}
	cfg.TokenTTL = ttl

	if cfg.TaxRate, err = decimalEnv("TAX_RATE", pricing.DefaultTaxRate); err != nil {
		return nil, err
	}
	if cfg.FreeShippingAbove, err = decimalEnv("FREE_SHIPPING_ABOVE", pricing.DefaultFreeShippingAbove); err != nil {
		return nil, err
	}
	if cfg.ShippingFallback, err = decimalEnv("SHIPPING_FALLBACK", pricing.DefaultShippingFallback); err != nil {
		return nil, err
	}
	if cfg.StandardShipping, err = decimalEnv("STANDARD_SHIPPING", pricing.DefaultStandardRate); err != nil {
		return nil, err
	}
	if cfg.ExpressShipping, err = decimalEnv("EXPRESS_SHIPPING", pricing.DefaultExpressRate); err != nil {
		return nil, err
	}

	ranges, err := catalog.ParsePriceRanges(envOr("PRICE_RANGES", defaultPriceRanges))
	if err != nil {
		return nil, fmt.Errorf("PRICE_RANGES: %w", err)
	}
	if len(ranges) == 0 {
		return nil, fmt.Errorf("PRICE_RANGES: %w", catalog.ErrNoPriceRanges)
	}
	cfg.PriceRanges = ranges

	return cfg, nil
}

// ThresholdPolicy builds the cart-view shipping policy from config.
func (c *Config) ThresholdPolicy() pricing.ThresholdPolicy {
	return pricing.ThresholdPolicy{
		FreeAbove: c.FreeShippingAbove,
		Fallback:  c.ShippingFallback,
	}
}

// MethodPolicy builds the checkout flat policy for a shipping method name.
func (c *Config) MethodPolicy(method string) (pricing.FlatRatePolicy, bool) {
	switch method {
	case "standard":
		return pricing.FlatRatePolicy{Method: method, Rate: c.StandardShipping}, true
	case "express":
		return pricing.FlatRatePolicy{Method: method, Rate: c.ExpressShipping}, true
	}
	return pricing.FlatRatePolicy{}, false
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func decimalEnv(key string, fallback decimal.Decimal) (decimal.Decimal, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%s: %w", key, err)
	}
	if d.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("%s: must not be negative", key)
	}
	return d, nil
}
