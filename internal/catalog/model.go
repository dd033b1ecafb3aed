package catalog

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaModel MediaKind = "model"
)

type Gender string

const (
	GenderMen    Gender = "Men"
	GenderWomen  Gender = "Women"
	GenderUnisex Gender = "Unisex"
)

type Media struct {
	Kind MediaKind `json:"kind"`
	Src  string    `json:"src"`
}

type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Color       string          `json:"color"`
	Sizes       []string        `json:"sizes"`
	Gender      Gender          `json:"gender"`
	Rating      float64         `json:"rating"`
	ReviewCount int             `json:"review_count"`
	IsNew       bool            `json:"is_new,omitempty"`
	Description string          `json:"description"`
	Media       []Media         `json:"media"`
}

// FilterSelection is one snapshot of the storefront filter state. Each facet
// is an independent multi-select; an empty slice places no constraint on that
// facet. Price values are "min-max" range tokens, rating values are minimum
// thresholds.
type FilterSelection struct {
	Search   string
	Category []string
	Price    []string
	Color    []string
	Size     []string
	Gender   []string
	Rating   []string
}

// IsEmpty reports whether the selection constrains nothing.
func (s FilterSelection) IsEmpty() bool {
	return s.Search == "" &&
		len(s.Category) == 0 &&
		len(s.Price) == 0 &&
		len(s.Color) == 0 &&
		len(s.Size) == 0 &&
		len(s.Gender) == 0 &&
		len(s.Rating) == 0
}

// PriceRange is an inclusive price interval parsed from a "min-max" token.
type PriceRange struct {
	Min decimal.Decimal
	Max decimal.Decimal
}

func (r PriceRange) Contains(price decimal.Decimal) bool {
	return price.GreaterThanOrEqual(r.Min) && price.LessThanOrEqual(r.Max)
}

func (r PriceRange) Token() string {
	return r.Min.String() + "-" + r.Max.String()
}

// ParsePriceRange parses a "min-max" token. Range tokens are code-defined
// configuration, so a malformed token is a startup error, not a runtime one.
func ParsePriceRange(token string) (PriceRange, error) {
	parts := strings.SplitN(token, "-", 2)
	if len(parts) != 2 {
		return PriceRange{}, fmt.Errorf("price range %q: want \"min-max\"", token)
	}

	min, err := decimal.NewFromString(strings.TrimSpace(parts[0]))
	if err != nil {
		return PriceRange{}, fmt.Errorf("price range %q: bad min: %w", token, err)
	}

	max, err := decimal.NewFromString(strings.TrimSpace(parts[1]))
	if err != nil {
		return PriceRange{}, fmt.Errorf("price range %q: bad max: %w", token, err)
	}

	if min.IsNegative() || max.LessThan(min) {
		return PriceRange{}, fmt.Errorf("price range %q: min must be >= 0 and <= max", token)
	}

	return PriceRange{Min: min, Max: max}, nil
}

// ParsePriceRanges parses a comma-separated list of range tokens.
func ParsePriceRanges(tokens string) ([]PriceRange, error) {
	var ranges []PriceRange
	for _, token := range strings.Split(tokens, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		r, err := ParsePriceRange(token)
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, r)
	}
	return ranges, nil
}

// FacetOptions lists the distinct values a storefront can offer per facet,
// derived from the catalog itself.
type FacetOptions struct {
	Categories  []string `json:"categories"`
	Colors      []string `json:"colors"`
	Sizes       []string `json:"sizes"`
	Genders     []string `json:"genders"`
	PriceRanges []string `json:"price_ranges"`
	Ratings     []string `json:"ratings"`
}
