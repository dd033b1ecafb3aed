package catalog

import (
	"strconv"
	"strings"
)

// Filter returns the subset of products matching the selection, preserving
// the original relative order. The rule is AND across facets and OR within a
// facet: a product must satisfy every active facet, and satisfies a facet by
// matching any one of its selected values. An empty facet constrains nothing.
//
// Filter is a pure function; it never mutates its inputs.
func Filter(products []Product, sel FilterSelection) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if Matches(p, sel) {
			out = append(out, p)
		}
	}
	return out
}

// Matches reports whether a single product satisfies the selection.
func Matches(p Product, sel FilterSelection) bool {
	return matchesSearch(p, sel.Search) &&
		matchesValue(p.Category, sel.Category) &&
		matchesPrice(p, sel.Price) &&
		matchesValue(p.Color, sel.Color) &&
		matchesSize(p, sel.Size) &&
		matchesValue(string(p.Gender), sel.Gender) &&
		matchesRating(p, sel.Rating)
}

func matchesSearch(p Product, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Description), q)
}

func matchesValue(attr string, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, v := range selected {
		if v == attr {
			return true
		}
	}
	return false
}

func matchesSize(p Product, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, want := range selected {
		for _, have := range p.Sizes {
			if want == have {
				return true
			}
		}
	}
	return false
}

// matchesPrice checks the product price against the selected "min-max" range
// tokens, both endpoints inclusive. Configured range tokens are validated at
// startup; a stray malformed token from a client simply never matches.
func matchesPrice(p Product, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, token := range selected {
		r, err := ParsePriceRange(token)
		if err != nil {
			continue
		}
		if r.Contains(p.Price) {
			return true
		}
	}
	return false
}

// matchesRating treats each selected value as a minimum rating threshold.
func matchesRating(p Product, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, v := range selected {
		min, err := strconv.ParseFloat(v, 64)
		if err != nil {
			continue
		}
		if p.Rating >= min {
			return true
		}
	}
	return false
}
