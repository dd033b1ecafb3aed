package catalog

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
)

//go:embed seed.json
var seedData []byte

type Repository interface {
	GetAll(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id string) (*Product, error)
}

// repository serves the static catalog from memory. Products are seed data
// with no create/update/delete lifecycle, so the backing slice is read-only
// and shared by all callers.
type repository struct {
	products []Product
	byID     map[string]int
}

// NewRepository loads and validates the embedded seed catalog.
func NewRepository() (Repository, error) {
	return newRepositoryFrom(seedData)
}

func newRepositoryFrom(data []byte) (Repository, error) {
	var products []Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("decode catalog seed: %w", err)
	}

	byID := make(map[string]int, len(products))
	for i, p := range products {
		if err := validateProduct(p); err != nil {
			return nil, fmt.Errorf("catalog seed entry %d: %w", i, err)
		}
		if _, dup := byID[p.ID]; dup {
			return nil, fmt.Errorf("catalog seed entry %d: duplicate id %q", i, p.ID)
		}
		byID[p.ID] = i
	}

	return &repository{products: products, byID: byID}, nil
}

// validateProduct rejects malformed entries at the data-load boundary so the
// filter never has to defend against them.
func validateProduct(p Product) error {
	switch {
	case p.ID == "":
		return fmt.Errorf("missing id")
	case p.Name == "":
		return fmt.Errorf("missing name")
	case p.Price.IsNegative():
		return fmt.Errorf("negative price %s", p.Price)
	case p.Category == "":
		return fmt.Errorf("missing category")
	case p.Color == "":
		return fmt.Errorf("missing color")
	case len(p.Sizes) == 0:
		return fmt.Errorf("no sizes")
	case p.Rating < 0 || p.Rating > 5:
		return fmt.Errorf("rating %v out of range", p.Rating)
	case p.ReviewCount < 0:
		return fmt.Errorf("negative review count")
	case len(p.Media) == 0:
		return fmt.Errorf("no media")
	}

	switch p.Gender {
	case GenderMen, GenderWomen, GenderUnisex:
	default:
		return fmt.Errorf("unknown gender %q", p.Gender)
	}

	for _, m := range p.Media {
		if m.Kind != MediaImage && m.Kind != MediaModel {
			return fmt.Errorf("unknown media kind %q", m.Kind)
		}
		if m.Src == "" {
			return fmt.Errorf("media entry missing src")
		}
	}

	return nil
}

func (r *repository) GetAll(ctx context.Context) ([]Product, error) {
	// Callers get their own slice header but share the backing entries;
	// Product values are treated as immutable throughout.
	out := make([]Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Product, error) {
	i, ok := r.byID[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	p := r.products[i]
	return &p, nil
}

// Facets derives the distinct facet values present in a product list, in
// first-seen order for categories/colors/genders and ascending order for
// sizes.
func Facets(products []Product) FacetOptions {
	opts := FacetOptions{}
	seenCategory := map[string]bool{}
	seenColor := map[string]bool{}
	seenSize := map[string]bool{}
	seenGender := map[string]bool{}

	for _, p := range products {
		if !seenCategory[p.Category] {
			seenCategory[p.Category] = true
			opts.Categories = append(opts.Categories, p.Category)
		}
		if !seenColor[p.Color] {
			seenColor[p.Color] = true
			opts.Colors = append(opts.Colors, p.Color)
		}
		for _, s := range p.Sizes {
			if !seenSize[s] {
				seenSize[s] = true
				opts.Sizes = append(opts.Sizes, s)
			}
		}
		g := string(p.Gender)
		if !seenGender[g] {
			seenGender[g] = true
			opts.Genders = append(opts.Genders, g)
		}
	}

	sort.Slice(opts.Sizes, func(i, j int) bool {
		a, b := opts.Sizes[i], opts.Sizes[j]
		if len(a) != len(b) {
			return len(a) < len(b)
		}
		return a < b
	})

	return opts
}
