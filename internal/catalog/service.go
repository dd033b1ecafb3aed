package catalog

import (
	"context"
	"time"

	"loafer-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	List(ctx context.Context, sel FilterSelection) ([]Product, error)
	GetByID(ctx context.Context, id string) (*Product, error)
	Facets(ctx context.Context) (FacetOptions, error)
}

type service struct {
	repo        Repository
	priceRanges []PriceRange
	ratings     []string
}

// NewService builds the catalog service. priceRanges are the code-defined
// range tokens offered by the filter UI, validated by config at startup.
func NewService(repo Repository, priceRanges []PriceRange) Service {
	return &service{
		repo:        repo,
		priceRanges: priceRanges,
		ratings:     []string{"5", "4", "3"},
	}
}

func (s *service) List(ctx context.Context, sel FilterSelection) ([]Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "ListProducts"),
	)

	start := time.Now()

	log.Debug("list products requested",
		zap.String("search", sel.Search),
		zap.Any("facets", map[string]any{
			"category": sel.Category,
			"price":    sel.Price,
			"color":    sel.Color,
			"size":     sel.Size,
			"gender":   sel.Gender,
			"rating":   sel.Rating,
		}),
	)

	products, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error("failed to load catalog",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)),
		)
		return nil, err
	}

	filtered := Filter(products, sel)

	log.Info("list products success",
		zap.Int("catalog_size", len(products)),
		zap.Int("count", len(filtered)),
		zap.Duration("duration", time.Since(start)),
	)

	return filtered, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "GetProductByID"),
		zap.String("product_id", id),
	)

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.Warn("product lookup failed", zap.Error(err))
		return nil, err
	}

	return p, nil
}

func (s *service) Facets(ctx context.Context) (FacetOptions, error) {
	products, err := s.repo.GetAll(ctx)
	if err != nil {
		return FacetOptions{}, err
	}

	opts := Facets(products)
	for _, r := range s.priceRanges {
		opts.PriceRanges = append(opts.PriceRanges, r.Token())
	}
	opts.Ratings = s.ratings

	return opts, nil
}
