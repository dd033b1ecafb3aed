package cart

import (
	"context"
	"time"

	"loafer-be/internal/catalog"
	"loafer-be/internal/logger"
	"loafer-be/internal/pricing"
	"loafer-be/internal/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Service defines the business logic for carts.
type Service interface {
	Add(ctx context.Context, params AddParams) (*CartItem, error)
	Get(ctx context.Context) ([]*CartItem, error)
	UpdateQuantity(ctx context.Context, itemID string, quantity int) (*CartItem, error)
	Remove(ctx context.Context, itemID string) error
	Clear(ctx context.Context) error
	Totals(ctx context.Context) (pricing.Totals, error)
}

type service struct {
	repo        Repository
	catalogRepo catalog.Repository
	policy      pricing.ThresholdPolicy
	taxRate     decimal.Decimal
}

// NewService creates a cart service. The cart view always prices with the
// threshold shipping policy; the checkout flow has its own.
func NewService(repo Repository, catalogRepo catalog.Repository, policy pricing.ThresholdPolicy, taxRate decimal.Decimal) Service {
	return &service{
		repo:        repo,
		catalogRepo: catalogRepo,
		policy:      policy,
		taxRate:     taxRate,
	}
}

// Add puts a product in the user's cart, capturing the unit price at add
// time. A line with the same product, color and size is merged by summing
// quantities.
func (s *service) Add(ctx context.Context, params AddParams) (*CartItem, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUserNotAuthenticated
	}

	if params.Quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "AddToCart"),
		zap.String("product_id", params.ProductID),
	)

	product, err := s.catalogRepo.GetByID(ctx, params.ProductID)
	if err != nil {
		log.Warn("product lookup failed", zap.Error(err))
		return nil, err
	}

	sizeOffered := false
	for _, size := range product.Sizes {
		if size == params.Size {
			sizeOffered = true
			break
		}
	}
	if !sizeOffered {
		return nil, ErrSizeNotOffered
	}

	existing, err := s.repo.FindLine(ctx, userID, params.ProductID, params.Color, params.Size)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		item, err := s.repo.UpdateQuantity(ctx, userID, existing.ID, existing.Quantity+params.Quantity)
		if err != nil {
			return nil, err
		}
		log.Info("cart line merged", zap.String("item_id", item.ID), zap.Int("quantity", item.Quantity))
		return item, nil
	}

	image := ""
	if len(product.Media) > 0 {
		for _, m := range product.Media {
			if m.Kind == catalog.MediaImage {
				image = m.Src
				break
			}
		}
	}

	item := &CartItem{
		ID:        uuid.NewString(),
		ProductID: product.ID,
		Name:      product.Name,
		UnitPrice: product.Price,
		Color:     params.Color,
		Size:      params.Size,
		Quantity:  params.Quantity,
		Image:     image,
		Category:  product.Category,
		AddedAt:   time.Now(),
	}

	if err := s.repo.Insert(ctx, userID, item); err != nil {
		return nil, err
	}

	log.Info("cart line added", zap.String("item_id", item.ID), zap.Int("quantity", item.Quantity))
	return item, nil
}

func (s *service) Get(ctx context.Context) ([]*CartItem, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUserNotAuthenticated
	}
	return s.repo.Items(ctx, userID)
}

// UpdateQuantity sets a line's quantity. Quantities below 1 are a no-op:
// the line keeps its prior quantity and removal stays an explicit action.
func (s *service) UpdateQuantity(ctx context.Context, itemID string, quantity int) (*CartItem, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUserNotAuthenticated
	}

	if quantity < 1 {
		items, err := s.repo.Items(ctx, userID)
		if err != nil {
			return nil, err
		}
		for _, item := range items {
			if item.ID == itemID {
				return item, nil
			}
		}
		return nil, ErrCartItemNotFound
	}

	return s.repo.UpdateQuantity(ctx, userID, itemID, quantity)
}

func (s *service) Remove(ctx context.Context, itemID string) error {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return ErrUserNotAuthenticated
	}
	return s.repo.Remove(ctx, userID, itemID)
}

func (s *service) Clear(ctx context.Context) error {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return ErrUserNotAuthenticated
	}
	return s.repo.Clear(ctx, userID)
}

// Totals prices the cart under the cart-view threshold policy.
func (s *service) Totals(ctx context.Context) (pricing.Totals, error) {
	items, err := s.Get(ctx)
	if err != nil {
		return pricing.Totals{}, err
	}

	lines := make([]pricing.LineItem, 0, len(items))
	for _, item := range items {
		lines = append(lines, pricing.LineItem{UnitPrice: item.UnitPrice, Quantity: item.Quantity})
	}

	return pricing.ComputeTotals(lines, s.policy, s.taxRate), nil
}
