package checkout

import (
	"context"
	"strings"
	"time"

	"loafer-be/internal/cart"
	"loafer-be/internal/logger"
	"loafer-be/internal/pricing"
	"loafer-be/internal/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const sessionTTL = 30 * time.Minute

type Service interface {
	CreateSession(ctx context.Context) (*CheckoutSession, error)
	GetSession(ctx context.Context, sessionID string) (*CheckoutSession, error)
	SetContact(ctx context.Context, sessionID string, contact Contact) (*CheckoutSession, error)
	SetShippingMethod(ctx context.Context, sessionID string, method ShippingMethod) (*CheckoutSession, error)
	Confirm(ctx context.Context, sessionID string, payment PaymentMethod) (*Order, error)
}

// MethodRates maps shipping methods to their flat-rate policies. The
// checkout flow never uses the cart view's threshold policy.
type MethodRates struct {
	Standard pricing.FlatRatePolicy
	Express  pricing.FlatRatePolicy
}

func DefaultMethodRates() MethodRates {
	return MethodRates{
		Standard: pricing.StandardRate(),
		Express:  pricing.ExpressRate(),
	}
}

func (m MethodRates) policy(method ShippingMethod) (pricing.FlatRatePolicy, bool) {
	switch method {
	case ShippingStandard:
		return m.Standard, true
	case ShippingExpress:
		return m.Express, true
	}
	return pricing.FlatRatePolicy{}, false
}

type service struct {
	repo     Repository
	cartRepo cart.Repository
	rates    MethodRates
	taxRate  decimal.Decimal
}

func NewService(repo Repository, cartRepo cart.Repository, rates MethodRates, taxRate decimal.Decimal) Service {
	return &service{
		repo:     repo,
		cartRepo: cartRepo,
		rates:    rates,
		taxRate:  taxRate,
	}
}

// CreateSession snapshots the user's cart into a new pending session priced
// with the standard flat rate.
func (s *service) CreateSession(ctx context.Context) (*CheckoutSession, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUserNotAuthenticated
	}

	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateSession"),
	)

	start := time.Now()

	cartItems, err := s.cartRepo.Items(ctx, userID)
	if err != nil {
		log.Error("failed to read cart", zap.Error(err))
		return nil, err
	}
	if len(cartItems) == 0 {
		log.Warn("checkout attempted with empty cart")
		return nil, ErrCartEmpty
	}

	items := make([]SessionItem, 0, len(cartItems))
	lines := make([]pricing.LineItem, 0, len(cartItems))
	for _, ci := range cartItems {
		qty := decimal.NewFromInt(int64(ci.Quantity))
		items = append(items, SessionItem{
			ProductID: ci.ProductID,
			Name:      ci.Name,
			Color:     ci.Color,
			Size:      ci.Size,
			UnitPrice: ci.UnitPrice,
			Quantity:  ci.Quantity,
			Subtotal:  ci.UnitPrice.Mul(qty),
		})
		lines = append(lines, pricing.LineItem{UnitPrice: ci.UnitPrice, Quantity: ci.Quantity})
	}

	now := time.Now()
	session := &CheckoutSession{
		ID:             uuid.New(),
		UserID:         userID,
		Items:          items,
		ShippingMethod: ShippingStandard,
		Step:           StepInformation,
		Status:         SessionStatusPending,
		Totals:         pricing.ComputeTotals(lines, s.rates.Standard, s.taxRate),
		CreatedAt:      now,
		ExpiresAt:      now.Add(sessionTTL),
	}

	if err := s.repo.CreateSession(ctx, session); err != nil {
		log.Error("failed to create checkout session", zap.Error(err))
		return nil, err
	}

	log.Info("checkout session created",
		zap.String("session_id", session.ID.String()),
		zap.Int("item_count", len(items)),
		zap.Duration("duration", time.Since(start)),
	)

	return session, nil
}

// GetSession returns an ownership-checked session, lazily marking expiry.
func (s *service) GetSession(ctx context.Context, sessionID string) (*CheckoutSession, error) {
	session, err := s.loadOwned(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if session.Status == SessionStatusPending && time.Now().After(session.ExpiresAt) {
		session.Status = SessionStatusExpired
		_ = s.repo.UpdateSession(ctx, session)
	}

	return session, nil
}

// SetContact records the information step and advances to shipping.
func (s *service) SetContact(ctx context.Context, sessionID string, contact Contact) (*CheckoutSession, error) {
	session, err := s.loadEditable(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(contact.Email) == "" ||
		strings.TrimSpace(contact.Address) == "" ||
		strings.TrimSpace(contact.City) == "" {
		return nil, ErrContactIncomplete
	}

	session.Contact = &contact
	session.Step = StepShipping

	if err := s.repo.UpdateSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// SetShippingMethod reprices the session with the chosen method's flat rate
// and advances to payment.
func (s *service) SetShippingMethod(ctx context.Context, sessionID string, method ShippingMethod) (*CheckoutSession, error) {
	session, err := s.loadEditable(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	policy, ok := s.rates.policy(method)
	if !ok {
		return nil, ErrUnknownShippingMethod
	}

	lines := make([]pricing.LineItem, 0, len(session.Items))
	for _, item := range session.Items {
		lines = append(lines, pricing.LineItem{UnitPrice: item.UnitPrice, Quantity: item.Quantity})
	}

	session.ShippingMethod = method
	session.Totals = pricing.ComputeTotals(lines, policy, s.taxRate)
	if session.Step == StepShipping {
		session.Step = StepPayment
	}

	if err := s.repo.UpdateSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Confirm turns a pending session into an order. Confirming the same
// session twice returns the already created order. No payment is captured;
// the order is recorded as pending.
func (s *service) Confirm(ctx context.Context, sessionID string, payment PaymentMethod) (*Order, error) {
	session, err := s.loadOwned(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if existing, err := s.repo.GetOrderBySessionID(ctx, sessionID); err == nil && existing != nil {
		return existing, nil
	}

	if session.Status != SessionStatusPending {
		return nil, ErrSessionNotPending
	}
	if time.Now().After(session.ExpiresAt) {
		return nil, ErrSessionExpired
	}
	if session.Contact == nil {
		return nil, ErrContactIncomplete
	}

	switch payment {
	case PaymentCredit, PaymentPaypal:
	default:
		return nil, ErrUnknownPaymentMethod
	}

	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "ConfirmCheckout"),
		zap.String("session_id", sessionID),
	)

	order := &Order{
		ID:        uuid.New(),
		SessionID: session.ID,
		UserID:    session.UserID,
		Items:     session.Items,
		Totals:    session.Totals,
		Status:    OrderStatusPending,
		CreatedAt: time.Now(),
	}

	if err := s.repo.CreateOrder(ctx, order); err != nil {
		log.Error("failed to create order", zap.Error(err))
		return nil, err
	}

	session.Status = SessionStatusConfirmed
	session.PaymentMethod = payment
	if err := s.repo.UpdateSession(ctx, session); err != nil {
		log.Error("failed to mark session confirmed", zap.Error(err))
		return nil, err
	}

	if err := s.cartRepo.Clear(ctx, session.UserID); err != nil {
		log.Warn("failed to clear cart after confirm", zap.Error(err))
	}

	log.Info("order created",
		zap.String("order_id", order.ID.String()),
		zap.String("total", order.Totals.Total.String()),
	)

	return order, nil
}

func (s *service) loadOwned(ctx context.Context, sessionID string) (*CheckoutSession, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUserNotAuthenticated
	}

	session, err := s.repo.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.UserID != userID {
		return nil, ErrForbidden
	}
	return session, nil
}

func (s *service) loadEditable(ctx context.Context, sessionID string) (*CheckoutSession, error) {
	session, err := s.loadOwned(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status != SessionStatusPending {
		return nil, ErrSessionNotPending
	}
	if time.Now().After(session.ExpiresAt) {
		return nil, ErrSessionExpired
	}
	return session, nil
}
