package checkout

import (
	"context"
	"sync"
)

type Repository interface {
	CreateSession(ctx context.Context, session *CheckoutSession) error
	GetSession(ctx context.Context, id string) (*CheckoutSession, error)
	UpdateSession(ctx context.Context, session *CheckoutSession) error
	GetOrderBySessionID(ctx context.Context, sessionID string) (*Order, error)
	CreateOrder(ctx context.Context, order *Order) error
	ListOrders(ctx context.Context) ([]*Order, error)
}

// memoryRepository holds sessions and orders for the process lifetime.
type memoryRepository struct {
	mu       sync.Mutex
	sessions map[string]*CheckoutSession
	orders   []*Order
	bySessID map[string]*Order
}

func NewRepository() Repository {
	return &memoryRepository{
		sessions: make(map[string]*CheckoutSession),
		bySessID: make(map[string]*Order),
	}
}

func (r *memoryRepository) CreateSession(ctx context.Context, session *CheckoutSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *session
	r.sessions[session.ID.String()] = &cp
	return nil
}

func (r *memoryRepository) GetSession(ctx context.Context, id string) (*CheckoutSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	cp := *session
	return &cp, nil
}

func (r *memoryRepository) UpdateSession(ctx context.Context, session *CheckoutSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[session.ID.String()]; !ok {
		return ErrSessionNotFound
	}
	cp := *session
	r.sessions[session.ID.String()] = &cp
	return nil
}

func (r *memoryRepository) GetOrderBySessionID(ctx context.Context, sessionID string) (*Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.bySessID[sessionID]
	if !ok {
		return nil, nil
	}
	cp := *order
	return &cp, nil
}

func (r *memoryRepository) CreateOrder(ctx context.Context, order *Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *order
	r.orders = append(r.orders, &cp)
	r.bySessID[order.SessionID.String()] = &cp
	return nil
}

func (r *memoryRepository) ListOrders(ctx context.Context) ([]*Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*Order, len(r.orders))
	for i, order := range r.orders {
		cp := *order
		out[i] = &cp
	}
	return out, nil
}
