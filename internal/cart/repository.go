package cart

import (
	"context"
	"sync"
)

type Repository interface {
	Items(ctx context.Context, userID string) ([]*CartItem, error)
	FindLine(ctx context.Context, userID, productID, color, size string) (*CartItem, error)
	Insert(ctx context.Context, userID string, item *CartItem) error
	UpdateQuantity(ctx context.Context, userID, itemID string, quantity int) (*CartItem, error)
	Remove(ctx context.Context, userID, itemID string) error
	Clear(ctx context.Context, userID string) error
}

// memoryRepository keeps carts for the lifetime of the process, one
// insertion-ordered slice per user. Carts are session state, not records;
// nothing is persisted.
type memoryRepository struct {
	mu    sync.Mutex
	carts map[string][]*CartItem
}

func NewRepository() Repository {
	return &memoryRepository{carts: make(map[string][]*CartItem)}
}

func (r *memoryRepository) Items(ctx context.Context, userID string) ([]*CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.carts[userID]
	out := make([]*CartItem, len(items))
	for i, item := range items {
		cp := *item
		out[i] = &cp
	}
	return out, nil
}

func (r *memoryRepository) FindLine(ctx context.Context, userID, productID, color, size string) (*CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range r.carts[userID] {
		if item.ProductID == productID && item.Color == color && item.Size == size {
			cp := *item
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memoryRepository) Insert(ctx context.Context, userID string, item *CartItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *item
	r.carts[userID] = append(r.carts[userID], &cp)
	return nil
}

func (r *memoryRepository) UpdateQuantity(ctx context.Context, userID, itemID string, quantity int) (*CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range r.carts[userID] {
		if item.ID == itemID {
			item.Quantity = quantity
			cp := *item
			return &cp, nil
		}
	}
	return nil, ErrCartItemNotFound
}

func (r *memoryRepository) Remove(ctx context.Context, userID, itemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.carts[userID]
	for i, item := range items {
		if item.ID == itemID {
			r.carts[userID] = append(items[:i], items[i+1:]...)
			return nil
		}
	}
	return ErrCartItemNotFound
}

func (r *memoryRepository) Clear(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.carts, userID)
	return nil
}
