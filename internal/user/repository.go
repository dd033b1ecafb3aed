package user

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, u User) (User, error)
	FindByEmail(ctx context.Context, email string) (User, error)
	Count(ctx context.Context) (int, error)
}

// memoryRepository holds accounts for the process lifetime. There is no
// auth backend behind it; accounts exist only to exercise the login flow.
type memoryRepository struct {
	mu      sync.Mutex
	byEmail map[string]User
}

func NewRepository() Repository {
	return &memoryRepository{byEmail: make(map[string]User)}
}

func (r *memoryRepository) Create(ctx context.Context, u User) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[u.Email]; exists {
		return User{}, ErrEmailExists
	}

	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	r.byEmail[u.Email] = u
	return u, nil
}

func (r *memoryRepository) FindByEmail(ctx context.Context, email string) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byEmail[email]
	if !ok {
		return User{}, ErrUserNotFound
	}
	return u, nil
}

func (r *memoryRepository) Count(ctx context.Context) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.byEmail), nil
}
