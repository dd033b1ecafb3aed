package user

import (
	"context"
	"strings"

	"loafer-be/internal/auth"
	"loafer-be/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type Service interface {
	Register(ctx context.Context, email, password, name string) (string, User, error)
	Login(ctx context.Context, email, password string) (string, User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
}

type service struct {
	repo   Repository
	tokens *auth.Manager
}

func NewService(repo Repository, tokens *auth.Manager) Service {
	return &service{repo: repo, tokens: tokens}
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func (s *service) Register(ctx context.Context, email, password, name string) (string, User, error) {
	log := logger.FromCtx(ctx)

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return "", User{}, ErrInvalidCredentials
	}

	hashed, err := HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", zap.Error(err))
		return "", User{}, err
	}

	u, err := s.repo.Create(ctx, User{
		Email:    email,
		Name:     name,
		Password: hashed,
		Role:     RoleUser,
	})
	if err != nil {
		log.Warn("failed to create user", zap.String("email", email), zap.Error(err))
		return "", User{}, err
	}

	token, err := s.tokens.Sign(u.ID, u.Email, string(u.Role))
	if err != nil {
		log.Error("failed to sign token", zap.String("user_id", u.ID), zap.Error(err))
		return "", User{}, err
	}

	log.Info("register completed",
		zap.String("user_id", u.ID),
		zap.String("email", email),
	)

	return token, u, nil
}

func (s *service) Login(ctx context.Context, email, password string) (string, User, error) {
	log := logger.FromCtx(ctx)

	u, err := s.repo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		log.Debug("login failed: email not found", zap.String("email", email))
		return "", User{}, ErrInvalidCredentials
	}

	if !CheckPasswordHash(password, u.Password) {
		log.Debug("login failed: password mismatch", zap.String("email", email))
		return "", User{}, ErrInvalidCredentials
	}

	token, err := s.tokens.Sign(u.ID, u.Email, string(u.Role))
	return token, u, err
}

func (s *service) GetByEmail(ctx context.Context, email string) (User, error) {
	return s.repo.FindByEmail(ctx, email)
}

// SeedDemoAccounts registers the storefront's demo accounts. Failures are
// fatal for the caller: a storefront without its demo users is misconfigured.
func SeedDemoAccounts(ctx context.Context, repo Repository) error {
	accounts := []struct {
		email, password, name string
		role                  Role
	}{
		{"demo@loaferbd.com", "demo1234", "Demo Shopper", RoleUser},
		{"admin@loaferbd.com", "admin1234", "Store Admin", RoleAdmin},
	}

	for _, a := range accounts {
		hashed, err := HashPassword(a.password)
		if err != nil {
			return err
		}
		if _, err := repo.Create(ctx, User{
			Email:    a.email,
			Name:     a.name,
			Password: hashed,
			Role:     a.role,
		}); err != nil {
			return err
		}
	}
	return nil
}
