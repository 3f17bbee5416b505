package service

import (
	"context"
	"errors"
	"time"

	"github.com/machikasa/machikasa-api/internal/domain"
	"github.com/machikasa/machikasa-api/internal/repository"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrNoCurrentUser = errors.New("no current user")
)

// SessionService holds the demo's switchable current-user pointer.
// It is injected where needed instead of living in package globals, so
// independent sessions (and tests) do not share state.
type SessionService struct {
	repo *repository.LocalDB
}

func NewSessionService(repo *repository.LocalDB) *SessionService {
	return &SessionService{
		repo: repo,
	}
}

func (s *SessionService) CurrentUser(ctx context.Context) (domain.User, error) {
	user, ok := s.repo.CurrentUser(ctx)
	if !ok {
		return domain.User{}, ErrNoCurrentUser
	}

	return user, nil
}

// SwitchUser points the session at another seeded user. This is a demo
// affordance, not authentication.
func (s *SessionService) SwitchUser(ctx context.Context, userID string) (domain.User, error) {
	user, ok := s.repo.User(ctx, userID)
	if !ok {
		return domain.User{}, ErrUserNotFound
	}

	user.LastLoginAt = time.Now()
	s.repo.SaveUser(ctx, user)
	s.repo.SetCurrentUser(ctx, user)

	return user, nil
}

func (s *SessionService) Users(ctx context.Context) []domain.User {
	return s.repo.Users(ctx)
}

func (s *SessionService) User(ctx context.Context, userID string) (domain.User, error) {
	user, ok := s.repo.User(ctx, userID)
	if !ok {
		return domain.User{}, ErrUserNotFound
	}

	return user, nil
}

func (s *SessionService) UserTransactions(ctx context.Context, userID string, limit int) ([]domain.Transaction, error) {
	if _, ok := s.repo.User(ctx, userID); !ok {
		return nil, ErrUserNotFound
	}

	return s.repo.UserTransactions(ctx, userID, limit), nil
}
