package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/exertrack/exertrack/internal/metrics"
	"github.com/exertrack/exertrack/internal/model"
	"github.com/exertrack/exertrack/internal/repository"
)

// UserStore is the subset of the repository the registry depends on.
type UserStore interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	ListUsers(ctx context.Context) ([]*model.User, error)
}

// UserService handles user registration and listing.
type UserService struct {
	store   UserStore
	metrics metrics.Recorder
}

// NewUserService creates a new UserService.
func NewUserService(store UserStore, recorder metrics.Recorder) *UserService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &UserService{
		store:   store,
		metrics: recorder,
	}
}

// RegisterUser creates a user with an empty log, or returns the existing
// user when the username is already taken (idempotent create-or-fetch).
// The returned bool reports whether a new user was created. The caller
// layer is responsible for rejecting empty usernames.
func (s *UserService) RegisterUser(ctx context.Context, username string) (*model.User, bool, error) {
	user := &model.User{
		ID:        uuid.New().String(),
		Username:  username,
		CreatedAt: time.Now().UTC(),
	}

	err := s.store.CreateUser(ctx, user)
	if err == nil {
		s.metrics.IncUserRegistered()
		return user, true, nil
	}

	if !errors.Is(err, repository.ErrUsernameExists) {
		return nil, false, storeError(err)
	}

	// The username is taken: fall back to the existing record. The store
	// just reported a uniqueness violation, so a missing record here means
	// the store contradicted itself.
	existing, err := s.store.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, false, ErrInternalInconsistency
		}
		return nil, false, storeError(err)
	}

	return existing, false, nil
}

// ListUsers returns every known user in store order.
func (s *UserService) ListUsers(ctx context.Context) ([]*model.User, error) {
	users, err := s.store.ListUsers(ctx)
	if err != nil {
		return nil, storeError(err)
	}
	return users, nil
}

// storeError tags an unclassified repository failure. The sentinel stays
// matchable with errors.Is while the underlying cause is preserved in the
// message for logs.
func storeError(err error) error {
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}
