package session

import (
	"context"
	"errors"
	"fmt"

	"buildpro/internal/model"
	"buildpro/internal/repository"
)

// ErrUnknownUser is returned when logging in with an id not present in the
// dataset.
var ErrUnknownUser = errors.New("unknown user id")

// Manager holds the current-user session. Screens read through it instead of
// touching the underlying store directly.
type Manager struct {
	store  Store
	tokens *TokenService
	users  repository.UserRepository
}

// NewManager creates a new session manager.
func NewManager(store Store, tokens *TokenService, users repository.UserRepository) *Manager {
	return &Manager{
		store:  store,
		tokens: tokens,
		users:  users,
	}
}

// Login records userID as the current user and returns the user record. The
// id must exist in the dataset.
func (m *Manager) Login(ctx context.Context, userID string) (*model.User, error) {
	user, err := m.users.FindByID(ctx, userID)
	if err != nil {
		return nil, ErrUnknownUser
	}

	token, err := m.tokens.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue session token: %w", err)
	}
	if err := m.store.Set(ctx, token, m.tokens.TTL()); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}
	return user, nil
}

// CurrentUserID returns the logged-in user id, or "" when nobody is logged in
// or the stored token no longer validates. An invalid token reads as logged
// out, never as an error.
func (m *Manager) CurrentUserID(ctx context.Context) (string, error) {
	token, err := m.store.Get(ctx)
	if err != nil {
		return "", fmt.Errorf("read session: %w", err)
	}
	if token == "" {
		return "", nil
	}
	claims, err := m.tokens.Validate(token)
	if err != nil {
		return "", nil
	}
	return claims.UserID, nil
}

// CurrentUser returns the logged-in user, or nil when nobody is logged in or
// the session no longer resolves to a seeded user.
func (m *Manager) CurrentUser(ctx context.Context) (*model.User, error) {
	id, err := m.CurrentUserID(ctx)
	if err != nil || id == "" {
		return nil, err
	}
	user, err := m.users.FindByID(ctx, id)
	if err != nil {
		return nil, nil
	}
	return user, nil
}

// Logout clears the session.
func (m *Manager) Logout(ctx context.Context) error {
	return m.store.Delete(ctx)
}
