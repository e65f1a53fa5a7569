package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"buildpro/internal/model"
	"buildpro/internal/repository"
)

func newTestManager(store Store, ttl time.Duration) *Manager {
	users := repository.NewUserRepository([]model.User{
		{ID: "u1", Name: "David Park", Role: model.RoleContractor},
		{ID: "u2", Name: "Sarah Chen", Role: model.RoleSupervisor},
	})
	return NewManager(store, NewTokenService("test-secret", ttl), users)
}

func TestManagerLoginCurrentLogout(t *testing.T) {
	m := newTestManager(NewMemoryStore(), time.Hour)
	ctx := context.Background()

	// Logged out by default.
	user, err := m.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, user)

	logged, err := m.Login(ctx, "u2")
	require.NoError(t, err)
	assert.Equal(t, "Sarah Chen", logged.Name)

	user, err = m.CurrentUser(ctx)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "u2", user.ID)

	id, err := m.CurrentUserID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "u2", id)

	require.NoError(t, m.Logout(ctx))
	user, err = m.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestManagerLoginUnknownUser(t *testing.T) {
	m := newTestManager(NewMemoryStore(), time.Hour)

	_, err := m.Login(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrUnknownUser)

	// A failed login leaves the session logged out.
	user, err := m.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestManagerLoginReplacesSession(t *testing.T) {
	m := newTestManager(NewMemoryStore(), time.Hour)
	ctx := context.Background()

	_, err := m.Login(ctx, "u1")
	require.NoError(t, err)
	_, err = m.Login(ctx, "u2")
	require.NoError(t, err)

	id, err := m.CurrentUserID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "u2", id)
}

func TestManagerExpiredTokenReadsAsLoggedOut(t *testing.T) {
	m := newTestManager(NewMemoryStore(), time.Nanosecond)
	ctx := context.Background()

	_, err := m.Login(ctx, "u1")
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	user, err := m.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestTokenServiceRoundTrip(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	token, err := svc.Issue("u5")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "u5", claims.UserID)
	assert.NotEmpty(t, claims.ID)
}

func TestTokenServiceRejectsForeignSecret(t *testing.T) {
	token, err := NewTokenService("secret-a", time.Hour).Issue("u1")
	require.NoError(t, err)

	_, err = NewTokenService("secret-b", time.Hour).Validate(token)
	assert.Error(t, err)
}

func TestTokenServiceDefaultTTL(t *testing.T) {
	svc := NewTokenService("test-secret", 0)
	assert.Equal(t, DefaultSessionTTL, svc.TTL())
}

func TestMemoryStoreExpiry(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "token", 5*time.Millisecond))
	val, err := s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "token", val)

	time.Sleep(15 * time.Millisecond)
	val, err = s.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, val)
}
