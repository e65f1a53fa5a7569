// Package session is the single source of truth for the logged-in user. The
// stored value is an opaque signed token; callers only ever see the resolved
// user.
package session

import (
	"context"
	"time"
)

// Store persists the single serialized session token. A missing or expired
// token reads back as the empty string with no error.
type Store interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string, ttl time.Duration) error
	Delete(ctx context.Context) error
}
