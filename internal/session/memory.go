package session

import (
	"context"
	"sync"
	"time"
)

type memoryStore struct {
	mu      sync.RWMutex
	token   string
	expires time.Time
}

// NewMemoryStore creates a process-local session store. Expiry is honored the
// same way the redis store honors TTLs.
func NewMemoryStore() Store {
	return &memoryStore{}
}

func (s *memoryStore) Get(ctx context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" {
		return "", nil
	}
	if !s.expires.IsZero() && time.Now().After(s.expires) {
		return "", nil
	}
	return s.token, nil
}

func (s *memoryStore) Set(ctx context.Context, token string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	if ttl > 0 {
		s.expires = time.Now().Add(ttl)
	} else {
		s.expires = time.Time{}
	}
	return nil
}

func (s *memoryStore) Delete(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.expires = time.Time{}
	return nil
}
