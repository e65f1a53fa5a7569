package session

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const sessionKey = "session:current_user"

type redisStore struct {
	client *redis.Client
}

// NewRedisStore creates a session store backed by Redis. Unlike a cache,
// session reads and writes surface connectivity errors to the caller.
func NewRedisStore(addr, password string, db int) Store {
	return &redisStore{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
	}
}

func (s *redisStore) Get(ctx context.Context) (string, error) {
	val, err := s.client.Get(ctx, sessionKey).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get session: %w", err)
	}
	return val, nil
}

func (s *redisStore) Set(ctx context.Context, token string, ttl time.Duration) error {
	if err := s.client.Set(ctx, sessionKey, token, ttl).Err(); err != nil {
		return fmt.Errorf("set session: %w", err)
	}
	return nil
}

func (s *redisStore) Delete(ctx context.Context) error {
	if err := s.client.Del(ctx, sessionKey).Err(); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
