package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisOTPStore keeps codes in Redis and lets key expiry bound their lifetime.
type RedisOTPStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisOTPStore creates a RedisOTPStore talking to the server at addr.
func NewRedisOTPStore(addr string, ttl time.Duration) *RedisOTPStore {
	return &RedisOTPStore{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		ttl:    ttl,
	}
}

func (s *RedisOTPStore) key(email string) string {
	return fmt.Sprintf("kbbq:otp:%s", email)
}

// Ping checks that the server is reachable.
func (s *RedisOTPStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to reach redis: %w", err)
	}
	return nil
}

func (s *RedisOTPStore) Save(ctx context.Context, email, code string) error {
	if err := s.client.Set(ctx, s.key(email), code, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save otp: %w", err)
	}
	return nil
}

func (s *RedisOTPStore) Get(ctx context.Context, email string) (string, bool, error) {
	code, err := s.client.Get(ctx, s.key(email)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read otp: %w", err)
	}
	return code, true, nil
}

// Close releases the connection pool.
func (s *RedisOTPStore) Close() error {
	return s.client.Close()
}
