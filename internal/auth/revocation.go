package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"zoomboom/internal/config"
)

const revokedKeyPrefix = "zoomboom:revoked:"

// RevocationStore remembers logged-out token ids until they expire.
type RevocationStore interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// RedisRevocationStore keeps one expiring key per revoked token.
type RedisRevocationStore struct {
	rdb redis.Cmdable
}

func NewRedisRevocationStore(rdb redis.Cmdable) *RedisRevocationStore {
	return &RedisRevocationStore{rdb: rdb}
}

func (s *RedisRevocationStore) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil // already expired
	}
	return s.rdb.Set(ctx, revokedKeyPrefix+jti, 1, ttl).Err()
}

func (s *RedisRevocationStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := s.rdb.Exists(ctx, revokedKeyPrefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// NopRevocationStore is used when Redis is not configured. Logout then only
// asks the client to drop its token.
type NopRevocationStore struct{}

func (NopRevocationStore) Revoke(context.Context, string, time.Duration) error { return nil }

func (NopRevocationStore) IsRevoked(context.Context, string) (bool, error) { return false, nil }

// NewRedisClient connects to cfg.Addr and pings it.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return rdb, nil
}
