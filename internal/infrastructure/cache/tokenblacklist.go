package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"codergrounds/internal/shared/constants"
)

// TokenBlacklist records rotated refresh tokens in Redis. The presence of a
// key means "this refresh token must not be honored again"; absence means
// only "not known to be revoked" and never replaces the signature check.
type TokenBlacklist struct {
	client *redis.Client
}

// NewTokenBlacklist creates a Redis-backed refresh token blacklist.
func NewTokenBlacklist(client *redis.Client) *TokenBlacklist {
	return &TokenBlacklist{client: client}
}

// Blacklist marks the refresh token as revoked for the given TTL. The TTL
// must be the token's remaining lifetime; callers skip blacklisting entirely
// when it is not positive. The set is idempotent.
func (b *TokenBlacklist) Blacklist(ctx context.Context, token string, ttl time.Duration) error {
	if token == "" {
		return errors.New("token cannot be empty")
	}
	if ttl <= 0 {
		return errors.New("ttl must be positive")
	}

	if err := b.client.Set(ctx, b.buildKey(token), "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to blacklist refresh token: %w", err)
	}
	return nil
}

// IsBlacklisted reports whether the refresh token has been revoked. A cache
// failure is a hard error: failing open here would allow token replay.
func (b *TokenBlacklist) IsBlacklisted(ctx context.Context, token string) (bool, error) {
	result, err := b.client.Exists(ctx, b.buildKey(token)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check refresh token blacklist: %w", err)
	}
	return result > 0, nil
}

func (b *TokenBlacklist) buildKey(token string) string {
	return constants.CacheKeyBlacklistPrefix + token
}
