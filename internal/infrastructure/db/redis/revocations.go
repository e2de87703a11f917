package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenRevoker is a Redis-backed token denylist shared across instances.
// Keys carry the token's remaining lifetime as TTL so the denylist cleans
// itself up once the token would have expired anyway.
// Key format: revoked:<token_id>
type TokenRevoker struct {
	client *redis.Client
}

// NewTokenRevoker creates a TokenRevoker wrapping the given Redis client.
func NewTokenRevoker(client *redis.Client) *TokenRevoker {
	return &TokenRevoker{client: client}
}

// Revoke denylists the token for ttl.
func (r *TokenRevoker) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := r.client.Set(ctx, r.key(tokenID), "1", ttl).Err(); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

// IsRevoked reports whether the token has been denylisted.
func (r *TokenRevoker) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := r.client.Exists(ctx, r.key(tokenID)).Result()
	if err != nil {
		return false, fmt.Errorf("revocation check: %w", err)
	}
	return n > 0, nil
}

func (r *TokenRevoker) key(tokenID string) string {
	return "revoked:" + tokenID
}
