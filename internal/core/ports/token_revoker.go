package ports

import (
	"context"
	"time"
)

// TokenRevoker is the denylist consulted on every authenticated request so a
// logged-out token cannot be replayed for the rest of its lifetime. Entries
// only need to live until the token would have expired anyway.
type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
