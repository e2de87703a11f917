package memstore

import (
	"context"
	"sync"
	"time"
)

// TokenRevoker is an in-memory token denylist used when no Redis is
// configured. Expired entries are pruned lazily on lookup.
type TokenRevoker struct {
	mu      sync.Mutex
	expires map[string]time.Time
}

func NewTokenRevoker() *TokenRevoker {
	return &TokenRevoker{expires: make(map[string]time.Time)}
}

func (r *TokenRevoker) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.expires[tokenID] = time.Now().Add(ttl)
	return nil
}

func (r *TokenRevoker) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	expiry, ok := r.expires[tokenID]
	if !ok {
		return false, nil
	}
	if time.Now().After(expiry) {
		delete(r.expires, tokenID)
		return false, nil
	}
	return true, nil
}
