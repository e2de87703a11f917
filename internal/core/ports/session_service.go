package ports

import (
	"context"
	"time"

	"github.com/riderapp/admin-console/internal/core/domain"
)

// LoginResult is returned on a successful login.
type LoginResult struct {
	// Token is a signed bearer token for the HTTP surface.
	Token string
	// Identity is the credential record stripped of its secret.
	Identity domain.Identity
}

// SessionService owns the single current Identity and answers
// authentication/authorization queries.
type SessionService interface {
	// Login matches email and password exactly against the credential
	// store. On mismatch it returns domain.ErrInvalidCredentials and
	// leaves any prior session intact.
	Login(ctx context.Context, email, password string) (*LoginResult, error)

	// Logout clears the current Identity unconditionally (idempotent) and,
	// when tokenID is non-empty, revokes that token for the remaining ttl.
	Logout(ctx context.Context, tokenID string, ttl time.Duration) error

	// Current returns the current Identity, or nil when unauthenticated.
	Current() *domain.Identity

	// IsAdmin reports whether a current Identity exists with the admin role.
	IsAdmin() bool
}
