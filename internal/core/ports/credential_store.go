package ports

import (
	"context"

	"github.com/riderapp/admin-console/internal/core/domain"
)

// CredentialStore abstracts where login records live so the mock seed table
// and a real identity store are interchangeable behind the session service.
type CredentialStore interface {
	// LookupByEmail finds a credential by exact, case-sensitive email.
	// Returns domain.ErrCredentialNotFound when no record exists.
	LookupByEmail(ctx context.Context, email string) (*domain.Credential, error)
}
