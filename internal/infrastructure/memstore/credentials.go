// Package memstore provides the in-memory repositories backing the console by
// default. All state is volatile: nothing survives process restart, and every
// read returns a copy so callers cannot mutate store internals.
package memstore

import (
	"context"
	"sync"

	"github.com/riderapp/admin-console/internal/core/domain"
)

// CredentialStore is a fixed in-memory credential table. The seed table holds
// plaintext passwords and is insecure by design; it exists to demonstrate the
// session contract, not to protect anything.
type CredentialStore struct {
	mu      sync.RWMutex
	byEmail map[string]domain.Credential
}

// NewCredentialStore builds a store over the given records, keyed by email.
func NewCredentialStore(creds []domain.Credential) *CredentialStore {
	byEmail := make(map[string]domain.Credential, len(creds))
	for _, c := range creds {
		byEmail[c.Identity.Email] = c
	}
	return &CredentialStore{byEmail: byEmail}
}

// LookupByEmail finds a credential by exact, case-sensitive email.
func (s *CredentialStore) LookupByEmail(_ context.Context, email string) (*domain.Credential, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cred, ok := s.byEmail[email]
	if !ok {
		return nil, domain.ErrCredentialNotFound
	}
	clone := cred
	return &clone, nil
}

// SeedCredentials returns the fixed demo credential table.
func SeedCredentials() []domain.Credential {
	return []domain.Credential{
		{
			Identity: domain.Identity{
				ID:    "1",
				Name:  "Admin User",
				Email: "admin@riderapp.com",
				Role:  domain.SessionRoleAdmin,
			},
			Password: "admin123",
		},
		{
			Identity: domain.Identity{
				ID:         "2",
				Name:       "Ahmed Hassan",
				Email:      "ahmed@riderapp.com",
				Role:       domain.SessionRoleUser,
				EmployeeID: "EMP001",
			},
			Password: "user123",
		},
		{
			Identity: domain.Identity{
				ID:    "3",
				Name:  "HR Manager",
				Email: "hr@riderapp.com",
				Role:  domain.SessionRoleAdmin,
			},
			Password: "admin123",
		},
	}
}
