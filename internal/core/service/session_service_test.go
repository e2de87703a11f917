package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/riderapp/admin-console/internal/core/domain"
)

type stubCredentialStore struct {
	creds map[string]domain.Credential
}

func newStubCredentialStore() *stubCredentialStore {
	return &stubCredentialStore{creds: map[string]domain.Credential{
		"admin@riderapp.com": {
			Identity: domain.Identity{ID: "1", Name: "Admin User", Email: "admin@riderapp.com", Role: domain.SessionRoleAdmin},
			Password: "admin123",
		},
		"ahmed@riderapp.com": {
			Identity: domain.Identity{ID: "2", Name: "Ahmed Hassan", Email: "ahmed@riderapp.com", Role: domain.SessionRoleUser, EmployeeID: "EMP001"},
			Password: "user123",
		},
		"hr@riderapp.com": {
			Identity: domain.Identity{ID: "3", Name: "HR Manager", Email: "hr@riderapp.com", Role: domain.SessionRoleAdmin},
			Password: "admin123",
		},
	}}
}

func (s *stubCredentialStore) LookupByEmail(_ context.Context, email string) (*domain.Credential, error) {
	cred, ok := s.creds[email]
	if !ok {
		return nil, domain.ErrCredentialNotFound
	}
	clone := cred
	return &clone, nil
}

type stubRevoker struct {
	revoked map[string]time.Duration
}

func newStubRevoker() *stubRevoker {
	return &stubRevoker{revoked: make(map[string]time.Duration)}
}

func (r *stubRevoker) Revoke(_ context.Context, tokenID string, ttl time.Duration) error {
	r.revoked[tokenID] = ttl
	return nil
}

func (r *stubRevoker) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	_, ok := r.revoked[tokenID]
	return ok, nil
}

func newTestSessionService(revoker *stubRevoker) *SessionService {
	return NewSessionService(newStubCredentialStore(), revoker, "secret", time.Hour, zerolog.Nop())
}

func TestSessionService_Login_SeedPairs(t *testing.T) {
	cases := []struct {
		email    string
		password string
		id       string
		role     domain.SessionRole
	}{
		{"admin@riderapp.com", "admin123", "1", domain.SessionRoleAdmin},
		{"ahmed@riderapp.com", "user123", "2", domain.SessionRoleUser},
		{"hr@riderapp.com", "admin123", "3", domain.SessionRoleAdmin},
	}

	for _, tc := range cases {
		svc := newTestSessionService(newStubRevoker())

		result, err := svc.Login(context.Background(), tc.email, tc.password)
		if err != nil {
			t.Fatalf("Login(%s) returned error: %v", tc.email, err)
		}
		if result.Token == "" {
			t.Fatalf("Login(%s): expected token, got empty", tc.email)
		}
		if result.Identity.ID != tc.id || result.Identity.Role != tc.role {
			t.Fatalf("Login(%s): unexpected identity %+v", tc.email, result.Identity)
		}

		current := svc.Current()
		if current == nil || current.ID != tc.id {
			t.Fatalf("Login(%s): current identity not set, got %+v", tc.email, current)
		}
	}
}

func TestSessionService_Login_TokenClaims(t *testing.T) {
	svc := newTestSessionService(newStubRevoker())

	result, err := svc.Login(context.Background(), "ahmed@riderapp.com", "user123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(result.Token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["role"] != string(domain.SessionRoleUser) {
		t.Fatalf("expected role %s, got %v", domain.SessionRoleUser, claims["role"])
	}
	if claims["employee_id"] != "EMP001" {
		t.Fatalf("expected employee_id EMP001, got %v", claims["employee_id"])
	}
	if jti, _ := claims["jti"].(string); jti == "" {
		t.Fatalf("expected non-empty jti")
	}
}

func TestSessionService_Login_Mismatch(t *testing.T) {
	svc := newTestSessionService(newStubRevoker())

	// Unknown email and wrong password fail identically.
	if _, err := svc.Login(context.Background(), "nobody@x.com", "wrong"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
	if _, err := svc.Login(context.Background(), "admin@riderapp.com", "nope"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	if svc.Current() != nil {
		t.Fatalf("failed login must not set an identity")
	}
}

func TestSessionService_Login_CaseSensitive(t *testing.T) {
	svc := newTestSessionService(newStubRevoker())

	if _, err := svc.Login(context.Background(), "Admin@riderapp.com", "admin123"); err != domain.ErrInvalidCredentials {
		t.Fatalf("email match must be case-sensitive, got %v", err)
	}
	if _, err := svc.Login(context.Background(), "admin@riderapp.com", "ADMIN123"); err != domain.ErrInvalidCredentials {
		t.Fatalf("password match must be case-sensitive, got %v", err)
	}
}

func TestSessionService_Login_FailureKeepsPriorSession(t *testing.T) {
	svc := newTestSessionService(newStubRevoker())

	if _, err := svc.Login(context.Background(), "admin@riderapp.com", "admin123"); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if _, err := svc.Login(context.Background(), "nobody@x.com", "wrong"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	current := svc.Current()
	if current == nil || current.ID != "1" {
		t.Fatalf("failed login must leave prior session intact, got %+v", current)
	}
}

func TestSessionService_Logout_Idempotent(t *testing.T) {
	revoker := newStubRevoker()
	svc := newTestSessionService(revoker)

	if _, err := svc.Login(context.Background(), "admin@riderapp.com", "admin123"); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if err := svc.Logout(context.Background(), "tok-1", time.Minute); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if svc.Current() != nil {
		t.Fatalf("expected no identity after logout")
	}
	if _, ok := revoker.revoked["tok-1"]; !ok {
		t.Fatalf("expected token to be revoked")
	}

	// Second logout ends in the same state.
	if err := svc.Logout(context.Background(), "", 0); err != nil {
		t.Fatalf("second logout failed: %v", err)
	}
	if svc.Current() != nil {
		t.Fatalf("expected no identity after repeated logout")
	}
}

func TestSessionService_IsAdmin(t *testing.T) {
	svc := newTestSessionService(newStubRevoker())

	if svc.IsAdmin() {
		t.Fatalf("IsAdmin must be false when unauthenticated")
	}

	if _, err := svc.Login(context.Background(), "ahmed@riderapp.com", "user123"); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if svc.IsAdmin() {
		t.Fatalf("IsAdmin must be false for the user role")
	}

	if _, err := svc.Login(context.Background(), "admin@riderapp.com", "admin123"); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if !svc.IsAdmin() {
		t.Fatalf("IsAdmin must be true for the admin role")
	}

	_ = svc.Logout(context.Background(), "", 0)
	if svc.IsAdmin() {
		t.Fatalf("IsAdmin must be false after logout")
	}
}

func TestSessionService_CurrentReturnsCopy(t *testing.T) {
	svc := newTestSessionService(newStubRevoker())

	if _, err := svc.Login(context.Background(), "admin@riderapp.com", "admin123"); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	first := svc.Current()
	first.Name = "mutated"

	if second := svc.Current(); second.Name != "Admin User" {
		t.Fatalf("Current must return a copy, got %+v", second)
	}
}
