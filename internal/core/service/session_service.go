package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/riderapp/admin-console/internal/core/domain"
	"github.com/riderapp/admin-console/internal/core/ports"
)

// SessionService implements the Session/Auth provider: it owns the single
// current Identity and issues bearer tokens for the HTTP surface.
//
// Login failure is deliberately uniform: a store miss and a password mismatch
// both surface as ErrInvalidCredentials so callers cannot tell which part was
// wrong.
type SessionService struct {
	credentials ports.CredentialStore
	revoker     ports.TokenRevoker
	jwtSecret   string
	tokenTTL    time.Duration
	logger      zerolog.Logger

	mu      sync.RWMutex
	current *domain.Identity
}

func NewSessionService(
	credentials ports.CredentialStore,
	revoker ports.TokenRevoker,
	jwtSecret string,
	tokenTTL time.Duration,
	logger zerolog.Logger,
) *SessionService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &SessionService{
		credentials: credentials,
		revoker:     revoker,
		jwtSecret:   jwtSecret,
		tokenTTL:    tokenTTL,
		logger:      logger,
	}
}

// Login matches email and password exactly against the credential store. On
// success the current Identity becomes the matched record stripped of its
// secret. On any mismatch the prior session, if one exists, stays intact.
func (s *SessionService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	cred, err := s.credentials.LookupByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrCredentialNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !cred.Matches(password) {
		return nil, domain.ErrInvalidCredentials
	}

	identity := cred.Identity

	token, err := s.issueToken(&identity)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.current = &identity
	s.mu.Unlock()

	s.logger.Info().Str("email", identity.Email).Str("role", string(identity.Role)).Msg("login succeeded")

	return &ports.LoginResult{Token: token, Identity: identity}, nil
}

// Logout clears the current Identity. It is idempotent: logging out twice
// ends in the same state as once. When tokenID is non-empty the token is
// revoked for its remaining lifetime; revocation failure is non-fatal since
// the in-process session is already gone.
func (s *SessionService) Logout(ctx context.Context, tokenID string, ttl time.Duration) error {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	if tokenID != "" && ttl > 0 {
		if err := s.revoker.Revoke(ctx, tokenID, ttl); err != nil {
			s.logger.Warn().Err(err).Str("token_id", tokenID).Msg("failed to revoke token")
		}
	}

	return nil
}

// Current returns the current Identity, or nil when unauthenticated. The
// returned value is a copy; mutating it does not affect the session.
func (s *SessionService) Current() *domain.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	clone := *s.current
	return &clone
}

// IsAdmin reports whether a current Identity exists with the admin role.
// It is false whenever unauthenticated.
func (s *SessionService) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.IsAdmin()
}

func (s *SessionService) issueToken(identity *domain.Identity) (string, error) {
	claims := jwt.MapClaims{
		"sub":         identity.ID,
		"name":        identity.Name,
		"email":       identity.Email,
		"role":        string(identity.Role),
		"employee_id": identity.EmployeeID,
		"jti":         newTokenID(),
		"exp":         time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

// newTokenID returns a random 16-hex-digit token identifier.
func newTokenID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		// fallback: nanosecond clock, still unique enough for a jti
		return hex.EncodeToString([]byte(time.Now().String()))[:16]
	}
	return hex.EncodeToString(b)
}
