package domain

import "errors"

var (
	// ErrInvalidCredentials is returned on any login mismatch. Callers must
	// not distinguish unknown-email from wrong-password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrCredentialNotFound is an internal store-level miss; the session
	// service collapses it into ErrInvalidCredentials before it reaches
	// any caller.
	ErrCredentialNotFound = errors.New("credential not found")

	ErrNotAuthenticated = errors.New("not authenticated")
	ErrForbidden        = errors.New("access forbidden")

	ErrMissingField     = errors.New("missing required field")
	ErrAccountNotFound  = errors.New("user account not found")
	ErrDuplicateAccount = errors.New("user account already exists")

	// ErrInvalidCutoffDate rejects cut-off days outside 1..31.
	ErrInvalidCutoffDate = errors.New("cutoff date must be between 1 and 31")
)
