package domain

// SessionRole is the two-value role carried by an authenticated session.
// It is intentionally distinct from AccountRole: sessions know only
// admin/user, while directory accounts carry richer role labels.
type SessionRole string

const (
	SessionRoleAdmin SessionRole = "admin"
	SessionRoleUser  SessionRole = "user"
)

// Identity is the authenticated session principal. At most one Identity is
// current per Session/Auth provider; absence (nil) means unauthenticated.
type Identity struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Email      string      `json:"email"`
	Role       SessionRole `json:"role"`
	EmployeeID string      `json:"employee_id,omitempty"`
}

// IsAdmin reports whether this identity carries the admin session role.
func (i *Identity) IsAdmin() bool {
	return i != nil && i.Role == SessionRoleAdmin
}
