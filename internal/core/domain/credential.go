package domain

import "golang.org/x/crypto/bcrypt"

// Credential is a login record held by a credential store. Exactly one of
// Password (plaintext, mock store) or PasswordHash (bcrypt, persistent store)
// is populated.
//
// Plaintext credentials exist only to back the demo seed table and are
// insecure by design; any real deployment must use the hashed form.
type Credential struct {
	Identity     Identity
	Password     string
	PasswordHash string
}

// Matches reports whether the supplied password matches this credential.
// Plaintext credentials compare exactly and case-sensitively; hashed
// credentials compare via bcrypt.
func (c *Credential) Matches(password string) bool {
	if c.PasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password)) == nil
	}
	return c.Password != "" && c.Password == password
}
