// Package auth owns user credentials and bearer tokens.
package auth

import "errors"

// Role classifies a registered user. Roles are carried in issued tokens but
// no per-role checks are enforced beyond login.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleRegular Role = "regular"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleRegular
}

// User is a registered account. The password is only ever held as a bcrypt
// hash.
type User struct {
	Username     string
	PasswordHash []byte
	Role         Role
}

var (
	// ErrInvalidUsername is returned when a username fails validation.
	ErrInvalidUsername = errors.New("username must be at least 5 characters of alphanumerics and underscores")

	// ErrWeakPassword is returned when a password fails the strength rules.
	ErrWeakPassword = errors.New("password must be at least 8 characters with an uppercase letter, a lowercase letter, and a digit")

	// ErrInvalidRole is returned when a role is neither admin nor regular.
	ErrInvalidRole = errors.New("invalid role")

	// ErrUsernameTaken is returned when registering an existing username.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrUnknownUser is returned when no account exists for a username.
	ErrUnknownUser = errors.New("user not found")

	// ErrInvalidCredentials is returned when a password does not verify.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
