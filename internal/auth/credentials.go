package auth

import (
	"context"
	"sync"

	"github.com/rcabral/shortly/internal/validate"
	"golang.org/x/crypto/bcrypt"
)

// CredentialStore is an in-memory account store guarded by a single RWMutex.
// Registration is the only way accounts come into existence; accounts are
// never removed.
type CredentialStore struct {
	mu    sync.RWMutex
	users map[string]User
	cost  int
}

// NewCredentialStore creates an empty store. cost is the bcrypt work factor;
// values below bcrypt.MinCost fall back to bcrypt.DefaultCost.
func NewCredentialStore(cost int) *CredentialStore {
	if cost < bcrypt.MinCost {
		cost = bcrypt.DefaultCost
	}

	return &CredentialStore{
		users: make(map[string]User),
		cost:  cost,
	}
}

// Register creates a new account. An empty role defaults to regular. The
// raw password is hashed immediately and never stored.
func (s *CredentialStore) Register(_ context.Context, username, password string, role Role) error {
	if !validate.Username(username) {
		return ErrInvalidUsername
	}

	if !validate.Password(password) {
		return ErrWeakPassword
	}

	if role == "" {
		role = RoleRegular
	}

	if !role.Valid() {
		return ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[username]; exists {
		return ErrUsernameTaken
	}

	s.users[username] = User{
		Username:     username,
		PasswordHash: hash,
		Role:         role,
	}

	return nil
}

// VerifyLogin checks a username/password pair and returns the account on
// success. The bcrypt comparison runs outside the lock and does not leak
// timing proportional to matching prefix length.
func (s *CredentialStore) VerifyLogin(_ context.Context, username, password string) (User, error) {
	s.mu.RLock()
	user, ok := s.users[username]
	s.mu.RUnlock()

	if !ok {
		return User{}, ErrUnknownUser
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return User{}, ErrInvalidCredentials
	}

	return user, nil
}

// ChangePassword replaces an account's password hash after verifying the
// current password. An unknown username reports invalid credentials, same
// as a mismatch.
func (s *CredentialStore) ChangePassword(_ context.Context, username, oldPassword, newPassword string) error {
	if !validate.Password(newPassword) {
		return ErrWeakPassword
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[username]
	if !ok {
		return ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(oldPassword)); err != nil {
		return ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), s.cost)
	if err != nil {
		return err
	}

	user.PasswordHash = hash
	s.users[username] = user

	return nil
}

// Count returns the number of registered accounts.
func (s *CredentialStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.users)
}
