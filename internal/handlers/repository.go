package handlers

import (
	"context"

	"github.com/rcabral/shortly/internal/auth"
	"github.com/rcabral/shortly/internal/shortener"
)

// LinkStore is the mapping store the link handlers operate on.
type LinkStore interface {
	// Create allocates a link for target, or returns the existing one with
	// created=false when the target is already shortened.
	Create(ctx context.Context, target string) (link shortener.Link, created bool, err error)
	Get(ctx context.Context, code string) (shortener.Link, error)
	Update(ctx context.Context, code, target string) error
	Delete(ctx context.Context, code string) error
	List(ctx context.Context) []shortener.Link
	Codes(ctx context.Context) []string
}

// CredentialStore is the account store the user handlers operate on.
type CredentialStore interface {
	Register(ctx context.Context, username, password string, role auth.Role) error
	VerifyLogin(ctx context.Context, username, password string) (auth.User, error)
	ChangePassword(ctx context.Context, username, oldPassword, newPassword string) error
}

// TokenIssuer mints bearer tokens after a verified login.
type TokenIssuer interface {
	Issue(username string, role auth.Role) (string, error)
}

// VisitCounter reports accumulated visit counts per short code.
type VisitCounter interface {
	Visits(code string) int64
}
