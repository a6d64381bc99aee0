// Package shortener defines the link domain model shared by the store and
// the HTTP boundary.
package shortener

import (
	"errors"
	"time"
)

// Alphabet is the symbol set short codes are drawn from.
const Alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

const (
	// DefaultCodeLength is the length of generated short codes.
	DefaultCodeLength = 8

	// DefaultMaxAttempts bounds the collision-retry loop during code
	// allocation. With a 62^8 keyspace this is a defensive limit, not an
	// expected code path.
	DefaultMaxAttempts = 100
)

// Link is a stored mapping from a short code to a target URL.
type Link struct {
	Code      string
	Target    string
	CreatedAt time.Time
}

// CodeGenerator produces candidate short codes. Candidates are drawn
// uniformly at random; uniqueness is the store's responsibility.
type CodeGenerator func() string

var (
	// ErrNotFound is returned when no link exists for a code.
	ErrNotFound = errors.New("link not found")

	// ErrInvalidTarget is returned when a target URL fails validation.
	ErrInvalidTarget = errors.New("invalid target url")

	// ErrCodeSpaceExhausted is returned when allocation gives up after the
	// configured number of colliding draws.
	ErrCodeSpaceExhausted = errors.New("exhausted attempts to allocate a unique code")
)
