package auth

import (
	"crypto/rand"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is how long issued tokens remain valid.
const DefaultTokenTTL = 24 * time.Hour

// ErrInvalidToken is the uniform failure for any verification problem:
// bad signature, malformed structure, or expiry. Callers get no further
// detail.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims is the payload carried by issued tokens: the username as subject
// plus the account role.
type Claims struct {
	Role Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenService mints and verifies HS256 bearer tokens. It holds no durable
// state beyond the signing secret, which lives only for the process
// lifetime; tokens issued before a restart are unverifiable afterwards.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewSigningSecret returns a fresh 64-byte random signing secret.
func NewSigningSecret() []byte {
	secret := make([]byte, 64)
	if _, err := rand.Read(secret); err != nil {
		panic("auth: cannot read random signing secret: " + err.Error())
	}

	return secret
}

// NewTokenService creates a token service signing with secret. Tokens
// expire ttl after issuance; a zero ttl falls back to the default.
func NewTokenService(secret []byte, ttl time.Duration) *TokenService {
	if ttl == 0 {
		ttl = DefaultTokenTTL
	}

	return &TokenService{secret: secret, ttl: ttl}
}

// Issue mints a signed token for username with the given role.
func (s *TokenService) Issue(username string, role Role) (string, error) {
	now := time.Now()
	claims := &Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify checks a token's signature and expiry and returns its claims.
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}

		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
