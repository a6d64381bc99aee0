// Package middleware provides the Huma middlewares: the bearer-token
// authorization gate, request metadata extraction, and request logging.
package middleware

import (
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
	"github.com/rcabral/shortly/internal/auth"
)

// RequiresAuth is the operation metadata key that opts an endpoint into the
// authorization gate.
const RequiresAuth = "requiresAuth"

// Authenticator returns a middleware that guards operations whose metadata
// sets RequiresAuth. The bearer token from the Authorization header is
// verified and its claims are placed in the request context; any failure
// yields a generic 401 without revealing why verification failed.
func Authenticator(api huma.API, tokens *auth.TokenService) func(ctx huma.Context, next func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		if !operationRequiresAuth(ctx) {
			next(ctx)

			return
		}

		token := bearerToken(ctx)
		if token == "" {
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, "missing authorization header")

			return
		}

		claims, err := tokens.Verify(token)
		if err != nil {
			_ = huma.WriteErr(api, ctx, http.StatusUnauthorized, "invalid or expired token")

			return
		}

		ctx = huma.WithContext(ctx, auth.ContextWithClaims(ctx.Context(), claims))

		next(ctx)
	}
}

func operationRequiresAuth(ctx huma.Context) bool {
	op := ctx.Operation()
	if op == nil {
		return false
	}

	required, _ := op.Metadata[RequiresAuth].(bool)

	return required
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header. The last whitespace-separated field is taken, so a bare token
// without the scheme prefix is accepted too.
func bearerToken(ctx huma.Context) string {
	header := ctx.Header("Authorization")
	if header == "" {
		return ""
	}

	fields := strings.Fields(header)
	if len(fields) == 0 {
		return ""
	}

	return fields[len(fields)-1]
}
