package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/rcabral/shortly/internal/auth"
	"github.com/rcabral/shortly/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testOutput struct {
	Body struct {
		Subject string `json:"subject"`
	}
}

func setupAuthAPI(t *testing.T, tokens *auth.TokenService) *chi.Mux {
	t.Helper()

	router := chi.NewMux()
	api := humachi.New(router, huma.DefaultConfig("Test", "1.0.0"))
	api.UseMiddleware(middleware.Authenticator(api, tokens))

	huma.Register(api, huma.Operation{
		OperationID: "protected",
		Method:      http.MethodGet,
		Path:        "/protected",
		Metadata: map[string]any{
			middleware.RequiresAuth: true,
		},
	}, func(ctx context.Context, _ *struct{}) (*testOutput, error) {
		out := &testOutput{}
		if claims := auth.ClaimsFromContext(ctx); claims != nil {
			out.Body.Subject = claims.Subject
		}

		return out, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "open",
		Method:      http.MethodGet,
		Path:        "/open",
	}, func(_ context.Context, _ *struct{}) (*testOutput, error) {
		return &testOutput{}, nil
	})

	return router
}

func TestAuthenticator(t *testing.T) {
	tokens := auth.NewTokenService(auth.NewSigningSecret(), auth.DefaultTokenTTL)

	t.Run("rejects a protected operation without a header", func(t *testing.T) {
		router := setupAuthAPI(t, tokens)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects an invalid token", func(t *testing.T) {
		router := setupAuthAPI(t, tokens)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "invalid or expired token")
	})

	t.Run("rejects an expired token", func(t *testing.T) {
		expired := auth.NewTokenService(auth.NewSigningSecret(), -time.Minute)
		token, err := expired.Issue("alice1", auth.RoleRegular)
		require.NoError(t, err)

		router := setupAuthAPI(t, expired)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("admits a valid token and exposes its claims", func(t *testing.T) {
		token, err := tokens.Issue("alice1", auth.RoleRegular)
		require.NoError(t, err)

		router := setupAuthAPI(t, tokens)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"subject":"alice1"`)
	})

	t.Run("accepts a bare token without the bearer prefix", func(t *testing.T) {
		token, err := tokens.Issue("alice1", auth.RoleRegular)
		require.NoError(t, err)

		router := setupAuthAPI(t, tokens)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", token)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("leaves unprotected operations alone", func(t *testing.T) {
		router := setupAuthAPI(t, tokens)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/open", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
