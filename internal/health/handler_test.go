package health_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/jaevor/go-nanoid"
	"github.com/rcabral/shortly/internal/auth"
	"github.com/rcabral/shortly/internal/health"
	"github.com/rcabral/shortly/internal/shortener"
	"github.com/rcabral/shortly/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHealthCheck(t *testing.T) {
	generate, err := nanoid.CustomASCII(shortener.Alphabet, shortener.DefaultCodeLength)
	require.NoError(t, err)

	links := store.NewMemoryStore(shortener.CodeGenerator(generate), shortener.DefaultMaxAttempts)
	users := auth.NewCredentialStore(bcrypt.MinCost)

	router := chi.NewMux()
	api := humachi.New(router, huma.DefaultConfig("Test", "1.0.0"))
	health.RegisterRoutes(api, health.NewHandler(links, users))

	t.Run("reports ok with empty stores", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ok","links":0,"users":0}`, w.Body.String())
	})

	t.Run("counts stored links and users", func(t *testing.T) {
		_, _, err := links.Create(context.Background(), "https://example.com")
		require.NoError(t, err)
		require.NoError(t, users.Register(context.Background(), "alice1", "Str0ngPwd!", ""))

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ok","links":1,"users":1}`, w.Body.String())
	})
}
