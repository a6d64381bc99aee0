package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/rcabral/shortly/internal/middleware"
	"github.com/stretchr/testify/assert"
)

type metaOutput struct {
	Body struct {
		ClientIP  string `json:"clientIp"`
		UserAgent string `json:"userAgent"`
		Referrer  string `json:"referrer"`
	}
}

func setupMetaAPI(t *testing.T) *chi.Mux {
	t.Helper()

	router := chi.NewMux()
	api := humachi.New(router, huma.DefaultConfig("Test", "1.0.0"))
	api.UseMiddleware(middleware.CaptureRequestMeta(api))

	huma.Get(api, "/meta", func(ctx context.Context, _ *struct{}) (*metaOutput, error) {
		meta := middleware.RequestMetaFromContext(ctx)

		out := &metaOutput{}
		out.Body.ClientIP = meta.ClientIP
		out.Body.UserAgent = meta.UserAgent
		out.Body.Referrer = meta.Referrer

		return out, nil
	})

	return router
}

func TestCaptureRequestMeta(t *testing.T) {
	t.Run("captures user agent and referrer", func(t *testing.T) {
		router := setupMetaAPI(t)

		req := httptest.NewRequest(http.MethodGet, "/meta", nil)
		req.Header.Set("User-Agent", "TestAgent/1.0")
		req.Header.Set("Referer", "https://example.com")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "TestAgent/1.0")
		assert.Contains(t, w.Body.String(), "https://example.com")
	})

	t.Run("prefers the first forwarded-for entry", func(t *testing.T) {
		router := setupMetaAPI(t)

		req := httptest.NewRequest(http.MethodGet, "/meta", nil)
		req.Header.Set("X-Forwarded-For", "192.168.1.1, 10.0.0.1")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Contains(t, w.Body.String(), "192.168.1.1")
	})

	t.Run("falls back to the real-ip header", func(t *testing.T) {
		router := setupMetaAPI(t)

		req := httptest.NewRequest(http.MethodGet, "/meta", nil)
		req.Header.Set("X-Real-IP", "10.1.2.3")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Contains(t, w.Body.String(), "10.1.2.3")
	})

	t.Run("returns the zero value without the middleware", func(t *testing.T) {
		meta := middleware.RequestMetaFromContext(context.Background())

		assert.Empty(t, meta.ClientIP)
		assert.Empty(t, meta.UserAgent)
	})
}
