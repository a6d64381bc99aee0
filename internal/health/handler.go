// Package health exposes the liveness endpoint.
package health

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
)

// LinkCounter reports the live short codes.
type LinkCounter interface {
	Codes(ctx context.Context) []string
}

// UserCounter reports the number of registered accounts.
type UserCounter interface {
	Count(ctx context.Context) int
}

// Handler handles health check operations.
type Handler struct {
	links LinkCounter
	users UserCounter
}

// NewHandler creates a health handler.
func NewHandler(links LinkCounter, users UserCounter) *Handler {
	return &Handler{links: links, users: users}
}

// Response reports service status and store sizes.
type Response struct {
	Body struct {
		Status string `json:"status"`
		Links  int    `json:"links"`
		Users  int    `json:"users"`
	}
}

// Check reports liveness. With purely in-memory stores there is nothing to
// ping; the store sizes double as a smoke signal.
func (h *Handler) Check(ctx context.Context, _ *struct{}) (*Response, error) {
	resp := &Response{}
	resp.Body.Status = "ok"
	resp.Body.Links = len(h.links.Codes(ctx))
	resp.Body.Users = h.users.Count(ctx)

	return resp, nil
}

// RegisterRoutes registers the health check route.
func RegisterRoutes(api huma.API, h *Handler) {
	huma.Get(api, "/health", h.Check)
}
