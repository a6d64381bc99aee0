package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/rcabral/shortly/internal/events"
	"github.com/rcabral/shortly/internal/middleware"
	"github.com/rcabral/shortly/internal/shortener"
	"go.uber.org/zap"
)

// LinkHandler handles short-link operations.
type LinkHandler struct {
	links          LinkStore
	stats          VisitCounter
	baseURL        string
	publishCreated events.Publish[events.LinkCreatedEvent]
	publishVisited events.Publish[events.LinkVisitedEvent]
	publishDeleted events.Publish[events.LinkDeletedEvent]
	logger         *zap.Logger
}

// NewLinkHandler creates a link handler. baseURL is used to compose the
// externally visible short URL strings.
func NewLinkHandler(
	links LinkStore,
	stats VisitCounter,
	baseURL string,
	publishCreated events.Publish[events.LinkCreatedEvent],
	publishVisited events.Publish[events.LinkVisitedEvent],
	publishDeleted events.Publish[events.LinkDeletedEvent],
	logger *zap.Logger,
) *LinkHandler {
	return &LinkHandler{
		links:          links,
		stats:          stats,
		baseURL:        baseURL,
		publishCreated: publishCreated,
		publishVisited: publishVisited,
		publishDeleted: publishDeleted,
		logger:         logger,
	}
}

func (h *LinkHandler) shortURL(code string) string {
	return fmt.Sprintf("%s/%s", h.baseURL, code)
}

// CreateLink shortens a URL. Creation is idempotent by target: a URL that
// is already shortened yields a 409 carrying the existing code instead of a
// second allocation.
func (h *LinkHandler) CreateLink(ctx context.Context, req *CreateLinkRequest) (*CreateLinkResponse, error) {
	link, created, err := h.links.Create(ctx, req.Body.URL)

	switch {
	case errors.Is(err, shortener.ErrInvalidTarget):
		return nil, huma.Error400BadRequest("invalid url")
	case errors.Is(err, shortener.ErrCodeSpaceExhausted):
		h.logger.Error("short code allocation exhausted", zap.String("url", req.Body.URL))

		return nil, huma.Error500InternalServerError("could not allocate a unique short code")
	case err != nil:
		return nil, huma.Error500InternalServerError("failed to create short url")
	}

	if !created {
		return nil, &ErrorModel{
			status:       http.StatusConflict,
			Message:      "url already shortened",
			GeneratedURI: link.Code,
		}
	}

	meta := middleware.RequestMetaFromContext(ctx)
	event := &events.LinkCreatedEvent{
		Code:      link.Code,
		Target:    link.Target,
		CreatedAt: link.CreatedAt,
		ClientIP:  meta.ClientIP,
		UserAgent: meta.UserAgent,
	}
	if err := h.publishCreated(event); err != nil {
		h.logger.Error("failed to publish link created event",
			zap.String("code", link.Code),
			zap.Error(err),
		)
	}

	resp := &CreateLinkResponse{}
	resp.Headers.Location = h.shortURL(link.Code)
	resp.Body.GeneratedURI = link.Code
	resp.Body.ShortURL = h.shortURL(link.Code)
	resp.Body.URL = link.Target
	resp.Body.CreatedAt = link.CreatedAt

	return resp, nil
}

// Redirect resolves a short code and redirects to its target.
func (h *LinkHandler) Redirect(ctx context.Context, req *RedirectRequest) (*RedirectResponse, error) {
	link, err := h.links.Get(ctx, req.ID)
	if err != nil {
		if errors.Is(err, shortener.ErrNotFound) {
			return nil, huma.Error404NotFound("not found")
		}

		return nil, huma.Error500InternalServerError("failed to resolve short url")
	}

	meta := middleware.RequestMetaFromContext(ctx)
	event := &events.LinkVisitedEvent{
		Code:      link.Code,
		VisitedAt: time.Now(),
		ClientIP:  meta.ClientIP,
		UserAgent: meta.UserAgent,
		Referrer:  meta.Referrer,
	}
	if err := h.publishVisited(event); err != nil {
		h.logger.Error("failed to publish link visited event",
			zap.String("code", link.Code),
			zap.Error(err),
		)
	}

	resp := &RedirectResponse{Status: http.StatusFound}
	resp.Headers.Location = link.Target

	return resp, nil
}

// UpdateLink replaces the target of an existing short link. The code and
// creation timestamp are preserved.
func (h *LinkHandler) UpdateLink(ctx context.Context, req *UpdateLinkRequest) (*MessageResponse, error) {
	err := h.links.Update(ctx, req.ID, req.Body.URL)

	switch {
	case errors.Is(err, shortener.ErrInvalidTarget):
		return nil, huma.Error400BadRequest("invalid url")
	case errors.Is(err, shortener.ErrNotFound):
		return nil, huma.Error404NotFound("not found")
	case err != nil:
		return nil, huma.Error500InternalServerError("failed to update short url")
	}

	resp := &MessageResponse{}
	resp.Body.Message = "updated"

	return resp, nil
}

// DeleteLink removes a short link.
func (h *LinkHandler) DeleteLink(ctx context.Context, req *DeleteLinkRequest) (*MessageResponse, error) {
	err := h.links.Delete(ctx, req.ID)

	switch {
	case errors.Is(err, shortener.ErrNotFound):
		return nil, huma.Error404NotFound("not found")
	case err != nil:
		return nil, huma.Error500InternalServerError("failed to delete short url")
	}

	event := &events.LinkDeletedEvent{Code: req.ID, DeletedAt: time.Now()}
	if err := h.publishDeleted(event); err != nil {
		h.logger.Error("failed to publish link deleted event",
			zap.String("code", req.ID),
			zap.Error(err),
		)
	}

	resp := &MessageResponse{}
	resp.Body.Message = "deleted"

	return resp, nil
}

// ListLinks returns all live links, newest first.
func (h *LinkHandler) ListLinks(ctx context.Context, _ *struct{}) (*ListLinksResponse, error) {
	links := h.links.List(ctx)

	summaries := make([]LinkSummary, len(links))
	for i, link := range links {
		summaries[i] = LinkSummary{
			GeneratedURI: link.Code,
			ShortURL:     h.shortURL(link.Code),
			URL:          link.Target,
			CreatedAt:    link.CreatedAt,
		}
	}

	return &ListLinksResponse{Body: summaries}, nil
}

// ListCodes returns the codes of all live links.
func (h *LinkHandler) ListCodes(ctx context.Context, _ *struct{}) (*ListCodesResponse, error) {
	return &ListCodesResponse{Body: h.links.Codes(ctx)}, nil
}

// LinkStats reports the accumulated visit count for one short link.
func (h *LinkHandler) LinkStats(ctx context.Context, req *LinkStatsRequest) (*LinkStatsResponse, error) {
	if _, err := h.links.Get(ctx, req.ID); err != nil {
		if errors.Is(err, shortener.ErrNotFound) {
			return nil, huma.Error404NotFound("not found")
		}

		return nil, huma.Error500InternalServerError("failed to resolve short url")
	}

	resp := &LinkStatsResponse{}
	resp.Body.GeneratedURI = req.ID
	resp.Body.Visits = h.stats.Visits(req.ID)

	return resp, nil
}

// UnsupportedDelete answers DELETE on the collection root, which has no
// meaning without a code.
func (h *LinkHandler) UnsupportedDelete(_ context.Context, _ *struct{}) (*MessageResponse, error) {
	return nil, huma.Error404NotFound("method not supported")
}
