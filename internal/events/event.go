// Package events publishes and consumes link lifecycle events over an
// in-process watermill pub/sub and accumulates per-code visit statistics.
package events

import "time"

const (
	TopicLinkCreated = "links.created"
	TopicLinkVisited = "links.visited"
	TopicLinkDeleted = "links.deleted"
)

// LinkCreatedEvent is emitted when a new short link is allocated.
type LinkCreatedEvent struct {
	Code      string    `json:"code"`
	Target    string    `json:"target"`
	CreatedAt time.Time `json:"createdAt"`
	ClientIP  string    `json:"clientIp,omitempty"`
	UserAgent string    `json:"userAgent,omitempty"`
}

// LinkVisitedEvent is emitted on every successful redirect.
type LinkVisitedEvent struct {
	Code      string    `json:"code"`
	VisitedAt time.Time `json:"visitedAt"`
	ClientIP  string    `json:"clientIp,omitempty"`
	UserAgent string    `json:"userAgent,omitempty"`
	Referrer  string    `json:"referrer,omitempty"`
}

// LinkDeletedEvent is emitted when a short link is removed.
type LinkDeletedEvent struct {
	Code      string    `json:"code"`
	DeletedAt time.Time `json:"deletedAt"`
}
