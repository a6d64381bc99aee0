package handlers_test

import (
	"testing"

	"github.com/jaevor/go-nanoid"
	"github.com/rcabral/shortly/internal/events"
	"github.com/rcabral/shortly/internal/handlers"
	"github.com/rcabral/shortly/internal/shortener"
	"github.com/rcabral/shortly/internal/store"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testBaseURL = "http://localhost:8888"

// noopPublish returns a publish function that always succeeds.
func noopPublish[T any]() events.Publish[T] {
	return func(_ *T) error { return nil }
}

func newTestStore(t *testing.T) *store.MemoryStore {
	t.Helper()

	generate, err := nanoid.CustomASCII(shortener.Alphabet, shortener.DefaultCodeLength)
	require.NoError(t, err)

	return store.NewMemoryStore(shortener.CodeGenerator(generate), shortener.DefaultMaxAttempts)
}

func newTestLinkHandler(s handlers.LinkStore, stats handlers.VisitCounter) *handlers.LinkHandler {
	return handlers.NewLinkHandler(
		s,
		stats,
		testBaseURL,
		noopPublish[events.LinkCreatedEvent](),
		noopPublish[events.LinkVisitedEvent](),
		noopPublish[events.LinkDeletedEvent](),
		zap.NewNop(),
	)
}

// statusOf unwraps the HTTP status from a handler error.
func statusOf(t *testing.T, err error) int {
	t.Helper()

	statusErr, ok := err.(interface{ GetStatus() int })
	require.True(t, ok, "error %v does not carry a status", err)

	return statusErr.GetStatus()
}
