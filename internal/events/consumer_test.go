package events_test

import (
	"context"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/rcabral/shortly/internal/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestConsumer(t *testing.T) {
	t.Run("delivers published events to the stats handler", func(t *testing.T) {
		pubsub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
		stats := events.NewStats()

		group := events.NewGroup(pubsub, zap.NewNop())
		group.Add(events.NewConsumer(pubsub, events.TopicLinkVisited, stats.HandleLinkVisited, zap.NewNop()))

		require.NoError(t, group.Start(context.Background()))

		t.Cleanup(func() {
			_ = group.Shutdown()
		})

		publish := events.NewPublishFunc[events.LinkVisitedEvent](pubsub, events.TopicLinkVisited)
		require.NoError(t, publish(&events.LinkVisitedEvent{Code: "Ab3xYz9Q", VisitedAt: time.Now()}))

		assert.Eventually(t, func() bool {
			return stats.Visits("Ab3xYz9Q") == 1
		}, 2*time.Second, 10*time.Millisecond)
	})

	t.Run("shutdown stops the group cleanly", func(t *testing.T) {
		pubsub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
		stats := events.NewStats()

		group := events.NewGroup(pubsub, zap.NewNop())
		group.Add(events.NewConsumer(pubsub, events.TopicLinkCreated, stats.HandleLinkCreated, zap.NewNop()))
		group.Add(events.NewConsumer(pubsub, events.TopicLinkDeleted, stats.HandleLinkDeleted, zap.NewNop()))

		require.NoError(t, group.Start(context.Background()))
		assert.NoError(t, group.Shutdown())
	})
}
