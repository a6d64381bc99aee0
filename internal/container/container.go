// Package container wires the service together with samber/do injector
// packages.
package container

import (
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor" // CBOR format support for huma
	"github.com/go-chi/chi/v5"
	"github.com/jaevor/go-nanoid"
	"github.com/rcabral/shortly/internal/auth"
	"github.com/rcabral/shortly/internal/events"
	"github.com/rcabral/shortly/internal/handlers"
	"github.com/rcabral/shortly/internal/health"
	"github.com/rcabral/shortly/internal/middleware"
	"github.com/rcabral/shortly/internal/shortener"
	"github.com/rcabral/shortly/internal/store"
	"github.com/samber/do"
	"go.uber.org/zap"
)

// Options is the service configuration, populated by humacli from flags and
// environment variables.
type Options struct {
	Port        int    `default:"8888" help:"Port to listen on"                                            short:"p"`
	BaseURL     string `default:""     help:"Base URL for composed short links (default http://localhost:<port>)"`
	CodeLength  int    `default:"8"    help:"Length of generated short codes"                              short:"c"`
	MaxAttempts int    `default:"100"  help:"Maximum attempts to allocate a non-colliding short code"`
	BcryptCost  int    `default:"10"   help:"bcrypt work factor for password hashing"`
}

func (o *Options) baseURL() string {
	if o.BaseURL != "" {
		return o.BaseURL
	}

	return fmt.Sprintf("http://localhost:%d", o.Port)
}

// LoggerPackage provides the process-wide zap logger.
func LoggerPackage(injector *do.Injector) {
	do.Provide(injector, func(_ *do.Injector) (*zap.Logger, error) {
		return zap.NewProduction()
	})
}

// StorePackage provides the link store, the credential store, and the token
// service. The signing secret is generated here and lives only as long as
// the process.
func StorePackage(injector *do.Injector) {
	do.Provide(injector, func(i *do.Injector) (*store.MemoryStore, error) {
		options := do.MustInvoke[*Options](i)

		generate, err := nanoid.CustomASCII(shortener.Alphabet, options.CodeLength)
		if err != nil {
			return nil, fmt.Errorf("build code generator: %w", err)
		}

		return store.NewMemoryStore(shortener.CodeGenerator(generate), options.MaxAttempts), nil
	})

	do.Provide(injector, func(i *do.Injector) (*auth.CredentialStore, error) {
		options := do.MustInvoke[*Options](i)

		return auth.NewCredentialStore(options.BcryptCost), nil
	})

	do.Provide(injector, func(_ *do.Injector) (*auth.TokenService, error) {
		return auth.NewTokenService(auth.NewSigningSecret(), auth.DefaultTokenTTL), nil
	})
}

// EventsPackage provides the in-process pub/sub, the typed publish
// functions, the stats accumulator, and the consumer group feeding it.
func EventsPackage(injector *do.Injector) {
	do.Provide(injector, func(_ *do.Injector) (*gochannel.GoChannel, error) {
		return gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{}), nil
	})

	do.Provide(injector, func(i *do.Injector) (events.Publish[events.LinkCreatedEvent], error) {
		pubsub := do.MustInvoke[*gochannel.GoChannel](i)

		return events.NewPublishFunc[events.LinkCreatedEvent](pubsub, events.TopicLinkCreated), nil
	})

	do.Provide(injector, func(i *do.Injector) (events.Publish[events.LinkVisitedEvent], error) {
		pubsub := do.MustInvoke[*gochannel.GoChannel](i)

		return events.NewPublishFunc[events.LinkVisitedEvent](pubsub, events.TopicLinkVisited), nil
	})

	do.Provide(injector, func(i *do.Injector) (events.Publish[events.LinkDeletedEvent], error) {
		pubsub := do.MustInvoke[*gochannel.GoChannel](i)

		return events.NewPublishFunc[events.LinkDeletedEvent](pubsub, events.TopicLinkDeleted), nil
	})

	do.Provide(injector, func(_ *do.Injector) (*events.Stats, error) {
		return events.NewStats(), nil
	})

	do.Provide(injector, func(i *do.Injector) (*events.Group, error) {
		var (
			pubsub = do.MustInvoke[*gochannel.GoChannel](i)
			stats  = do.MustInvoke[*events.Stats](i)
			logger = do.MustInvoke[*zap.Logger](i)
		)

		var subscriber message.Subscriber = pubsub

		group := events.NewGroup(subscriber, logger)
		group.Add(events.NewConsumer(subscriber, events.TopicLinkCreated, stats.HandleLinkCreated, logger))
		group.Add(events.NewConsumer(subscriber, events.TopicLinkVisited, stats.HandleLinkVisited, logger))
		group.Add(events.NewConsumer(subscriber, events.TopicLinkDeleted, stats.HandleLinkDeleted, logger))

		return group, nil
	})
}

// HTTPPackage provides the router and the API with all middlewares and
// routes registered.
func HTTPPackage(injector *do.Injector) {
	do.Provide(injector, func(_ *do.Injector) (*chi.Mux, error) {
		return chi.NewMux(), nil
	})

	do.Provide(injector, func(i *do.Injector) (huma.API, error) {
		var (
			options = do.MustInvoke[*Options](i)
			router  = do.MustInvoke[*chi.Mux](i)
			links   = do.MustInvoke[*store.MemoryStore](i)
			creds   = do.MustInvoke[*auth.CredentialStore](i)
			tokens  = do.MustInvoke[*auth.TokenService](i)
			stats   = do.MustInvoke[*events.Stats](i)
			logger  = do.MustInvoke[*zap.Logger](i)
		)

		huma.NewError = handlers.NewError

		api := humachi.New(router, huma.DefaultConfig("Shortly", "1.0.0"))
		api.UseMiddleware(
			middleware.RequestLogger(logger),
			middleware.CaptureRequestMeta(api),
			middleware.Authenticator(api, tokens),
		)

		linkHandler := handlers.NewLinkHandler(
			links,
			stats,
			options.baseURL(),
			do.MustInvoke[events.Publish[events.LinkCreatedEvent]](i),
			do.MustInvoke[events.Publish[events.LinkVisitedEvent]](i),
			do.MustInvoke[events.Publish[events.LinkDeletedEvent]](i),
			logger,
		)
		userHandler := handlers.NewUserHandler(creds, tokens, logger)

		handlers.RegisterRoutes(api, linkHandler, userHandler)
		health.RegisterRoutes(api, health.NewHandler(links, creds))

		return api, nil
	})
}
