package components

import (
	"context"
	"log/slog"
	"time"

	"storefront-checkout/internal/pkg/clock"
	"storefront-checkout/internal/pkg/config"
	"storefront-checkout/internal/usecase/commands"
	"storefront-checkout/internal/usecase/queries"
	"storefront-checkout/internal/usecase/session"
	"storefront-checkout/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
	sessionModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	shared.NewCartMirror,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewCartQueries,
		queries.NewOrderQueries,
		queries.NewFulfillmentQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewCartCommands,
	),
)

var sessionModule = fx.Module("usecase/session",
	fx.Provide(
		NewSessionRegistry,
	),
)

// NewSessionRegistry wires the checkout state machines and ties their
// pollers to the app lifecycle: a sweep ticker reaps idle sessions while
// the app runs, and shutdown closes every live poller.
func NewSessionRegistry(
	lc fx.Lifecycle,
	cfg config.Config,
	orders commands.OrderGateway,
	carts queries.CartQueries,
	mirror *shared.CartMirror,
	clk clock.Clock,
	logger *slog.Logger,
) *session.Registry {
	registry := session.NewRegistry(session.Deps{
		Orders:       orders,
		Carts:        carts,
		Mirror:       mirror,
		Clock:        clk,
		Logger:       logger,
		PollInterval: cfg.Checkout.PollInterval,
	}, cfg.Checkout.SessionTTL)

	stop := make(chan struct{})
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				ticker := time.NewTicker(cfg.Checkout.SessionTTL / 2)
				defer ticker.Stop()
				for {
					select {
					case <-stop:
						return
					case <-ticker.C:
						registry.Sweep()
					}
				}
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			close(stop)
			registry.CloseAll()
			return nil
		},
	})

	return registry
}
