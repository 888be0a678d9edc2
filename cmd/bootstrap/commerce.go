package bootstrap

import (
	"log/slog"

	"storefront-checkout/internal/infra/commerce"
	"storefront-checkout/internal/pkg/config"
	"storefront-checkout/internal/usecase/commands"
	"storefront-checkout/internal/usecase/queries"

	"go.uber.org/fx"
)

// CommerceModule provides the single backend HTTP client and binds it to
// every gateway port the use case layer consumes.
var CommerceModule = fx.Module("commerce",
	fx.Provide(
		fx.Annotate(
			NewCommerceClient,
			fx.As(new(commands.CartGateway)),
			fx.As(new(commands.OrderGateway)),
			fx.As(new(queries.CartViewGateway)),
			fx.As(new(queries.OrderViewGateway)),
			fx.As(new(queries.FulfillmentGateway)),
		),
	),
)

func NewCommerceClient(cfg config.Config, logger *slog.Logger) *commerce.Client {
	return commerce.NewClient(cfg.Commerce, logger)
}
