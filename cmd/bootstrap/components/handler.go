package components

import (
	"storefront-checkout/internal/handler"
	"storefront-checkout/internal/handler/api"
	"storefront-checkout/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCartHandler,
		api.NewCheckoutHandler,
		api.NewOrderHandler,
		api.NewFulfillmentHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
