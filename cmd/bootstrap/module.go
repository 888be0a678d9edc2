package bootstrap

import (
	"storefront-checkout/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	CommerceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
