package bootstrap

import (
	"rentaldesk/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	RedisModule,
	JWTModule,
	components.GatewayModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
