package bootstrap

import (
	"rentaldesk/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	ConfigParts,
)

// ConfigParts exposes the sections constructors take on their own.
var ConfigParts = fx.Provide(
	func(cfg config.Config) config.RedisConfig { return cfg.Redis },
	func(cfg config.Config) config.JWTConfig { return cfg.JWT },
	func(cfg config.Config) config.BookingConfig { return cfg.Booking },
	func(cfg config.Config) config.BackendConfig { return cfg.Backend },
)
