package components

import (
	"rentaldesk/internal/infra/backend"
	"rentaldesk/internal/usecase/shared"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		fx.Annotate(
			backend.NewClient,
			fx.As(new(shared.AuthGateway)),
			fx.As(new(shared.ProductGateway)),
			fx.As(new(shared.AvailabilityGateway)),
			fx.As(new(shared.ReservationGateway)),
			fx.As(new(shared.EquipmentGateway)),
		),
	),
)
