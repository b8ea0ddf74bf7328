package components

import (
	"rentaldesk/internal/handler"
	"rentaldesk/internal/handler/api"
	"rentaldesk/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewCatalogHandler,
		api.NewReservationHandler,
		api.NewDraftHandler,
		api.NewEquipmentHandler,
		handler.NewHandlers,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
