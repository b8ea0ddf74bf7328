package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"rentaldesk/internal/domain/user"
	"rentaldesk/internal/handler/api"
	"rentaldesk/internal/handler/middleware"
	"rentaldesk/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth        *api.AuthHandler
	Catalog     *api.CatalogHandler
	Reservation *api.ReservationHandler
	Draft       *api.DraftHandler
	Equipment   *api.EquipmentHandler
}

func NewHandlers(
	auth *api.AuthHandler,
	catalog *api.CatalogHandler,
	reservation *api.ReservationHandler,
	draft *api.DraftHandler,
	equipment *api.EquipmentHandler,
) Handlers {
	return Handlers{
		Auth:        auth,
		Catalog:     catalog,
		Reservation: reservation,
		Draft:       draft,
		Equipment:   equipment,
	}
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware, middleware.NewLoginRateLimiter(cfg.RateLimit))
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware, loginLimiter *middleware.RateLimiter) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	staffOnly := authMiddleware.RequireRoleAtLeast(user.RoleStaff)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login, Mw: []gin.HandlerFunc{loginLimiter.Limit()}},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		public := apiGroup.Group("")
		public.Use(authMiddleware.OptionalAuth())
		addRoutes(public, []route{
			{Method: http.MethodGet, Path: "/products", Handler: h.Catalog.ListProducts},
			{Method: http.MethodGet, Path: "/availability/:date/:productId", Handler: h.Catalog.Availability},
		})

		products := apiGroup.Group("/products")
		products.Use(authMiddleware.RequireAuth())
		{
			addRoutes(products, []route{
				{Method: http.MethodPut, Path: "/:id", Handler: h.Catalog.UpdateStock, Mw: []gin.HandlerFunc{staffOnly}},
			})
		}

		reservations := apiGroup.Group("/reservations")
		reservations.Use(authMiddleware.RequireAuth())
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Reservation.CreateReservation},
				{Method: http.MethodGet, Path: "", Handler: h.Reservation.ListReservations},
				{Method: http.MethodGet, Path: "/date/:date", Handler: h.Reservation.ReservationsByDate, Mw: []gin.HandlerFunc{staffOnly}},
				{Method: http.MethodPut, Path: "/:id/cancel", Handler: h.Reservation.Cancel},
				{Method: http.MethodPut, Path: "/:id/payment", Handler: h.Reservation.MarkPaid, Mw: []gin.HandlerFunc{staffOnly}},
				{Method: http.MethodPut, Path: "/:id/storm-refund", Handler: h.Reservation.StormRefund, Mw: []gin.HandlerFunc{staffOnly}},
				{Method: http.MethodGet, Path: "/:id/actions", Handler: h.Reservation.Actions, Mw: []gin.HandlerFunc{staffOnly}},
			})
		}

		drafts := apiGroup.Group("/drafts")
		drafts.Use(authMiddleware.RequireAuth())
		{
			addRoutes(drafts, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Draft.Create},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Draft.Get},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Draft.Discard},
				{Method: http.MethodPut, Path: "/:id/date", Handler: h.Draft.SetDate},
				{Method: http.MethodPut, Path: "/:id/riders", Handler: h.Draft.SetRiders},
				{Method: http.MethodPut, Path: "/:id/customer", Handler: h.Draft.SetCustomer},
				{Method: http.MethodPost, Path: "/:id/slots/:slot/toggle", Handler: h.Draft.ToggleSlot},
				{Method: http.MethodPost, Path: "/:id/equipment", Handler: h.Draft.AdjustEquipment},
				{Method: http.MethodPost, Path: "/:id/submit", Handler: h.Draft.Submit},
			})
		}

		equipment := apiGroup.Group("/safety-equipment")
		equipment.Use(authMiddleware.RequireAuth(), staffOnly)
		{
			addRoutes(equipment, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Equipment.List},
				{Method: http.MethodPost, Path: "", Handler: h.Equipment.Create},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Equipment.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Equipment.Delete},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
