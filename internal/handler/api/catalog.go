package api

import (
	"net/http"

	reqdto "rentaldesk/internal/handler/dto/request"
	"rentaldesk/internal/handler/httperr"
	"rentaldesk/internal/usecase/commands"
	"rentaldesk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	productQueries      queries.ProductQueries
	productCommands     commands.ProductCommands
	availabilityQueries queries.AvailabilityQueries
}

func NewCatalogHandler(
	productQueries queries.ProductQueries,
	productCommands commands.ProductCommands,
	availabilityQueries queries.AvailabilityQueries,
) *CatalogHandler {
	return &CatalogHandler{
		productQueries:      productQueries,
		productCommands:     productCommands,
		availabilityQueries: availabilityQueries,
	}
}

// @Summary List products
// @Tags products
// @Produce json
// @Success 200 {array} readmodel.ProductRM
// @Failure 502 {object} httperr.Response
// @Router /api/products [get]
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	products, err := h.productQueries.List(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// @Summary Update product stock
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param request body reqdto.UpdateStockRequest true "New stock"
// @Success 200 {object} readmodel.ProductRM
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/products/{id} [put]
func (h *CatalogHandler) UpdateStock(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	var req reqdto.UpdateStockRequest
	if !bindJSON(c, &req) {
		return
	}

	product, err := h.productCommands.UpdateStock(c.Request.Context(), session, c.Param("id"), *req.Quantity)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// @Summary Slot availability
// @Description Per-slot availability of a product on a date, with selectability resolved against the current time
// @Tags availability
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Param productId path string true "Product ID"
// @Success 200 {array} availability.Slot
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/availability/{date}/{productId} [get]
func (h *CatalogHandler) Availability(c *gin.Context) {
	slots, err := h.availabilityQueries.Resolve(c.Request.Context(), c.Param("date"), c.Param("productId"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, slots)
}
