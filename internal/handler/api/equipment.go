package api

import (
	"net/http"

	reqdto "rentaldesk/internal/handler/dto/request"
	"rentaldesk/internal/handler/httperr"
	"rentaldesk/internal/usecase/commands"
	"rentaldesk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type EquipmentHandler struct {
	equipmentCommands commands.EquipmentCommands
	equipmentQueries  queries.EquipmentQueries
}

func NewEquipmentHandler(equipmentCommands commands.EquipmentCommands, equipmentQueries queries.EquipmentQueries) *EquipmentHandler {
	return &EquipmentHandler{
		equipmentCommands: equipmentCommands,
		equipmentQueries:  equipmentQueries,
	}
}

// @Summary List safety equipment inventory
// @Tags safety-equipment
// @Produce json
// @Security BearerAuth
// @Success 200 {array} readmodel.EquipmentItemRM
// @Failure 403 {object} httperr.Response
// @Router /api/safety-equipment [get]
func (h *EquipmentHandler) List(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	items, err := h.equipmentQueries.List(c.Request.Context(), session)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// @Summary Add safety equipment
// @Tags safety-equipment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.EquipmentRequest true "Equipment"
// @Success 201 {object} readmodel.EquipmentItemRM
// @Failure 403 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/safety-equipment [post]
func (h *EquipmentHandler) Create(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	var req reqdto.EquipmentRequest
	if !bindJSON(c, &req) {
		return
	}
	item, err := h.equipmentCommands.Create(c.Request.Context(), session, req.ToInput())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// @Summary Update safety equipment
// @Tags safety-equipment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Equipment ID"
// @Param request body reqdto.EquipmentRequest true "Equipment"
// @Success 200 {object} readmodel.EquipmentItemRM
// @Failure 403 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/safety-equipment/{id} [put]
func (h *EquipmentHandler) Update(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	var req reqdto.EquipmentRequest
	if !bindJSON(c, &req) {
		return
	}
	item, err := h.equipmentCommands.Update(c.Request.Context(), session, c.Param("id"), req.ToInput())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// @Summary Delete safety equipment
// @Tags safety-equipment
// @Security BearerAuth
// @Param id path string true "Equipment ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Router /api/safety-equipment/{id} [delete]
func (h *EquipmentHandler) Delete(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	if err := h.equipmentCommands.Delete(c.Request.Context(), session, c.Param("id")); err != nil {
		httperr.Respond(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
