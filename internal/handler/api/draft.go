package api

import (
	"net/http"
	"strconv"

	"rentaldesk/internal/domain/slot"
	reqdto "rentaldesk/internal/handler/dto/request"
	resdto "rentaldesk/internal/handler/dto/response"
	"rentaldesk/internal/handler/httperr"
	"rentaldesk/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// DraftHandler serves the step-by-step booking form. Drafts live server-side
// and belong to the session that opened them.
type DraftHandler struct {
	draftCommands commands.DraftCommands
}

func NewDraftHandler(draftCommands commands.DraftCommands) *DraftHandler {
	return &DraftHandler{draftCommands: draftCommands}
}

// @Summary Open booking draft
// @Tags drafts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateDraftRequest true "Product and quantity"
// @Success 201 {object} resdto.DraftResponse
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/drafts [post]
func (h *DraftHandler) Create(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	var req reqdto.CreateDraftRequest
	if !bindJSON(c, &req) {
		return
	}

	d, err := h.draftCommands.Create(c.Request.Context(), session, req.ProductID, req.Quantity)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	resp, err := resdto.FromDraft(d)
	writeMapped(c, http.StatusCreated, resp, err)
}

// @Summary Get booking draft
// @Tags drafts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Draft ID"
// @Success 200 {object} resdto.DraftResponse
// @Failure 404 {object} httperr.Response
// @Router /api/drafts/{id} [get]
func (h *DraftHandler) Get(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	d, err := h.draftCommands.Get(c.Request.Context(), session, c.Param("id"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	resp, err := resdto.FromDraft(d)
	writeMapped(c, http.StatusOK, resp, err)
}

// @Summary Choose draft date
// @Description Sets the date, clears the slot selection and loads availability for it
// @Tags drafts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Draft ID"
// @Param request body reqdto.SetDraftDateRequest true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.DraftResponse
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/drafts/{id}/date [put]
func (h *DraftHandler) SetDate(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	var req reqdto.SetDraftDateRequest
	if !bindJSON(c, &req) {
		return
	}
	d, err := h.draftCommands.SetDate(c.Request.Context(), session, c.Param("id"), req.Date)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	resp, err := resdto.FromDraft(d)
	writeMapped(c, http.StatusOK, resp, err)
}

// @Summary Toggle a slot
// @Description Adds or removes a slot; a rejected change leaves the selection as it was and explains why
// @Tags drafts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Draft ID"
// @Param slot path int true "Slot index"
// @Success 200 {object} resdto.ToggleResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/drafts/{id}/slots/{slot}/toggle [post]
func (h *DraftHandler) ToggleSlot(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	idx, err := strconv.Atoi(c.Param("slot"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid slot index", nil)
		return
	}

	result, err := h.draftCommands.ToggleSlot(c.Request.Context(), session, c.Param("id"), slot.Index(idx))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	resp, err := resdto.FromToggleResult(result)
	writeMapped(c, http.StatusOK, resp, err)
}

// @Summary Set rider count
// @Tags drafts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Draft ID"
// @Param request body reqdto.SetDraftRidersRequest true "Riders"
// @Success 200 {object} resdto.DraftResponse
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/drafts/{id}/riders [put]
func (h *DraftHandler) SetRiders(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	var req reqdto.SetDraftRidersRequest
	if !bindJSON(c, &req) {
		return
	}
	d, err := h.draftCommands.SetRiders(c.Request.Context(), session, c.Param("id"), req.Riders)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	resp, err := resdto.FromDraft(d)
	writeMapped(c, http.StatusOK, resp, err)
}

// @Summary Adjust safety equipment
// @Description Moves one size of helmets or life jackets up or down
// @Tags drafts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Draft ID"
// @Param request body reqdto.AdjustEquipmentRequest true "Adjustment"
// @Success 200 {object} resdto.DraftResponse
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/drafts/{id}/equipment [post]
func (h *DraftHandler) AdjustEquipment(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	var req reqdto.AdjustEquipmentRequest
	if !bindJSON(c, &req) {
		return
	}
	d, err := h.draftCommands.AdjustEquipment(c.Request.Context(), session, c.Param("id"), req.ToAdjustment())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	resp, err := resdto.FromDraft(d)
	writeMapped(c, http.StatusOK, resp, err)
}

// @Summary Set customer details
// @Tags drafts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Draft ID"
// @Param request body reqdto.SetDraftCustomerRequest true "Customer"
// @Success 200 {object} resdto.DraftResponse
// @Failure 404 {object} httperr.Response
// @Router /api/drafts/{id}/customer [put]
func (h *DraftHandler) SetCustomer(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	var req reqdto.SetDraftCustomerRequest
	if !bindJSON(c, &req) {
		return
	}
	d, err := h.draftCommands.SetCustomer(c.Request.Context(), session, c.Param("id"), req.Name, req.Contact)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	resp, err := resdto.FromDraft(d)
	writeMapped(c, http.StatusOK, resp, err)
}

// @Summary Submit draft
// @Description Creates the reservation from the draft and discards the draft
// @Tags drafts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Draft ID"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/drafts/{id}/submit [post]
func (h *DraftHandler) Submit(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	rm, err := h.draftCommands.Submit(c.Request.Context(), session, c.Param("id"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	resp, err := resdto.FromReservationRM(rm)
	writeMapped(c, http.StatusCreated, resp, err)
}

// @Summary Discard draft
// @Tags drafts
// @Security BearerAuth
// @Param id path string true "Draft ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /api/drafts/{id} [delete]
func (h *DraftHandler) Discard(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	if err := h.draftCommands.Discard(c.Request.Context(), session, c.Param("id")); err != nil {
		httperr.Respond(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
