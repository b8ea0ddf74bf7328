package api

import (
	"net/http"

	"rentaldesk/internal/domain/reservation"
	reqdto "rentaldesk/internal/handler/dto/request"
	resdto "rentaldesk/internal/handler/dto/response"
	"rentaldesk/internal/handler/httperr"
	"rentaldesk/internal/usecase/commands"
	"rentaldesk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	reservationCommands commands.ReservationCommands
	reservationQueries  queries.ReservationQueries
}

func NewReservationHandler(reservationCommands commands.ReservationCommands, reservationQueries queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{
		reservationCommands: reservationCommands,
		reservationQueries:  reservationQueries,
	}
}

// @Summary Create reservation
// @Description Validate a booking locally and submit it to the booking service
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/reservations [post]
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	var req reqdto.CreateReservationRequest
	if !bindJSON(c, &req) {
		return
	}

	rm, err := h.reservationCommands.Create(c.Request.Context(), session, req.ToParams())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	resp, err := resdto.FromReservationRM(rm)
	writeMapped(c, http.StatusCreated, resp, err)
}

// @Summary List reservations
// @Description Reservations visible to the caller, optionally filtered by payment/cancellation status and date
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param status query string false "pending, paid, partial refund, canceled, payment-expired or storm refund"
// @Param date query string false "Date (YYYY-MM-DD)"
// @Success 200 {array} resdto.ReservationResponse
// @Failure 401 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/reservations [get]
func (h *ReservationHandler) ListReservations(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}
	var q reqdto.ListReservationsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}

	rms, err := h.reservationQueries.List(c.Request.Context(), session, q.ToFilter())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	resp, err := resdto.FromReservationRMs(rms)
	writeMapped(c, http.StatusOK, resp, err)
}

// @Summary Reservations of a day
// @Description Staff day view ordered by first reserved slot
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {array} resdto.ReservationResponse
// @Failure 403 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/reservations/date/{date} [get]
func (h *ReservationHandler) ReservationsByDate(c *gin.Context) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	rms, err := h.reservationQueries.ByDate(c.Request.Context(), session, c.Param("date"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	resp, err := resdto.FromReservationRMs(rms)
	writeMapped(c, http.StatusOK, resp, err)
}

// @Summary Cancel reservation
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.ActionRequest false "Confirmation"
// @Success 200 {object} resdto.ActionResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 428 {object} httperr.Response
// @Router /api/reservations/{id}/cancel [put]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	h.apply(c, reservation.ActionCancel)
}

// @Summary Mark reservation paid
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.ActionRequest false "Confirmation and payment method"
// @Success 200 {object} resdto.ActionResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 428 {object} httperr.Response
// @Router /api/reservations/{id}/payment [put]
func (h *ReservationHandler) MarkPaid(c *gin.Context) {
	h.apply(c, reservation.ActionMarkPaid)
}

// @Summary Storm refund
// @Description Cancel a paid reservation with a 50% refund
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.ActionRequest false "Confirmation"
// @Success 200 {object} resdto.ActionResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 428 {object} httperr.Response
// @Router /api/reservations/{id}/storm-refund [put]
func (h *ReservationHandler) StormRefund(c *gin.Context) {
	h.apply(c, reservation.ActionStormRefund)
}

func (h *ReservationHandler) apply(c *gin.Context, action reservation.Action) {
	session, ok := requireSession(c)
	if !ok {
		return
	}

	var req reqdto.ActionRequest
	if c.Request.ContentLength > 0 && !bindJSON(c, &req) {
		return
	}
	if c.Query("confirm") == "true" {
		req.Confirm = true
	}

	result, err := h.reservationCommands.Apply(c.Request.Context(), session, c.Param("id"), action, req.ToOptions())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	resp, err := resdto.FromActionResult(result)
	writeMapped(c, http.StatusOK, resp, err)
}

// @Summary Reservation action history
// @Description Journal of lifecycle actions attempted through this service, newest first
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {array} readmodel.ActionRecordRM
// @Failure 403 {object} httperr.Response
// @Router /api/reservations/{id}/actions [get]
func (h *ReservationHandler) Actions(c *gin.Context) {
	records, err := h.reservationQueries.Actions(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}
