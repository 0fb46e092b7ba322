package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"hotel-reservations/internal/domain/reservation"
	reqdto "hotel-reservations/internal/handler/dto/request"
	resdto "hotel-reservations/internal/handler/dto/response"
	"hotel-reservations/internal/handler/httperr"
	"hotel-reservations/internal/pkg/errs"
	"hotel-reservations/internal/usecase/commands"
	"hotel-reservations/internal/usecase/queries"
	"hotel-reservations/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	commands commands.ReservationCommands
	queries  queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, qs queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{
		commands: cmds,
		queries:  qs,
	}
}

func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "INVALID_REQUEST", "Invalid request format")
		return
	}

	cmd, err := req.ToCommand()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "DATES_INVALID", "Dates must use the YYYY-MM-DD format")
		return
	}

	view, err := h.commands.Create(c.Request.Context(), cmd)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.Header("Location", "/api/reservations/"+view.ID.String())
	c.JSON(http.StatusCreated, resdto.FromReservationView(view))
}

func (h *ReservationHandler) GetReservation(c *gin.Context) {
	id, ok := h.reservationID(c)
	if !ok {
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

func (h *ReservationHandler) ListReservations(c *gin.Context) {
	var filter queries.ListFilter

	if statusStr := c.Query("status"); statusStr != "" {
		status := reservation.Status(statusStr)
		if !status.IsValid() {
			httperr.AbortWithError(c, http.StatusBadRequest, errs.New("unknown status"), "INVALID_REQUEST", "Unknown reservation status")
			return
		}
		filter.Status = &status
	}
	if clientStr := c.Query("clientId"); clientStr != "" {
		clientID, err := strconv.ParseInt(clientStr, 10, 64)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "INVALID_REQUEST", "clientId must be an integer")
			return
		}
		filter.ClientID = &clientID
	}

	items, err := h.queries.List(c.Request.Context(), filter)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationList(items))
}

func (h *ReservationHandler) ModifyReservation(c *gin.Context) {
	id, ok := h.reservationID(c)
	if !ok {
		return
	}

	var req reqdto.ModifyReservationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "INVALID_REQUEST", "Invalid request format")
		return
	}

	cmd, err := req.ToCommand()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "DATES_INVALID", "Dates must use the YYYY-MM-DD format")
		return
	}

	view, err := h.commands.Modify(c.Request.Context(), id, cmd)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

func (h *ReservationHandler) CancelReservation(c *gin.Context) {
	h.transition(c, h.commands.Cancel)
}

func (h *ReservationHandler) ConfirmReservation(c *gin.Context) {
	h.transition(c, h.commands.Confirm)
}

func (h *ReservationHandler) CheckInReservation(c *gin.Context) {
	h.transition(c, h.commands.CheckIn)
}

func (h *ReservationHandler) CheckOutReservation(c *gin.Context) {
	h.transition(c, h.commands.CheckOut)
}

func (h *ReservationHandler) GetReport(c *gin.Context) {
	report, err := h.queries.Report(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReport(report))
}

func (h *ReservationHandler) transition(c *gin.Context, op func(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error)) {
	id, ok := h.reservationID(c)
	if !ok {
		return
	}

	view, err := op(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

func (h *ReservationHandler) reservationID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "INVALID_REQUEST", "Invalid reservation ID format")
		return uuid.Nil, false
	}
	return id, true
}

func (h *ReservationHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrDatesInvalid):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "DATES_INVALID", "Invalid reservation dates")
	case errors.Is(err, errs.ErrRemarksInvalid):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "REMARKS_INVALID", "Remarks exceed the maximum length")
	case errors.Is(err, errs.ErrRoomUnavailable):
		msg := "Room is not available for the requested dates"
		var unavailable *commands.RoomUnavailableError
		if errors.As(err, &unavailable) {
			msg = unavailable.Error()
		}
		httperr.AbortWithError(c, http.StatusConflict, err, "ROOM_UNAVAILABLE", msg)
	case errors.Is(err, shared.ErrClientInvalid):
		httperr.AbortWithError(c, http.StatusNotFound, err, "CLIENT_INVALID", "Client not found or invalid")
	case errors.Is(err, errs.ErrClientUnpaidFees):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "CLIENT_HAS_UNPAID_FEES", "Client has unpaid fees")
	case errors.Is(err, errs.ErrReservationNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "RESERVATION_NOT_FOUND", "Reservation not found")
	case errors.Is(err, errs.ErrConfirmImpossible):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "CONFIRM_IMPOSSIBLE", "Confirmation not allowed in current status")
	case errors.Is(err, errs.ErrCheckInImpossible):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "CHECKIN_IMPOSSIBLE", "Check-in not allowed in current status")
	case errors.Is(err, errs.ErrCheckOutImpossible):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "CHECKOUT_IMPOSSIBLE", "Check-out not allowed in current status")
	case errors.Is(err, errs.ErrCancelImpossible):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "CANCEL_IMPOSSIBLE", "Cancellation not allowed in current status")
	case errors.Is(err, errs.ErrModificationImpossible):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "MODIFICATION_IMPOSSIBLE", "Modification not allowed in current status")
	case errors.Is(err, errs.ErrConcurrentModification):
		httperr.AbortWithError(c, http.StatusConflict, err, "CONCURRENT_MODIFICATION", "Reservation was modified concurrently")
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "INTERNAL_ERROR", "Internal server error")
	}
}
