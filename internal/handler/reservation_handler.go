package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"cinereserve/internal/auth"
	apperrors "cinereserve/internal/errors"
	"cinereserve/internal/service"
)

// dateLayout is the wire format for reservation dates.
const dateLayout = "2006-01-02"

// ReservationHandler handles reservation endpoints. All routes require an
// authenticated user; claims are attached to the context by the auth gate.
type ReservationHandler struct {
	reservationService service.ReservationService
}

// NewReservationHandler creates a new reservation handler.
func NewReservationHandler(reservationService service.ReservationService) *ReservationHandler {
	return &ReservationHandler{reservationService: reservationService}
}

// CreateReservationRequest represents a reservation creation request.
type CreateReservationRequest struct {
	Movie string `json:"movie" validate:"required"`
	Date  string `json:"date" validate:"required"`
	Time  string `json:"time" validate:"required"`
	Room  int    `json:"room" validate:"required"`
}

// Create godoc
// @Summary Create a reservation for the authenticated user
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateReservationRequest true "Reservation data"
// @Success 200 {object} model.Reservation
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /reservations [post]
func (h *ReservationHandler) Create(c echo.Context) error {
	claims, ok := c.Get("user").(*auth.Claims)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "access denied")
	}

	var req CreateReservationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
	}

	reservation, err := h.reservationService.Create(
		c.Request().Context(), claims.UserID, req.Movie, date, req.Time, req.Room,
	)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, reservation)
}

// List godoc
// @Summary List reservations owned by the authenticated user
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Reservation
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /reservations [get]
func (h *ReservationHandler) List(c echo.Context) error {
	claims, ok := c.Get("user").(*auth.Claims)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "access denied")
	}

	reservations, err := h.reservationService.ListByUser(c.Request().Context(), claims.UserID)
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, reservations)
}
