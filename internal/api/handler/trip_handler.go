package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/driverapp/ride-booking/internal/core/ports"
)

// TripHandler handles HTTP requests for trip operations.
type TripHandler struct {
	service ports.TripService
}

func NewTripHandler(service ports.TripService) *TripHandler {
	return &TripHandler{service: service}
}

// Create handles POST /api/trips: a rider requests a new trip.
//
// @Summary      Create a new trip
// @Tags         trips
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createTripRequest  true  "Trip locations"
// @Success      200   {object}  createTripResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/trips [post]
func (h *TripHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createTripRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	trip, err := h.service.CreateTrip(c.Request().Context(), ports.CreateTripInput{
		StartLocation: req.StartLocation,
		EndLocation:   req.EndLocation,
		UserID:        userID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, createTripResponse{
		Message: "Trip created successfully",
		Trip:    trip,
	})
}

// ListMine handles GET /api/trips: the caller's own trips.
//
// @Summary      Get the caller's trips
// @Tags         trips
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Trip
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/trips [get]
func (h *TripHandler) ListMine(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	trips, err := h.service.ListMyTrips(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, trips)
}

// ListAvailable handles GET /api/available-trips: every pending trip,
// regardless of who created it.
//
// @Summary      Get trips available for acceptance
// @Tags         trips
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Trip
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/available-trips [get]
func (h *TripHandler) ListAvailable(c echo.Context) error {
	if _, err := ctxUserID(c); err != nil {
		return err
	}

	trips, err := h.service.ListAvailableTrips(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, trips)
}

// Accept handles POST /api/accept-trip: the caller takes a pending trip.
//
// @Summary      Accept a trip
// @Tags         trips
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      acceptTripRequest  true  "Trip to accept"
// @Success      200   {object}  acceptTripResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/accept-trip [post]
func (h *TripHandler) Accept(c echo.Context) error {
	driverID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req acceptTripRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	order, err := h.service.AcceptTrip(c.Request().Context(), req.TripID, driverID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, acceptTripResponse{
		Message:   "Trip accepted successfully",
		OrderTrip: order,
	})
}
