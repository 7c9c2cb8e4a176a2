package handler

import "github.com/driverapp/ride-booking/internal/core/domain"

type createTripRequest struct {
	StartLocation string `json:"start_location" validate:"required"`
	EndLocation   string `json:"end_location"   validate:"required"`
}

type createTripResponse struct {
	Message string       `json:"message"`
	Trip    *domain.Trip `json:"trip"`
}

type acceptTripRequest struct {
	TripID uint `json:"tripId" validate:"required"`
}

type acceptTripResponse struct {
	Message   string            `json:"message"`
	OrderTrip *domain.OrderTrip `json:"orderTrip"`
}
