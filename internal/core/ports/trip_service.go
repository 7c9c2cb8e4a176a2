package ports

import (
	"context"

	"github.com/driverapp/ride-booking/internal/core/domain"
)

// CreateTripInput carries the data needed to create a trip. UserID always
// comes from the authenticated identity, never from the request body.
type CreateTripInput struct {
	StartLocation string
	EndLocation   string
	UserID        uint
}

// TripService defines use-case operations for trips.
type TripService interface {
	CreateTrip(ctx context.Context, input CreateTripInput) (*domain.Trip, error)
	// ListMyTrips returns the caller's own trips.
	ListMyTrips(ctx context.Context, userID uint) ([]domain.Trip, error)
	// ListAvailableTrips returns every pending trip, regardless of creator.
	ListAvailableTrips(ctx context.Context) ([]domain.Trip, error)
	// AcceptTrip records driverID's acceptance of the trip and completes it.
	AcceptTrip(ctx context.Context, tripID, driverID uint) (*domain.OrderTrip, error)
}
