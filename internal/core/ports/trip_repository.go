package ports

import (
	"context"

	"github.com/driverapp/ride-booking/internal/core/domain"
)

// TripRepository defines persistence operations for trips and acceptance
// orders.
type TripRepository interface {
	Create(ctx context.Context, trip *domain.Trip) error
	// FindByID returns domain.ErrTripNotFound when no row matches.
	FindByID(ctx context.Context, id uint) (*domain.Trip, error)
	// ListByUser returns the trips created by userID, oldest first.
	ListByUser(ctx context.Context, userID uint) ([]domain.Trip, error)
	// ListByStatus returns all trips in the given status, oldest first.
	ListByStatus(ctx context.Context, status domain.TripStatus) ([]domain.Trip, error)
	// Accept atomically flips the trip from pending to completed and inserts
	// the acceptance order; both writes commit or neither does. Returns
	// domain.ErrTripNotFound when the trip does not exist and
	// domain.ErrTripUnavailable when it is no longer pending.
	Accept(ctx context.Context, tripID, driverID uint) (*domain.OrderTrip, error)
}
