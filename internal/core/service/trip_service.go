package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/driverapp/ride-booking/internal/api/metrics"
	"github.com/driverapp/ride-booking/internal/core/domain"
	"github.com/driverapp/ride-booking/internal/core/ports"
)

// TripService implements the trip use cases: create, list, accept.
type TripService struct {
	repo   ports.TripRepository
	logger zerolog.Logger
}

func NewTripService(repo ports.TripRepository, logger zerolog.Logger) *TripService {
	return &TripService{repo: repo, logger: logger}
}

// CreateTrip inserts a pending trip owned by the authenticated user.
func (s *TripService) CreateTrip(ctx context.Context, input ports.CreateTripInput) (*domain.Trip, error) {
	trip := &domain.Trip{
		StartLocation: input.StartLocation,
		EndLocation:   input.EndLocation,
		UserID:        input.UserID,
		Status:        domain.TripStatusPending,
	}
	if err := s.repo.Create(ctx, trip); err != nil {
		s.logger.Error().Err(err).Uint("user_id", input.UserID).Msg("failed to create trip")
		return nil, err
	}

	metrics.TripsCreatedTotal.Inc()
	s.logger.Info().Uint("trip_id", trip.ID).Uint("user_id", trip.UserID).Msg("trip created")
	return trip, nil
}

func (s *TripService) ListMyTrips(ctx context.Context, userID uint) ([]domain.Trip, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *TripService) ListAvailableTrips(ctx context.Context) ([]domain.Trip, error) {
	return s.repo.ListByStatus(ctx, domain.TripStatusPending)
}

// AcceptTrip completes the trip and records the driver's acceptance order.
// Both writes happen in one transaction; losing the race to another driver
// surfaces as domain.ErrTripUnavailable.
func (s *TripService) AcceptTrip(ctx context.Context, tripID, driverID uint) (*domain.OrderTrip, error) {
	order, err := s.repo.Accept(ctx, tripID, driverID)
	if err != nil {
		if errors.Is(err, domain.ErrTripUnavailable) {
			metrics.TripAcceptConflictsTotal.Inc()
			s.logger.Warn().Uint("trip_id", tripID).Uint("driver_id", driverID).Msg("trip already taken")
		}
		return nil, err
	}

	metrics.TripsAcceptedTotal.Inc()
	s.logger.Info().Uint("trip_id", tripID).Uint("driver_id", driverID).Msg("trip accepted")
	return order, nil
}
