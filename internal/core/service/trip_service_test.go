package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/driverapp/ride-booking/internal/core/domain"
	"github.com/driverapp/ride-booking/internal/core/ports"
)

type stubTripRepo struct {
	trips  map[uint]*domain.Trip
	orders []*domain.OrderTrip
	nextID uint
}

func newStubTripRepo() *stubTripRepo {
	return &stubTripRepo{trips: make(map[uint]*domain.Trip), nextID: 1}
}

func (r *stubTripRepo) Create(_ context.Context, trip *domain.Trip) error {
	trip.ID = r.nextID
	r.nextID++
	clone := *trip
	r.trips[trip.ID] = &clone
	return nil
}

func (r *stubTripRepo) FindByID(_ context.Context, id uint) (*domain.Trip, error) {
	t, ok := r.trips[id]
	if !ok {
		return nil, domain.ErrTripNotFound
	}
	clone := *t
	return &clone, nil
}

func (r *stubTripRepo) ListByUser(_ context.Context, userID uint) ([]domain.Trip, error) {
	out := []domain.Trip{}
	for id := uint(1); id < r.nextID; id++ {
		if t, ok := r.trips[id]; ok && t.UserID == userID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *stubTripRepo) ListByStatus(_ context.Context, status domain.TripStatus) ([]domain.Trip, error) {
	out := []domain.Trip{}
	for id := uint(1); id < r.nextID; id++ {
		if t, ok := r.trips[id]; ok && t.Status == status {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *stubTripRepo) Accept(_ context.Context, tripID, driverID uint) (*domain.OrderTrip, error) {
	t, ok := r.trips[tripID]
	if !ok {
		return nil, domain.ErrTripNotFound
	}
	if t.Status != domain.TripStatusPending {
		return nil, domain.ErrTripUnavailable
	}
	t.Status = domain.TripStatusCompleted
	order := &domain.OrderTrip{
		ID:       uint(len(r.orders) + 1),
		TripID:   tripID,
		DriverID: driverID,
		Status:   domain.OrderStatusAccepted,
	}
	r.orders = append(r.orders, order)
	return order, nil
}

func TestTripService_CreateTrip(t *testing.T) {
	repo := newStubTripRepo()
	svc := NewTripService(repo, zerolog.Nop())

	trip, err := svc.CreateTrip(context.Background(), ports.CreateTripInput{
		StartLocation: "A",
		EndLocation:   "B",
		UserID:        5,
	})
	if err != nil {
		t.Fatalf("CreateTrip returned error: %v", err)
	}
	if trip.UserID != 5 {
		t.Fatalf("expected owner 5, got %d", trip.UserID)
	}
	if trip.Status != domain.TripStatusPending {
		t.Fatalf("expected pending status, got %s", trip.Status)
	}
	if trip.ID == 0 {
		t.Fatalf("expected assigned id")
	}
}

func TestTripService_ListMyTrips(t *testing.T) {
	repo := newStubTripRepo()
	svc := NewTripService(repo, zerolog.Nop())

	_, _ = svc.CreateTrip(context.Background(), ports.CreateTripInput{StartLocation: "A", EndLocation: "B", UserID: 1})
	_, _ = svc.CreateTrip(context.Background(), ports.CreateTripInput{StartLocation: "C", EndLocation: "D", UserID: 2})

	mine, err := svc.ListMyTrips(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListMyTrips returned error: %v", err)
	}
	if len(mine) != 1 || mine[0].UserID != 1 {
		t.Fatalf("unexpected trips: %+v", mine)
	}

	other, err := svc.ListMyTrips(context.Background(), 99)
	if err != nil {
		t.Fatalf("ListMyTrips returned error: %v", err)
	}
	if len(other) != 0 {
		t.Fatalf("expected empty list, got %+v", other)
	}
}

func TestTripService_AcceptTrip(t *testing.T) {
	repo := newStubTripRepo()
	svc := NewTripService(repo, zerolog.Nop())

	trip, _ := svc.CreateTrip(context.Background(), ports.CreateTripInput{StartLocation: "A", EndLocation: "B", UserID: 1})

	order, err := svc.AcceptTrip(context.Background(), trip.ID, 2)
	if err != nil {
		t.Fatalf("AcceptTrip returned error: %v", err)
	}
	if order.DriverID != 2 || order.TripID != trip.ID {
		t.Fatalf("unexpected order: %+v", order)
	}
	if order.Status != domain.OrderStatusAccepted {
		t.Fatalf("expected accepted order status, got %s", order.Status)
	}

	stored, _ := repo.FindByID(context.Background(), trip.ID)
	if stored.Status != domain.TripStatusCompleted {
		t.Fatalf("expected trip completed, got %s", stored.Status)
	}

	// Pending trips no longer include the accepted one.
	available, _ := svc.ListAvailableTrips(context.Background())
	if len(available) != 0 {
		t.Fatalf("expected no available trips, got %+v", available)
	}
}

func TestTripService_AcceptTrip_NotFound(t *testing.T) {
	repo := newStubTripRepo()
	svc := NewTripService(repo, zerolog.Nop())

	if _, err := svc.AcceptTrip(context.Background(), 42, 2); err != domain.ErrTripNotFound {
		t.Fatalf("expected ErrTripNotFound, got %v", err)
	}
	if len(repo.orders) != 0 {
		t.Fatalf("expected no orders, got %d", len(repo.orders))
	}
}

func TestTripService_AcceptTrip_AlreadyTaken(t *testing.T) {
	repo := newStubTripRepo()
	svc := NewTripService(repo, zerolog.Nop())

	trip, _ := svc.CreateTrip(context.Background(), ports.CreateTripInput{StartLocation: "A", EndLocation: "B", UserID: 1})
	if _, err := svc.AcceptTrip(context.Background(), trip.ID, 2); err != nil {
		t.Fatalf("first accept failed: %v", err)
	}

	if _, err := svc.AcceptTrip(context.Background(), trip.ID, 3); err != domain.ErrTripUnavailable {
		t.Fatalf("expected ErrTripUnavailable, got %v", err)
	}
	if len(repo.orders) != 1 {
		t.Fatalf("expected exactly one order, got %d", len(repo.orders))
	}
}
