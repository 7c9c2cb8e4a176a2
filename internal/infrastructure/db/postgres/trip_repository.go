package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/driverapp/ride-booking/internal/core/domain"
)

// TripRepository is the GORM-backed implementation of ports.TripRepository.
type TripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) *TripRepository {
	return &TripRepository{db: db}
}

func (r *TripRepository) Create(ctx context.Context, trip *domain.Trip) error {
	if err := r.db.WithContext(ctx).Create(trip).Error; err != nil {
		return fmt.Errorf("insert trip: %w", err)
	}
	return nil
}

func (r *TripRepository) FindByID(ctx context.Context, id uint) (*domain.Trip, error) {
	var trip domain.Trip
	if err := r.db.WithContext(ctx).First(&trip, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTripNotFound
		}
		return nil, fmt.Errorf("find trip: %w", err)
	}
	return &trip, nil
}

func (r *TripRepository) ListByUser(ctx context.Context, userID uint) ([]domain.Trip, error) {
	trips := []domain.Trip{}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id asc").
		Find(&trips).Error
	if err != nil {
		return nil, fmt.Errorf("list trips by user: %w", err)
	}
	return trips, nil
}

func (r *TripRepository) ListByStatus(ctx context.Context, status domain.TripStatus) ([]domain.Trip, error) {
	trips := []domain.Trip{}
	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("id asc").
		Find(&trips).Error
	if err != nil {
		return nil, fmt.Errorf("list trips by status: %w", err)
	}
	return trips, nil
}

// Accept flips the trip from pending to completed and inserts the acceptance
// order in one transaction. The status flip carries an optimistic
// "still pending" guard, so a concurrent acceptance of the same trip commits
// exactly one order: the loser sees domain.ErrTripUnavailable.
func (r *TripRepository) Accept(ctx context.Context, tripID, driverID uint) (*domain.OrderTrip, error) {
	var order *domain.OrderTrip

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&domain.Trip{}).
			Where("id = ? AND status = ?", tripID, domain.TripStatusPending).
			Update("status", domain.TripStatusCompleted)
		if res.Error != nil {
			return fmt.Errorf("complete trip: %w", res.Error)
		}

		if res.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&domain.Trip{}).Where("id = ?", tripID).Count(&count).Error; err != nil {
				return fmt.Errorf("check trip: %w", err)
			}
			if count == 0 {
				return domain.ErrTripNotFound
			}
			return domain.ErrTripUnavailable
		}

		order = &domain.OrderTrip{
			TripID:   tripID,
			DriverID: driverID,
			Status:   domain.OrderStatusAccepted,
		}
		if err := tx.Create(order).Error; err != nil {
			return fmt.Errorf("insert order: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}
