package domain

import (
	"errors"
	"time"
)

// TripStatus represents the lifecycle state of a trip. There is no
// intermediate "accepted" state: acceptance completes the trip directly.
type TripStatus string

const (
	TripStatusPending   TripStatus = "pending"
	TripStatusCompleted TripStatus = "completed"
)

// OrderStatusAccepted is the only status an order ever carries. The column
// exists for a future lifecycle that the product has not defined yet.
const OrderStatusAccepted = "accepted"

var (
	ErrTripNotFound = errors.New("trip not found")
	// ErrTripUnavailable is returned when a trip is no longer pending at
	// acceptance time, i.e. another driver won the race.
	ErrTripUnavailable = errors.New("trip no longer available")
)

// Trip is a ride request created by a rider.
type Trip struct {
	ID            uint       `json:"id" gorm:"primaryKey"`
	StartLocation string     `json:"start_location" gorm:"not null"`
	EndLocation   string     `json:"end_location" gorm:"not null"`
	UserID        uint       `json:"user_id" gorm:"not null;index"`
	User          *User      `json:"-" gorm:"foreignKey:UserID"`
	Status        TripStatus `json:"status" gorm:"not null;default:pending;index"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (Trip) TableName() string { return "trips" }

// OrderTrip records a driver's acceptance of a trip. Rows are written once
// and never updated.
type OrderTrip struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	TripID    uint      `json:"trip_id" gorm:"not null;index"`
	Trip      *Trip     `json:"-" gorm:"foreignKey:TripID"`
	DriverID  uint      `json:"driver_id" gorm:"not null"`
	Driver    *User     `json:"-" gorm:"foreignKey:DriverID"`
	Status    string    `json:"status" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (OrderTrip) TableName() string { return "ordertrips" }
