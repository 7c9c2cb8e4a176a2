package domain

import (
	"errors"
	"time"
)

// Role names seeded at startup. Their row ids (1 = user, 2 = driver) are
// assigned by insertion order and accepted interchangeably on registration.
const (
	RoleUser   = "user"
	RoleDriver = "driver"
)

var (
	ErrInvalidRole        = errors.New("invalid role")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// UserRole is one of the two fixed roles a user can hold.
type UserRole struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	RoleName string `json:"role_name" gorm:"uniqueIndex;not null"`
}

func (UserRole) TableName() string { return "userroles" }

// User models a registered account, rider or driver alike.
// The password column stores a bcrypt hash and is never serialized.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"`
	RoleID    uint      `json:"role_id" gorm:"not null"`
	Role      *UserRole `json:"role,omitempty" gorm:"foreignKey:RoleID"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string { return "users" }
