package ports

import (
	"context"

	"github.com/driverapp/ride-booking/internal/core/domain"
)

// AuthRepository defines persistence operations for users and roles.
type AuthRepository interface {
	// FindRoleByName returns domain.ErrInvalidRole when no such role exists.
	FindRoleByName(ctx context.Context, name string) (*domain.UserRole, error)
	// FindRoleByID returns domain.ErrInvalidRole when no such role exists.
	FindRoleByID(ctx context.Context, id uint) (*domain.UserRole, error)
	// CreateUser inserts one user row. A unique-email violation is reported
	// as domain.ErrEmailTaken.
	CreateUser(ctx context.Context, user *domain.User) error
	// FindUserByEmail eagerly loads the user's role. Returns
	// domain.ErrUserNotFound when no row matches.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
}
