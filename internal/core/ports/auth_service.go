package ports

import (
	"context"

	"github.com/driverapp/ride-booking/internal/core/domain"
)

// RoleRef identifies a role either by name or by numeric id; the register
// endpoint accepts both forms in one field. Exactly one side is set.
type RoleRef struct {
	Name string
	ID   uint
}

// ByName reports whether the reference carries a role name.
func (r RoleRef) ByName() bool { return r.Name != "" }

// RegisterInput carries the data needed to create an account.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Role     RoleRef
}

// AuthService implements registration and login use cases.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login returns a signed bearer token on success.
	Login(ctx context.Context, email, password string) (string, error)
}
