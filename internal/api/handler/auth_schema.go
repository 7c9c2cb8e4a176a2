package handler

import (
	"encoding/json"
	"errors"

	"github.com/driverapp/ride-booking/internal/core/domain"
	"github.com/driverapp/ride-booking/internal/core/ports"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// roleField accepts the two wire forms of the role: a name ("user"/"driver")
// or a numeric id (1/2). It decodes into the RoleRef tagged union so the
// service never has to re-guess the type.
type roleField struct {
	ref ports.RoleRef
	set bool
}

func (r *roleField) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		r.ref = ports.RoleRef{Name: name}
		r.set = true
		return nil
	}

	var id uint
	if err := json.Unmarshal(data, &id); err == nil {
		r.ref = ports.RoleRef{ID: id}
		r.set = true
		return nil
	}

	return errors.New("role must be a string or an integer")
}

type registerRequest struct {
	Username string    `json:"username" validate:"required"`
	Email    string    `json:"email"    validate:"required,email"`
	Password string    `json:"password" validate:"required"`
	Role     roleField `json:"role"     validate:"required" swaggertype:"string"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type registerResponse struct {
	Message string       `json:"message"`
	User    *domain.User `json:"user"`
}

type loginResponse struct {
	Token string `json:"token"`
}
