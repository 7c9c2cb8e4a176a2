package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/driverapp/ride-booking/internal/api/metrics"
	"github.com/driverapp/ride-booking/internal/core/domain"
	"github.com/driverapp/ride-booking/internal/core/ports"
	"github.com/driverapp/ride-booking/internal/pkg/token"
)

// AuthService implements registration and login.
type AuthService struct {
	repo      ports.AuthRepository
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(repo ports.AuthRepository, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL, logger: logger}
}

// Register resolves the requested role, hashes the password, and inserts one
// user row. An unresolvable role is reported as domain.ErrInvalidRole.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	role, err := s.resolveRole(ctx, input.Role)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username: input.Username,
		Email:    input.Email,
		Password: string(hash),
		RoleID:   role.ID,
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	user.Role = role

	metrics.UsersRegisteredTotal.WithLabelValues(role.RoleName).Inc()
	s.logger.Info().Uint("user_id", user.ID).Str("role", role.RoleName).Msg("user registered")

	return user, nil
}

// Login verifies the email/password pair and returns a signed bearer token
// carrying the user's id and role name.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.repo.FindUserByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", domain.ErrInvalidCredentials
	}

	roleName := ""
	if user.Role != nil {
		roleName = user.Role.RoleName
	}

	signed, err := token.Sign(s.jwtSecret, user.ID, roleName, s.tokenTTL)
	if err != nil {
		return "", err
	}

	s.logger.Info().Uint("user_id", user.ID).Str("role", roleName).Msg("user logged in")
	return signed, nil
}

func (s *AuthService) resolveRole(ctx context.Context, ref ports.RoleRef) (*domain.UserRole, error) {
	if ref.ByName() {
		return s.repo.FindRoleByName(ctx, ref.Name)
	}
	if ref.ID == 0 {
		return nil, domain.ErrInvalidRole
	}
	return s.repo.FindRoleByID(ctx, ref.ID)
}
