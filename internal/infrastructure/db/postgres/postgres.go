package postgres

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/driverapp/ride-booking/internal/core/domain"
)

const defaultTimeout = 10 * time.Second

// Connect opens a Postgres-backed GORM handle and verifies connectivity with
// a ping. TranslateError is enabled so driver errors surface as GORM
// sentinels (unique violations become gorm.ErrDuplicatedKey).
func Connect(ctx context.Context, dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("postgres open: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("postgres handle: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if err := sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}

	return db, nil
}

// Migrate syncs the four tables against the connection target.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&domain.UserRole{},
		&domain.User{},
		&domain.Trip{},
		&domain.OrderTrip{},
	); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// SeedRoles ensures the two baseline roles exist, in insertion order so the
// "user" row takes id 1 and "driver" id 2 on a fresh database. Idempotent:
// existing rows are left untouched. Runs before the listener starts.
func SeedRoles(ctx context.Context, db *gorm.DB) error {
	for _, name := range []string{domain.RoleUser, domain.RoleDriver} {
		role := domain.UserRole{RoleName: name}
		if err := db.WithContext(ctx).
			Where("role_name = ?", name).
			FirstOrCreate(&role).Error; err != nil {
			return fmt.Errorf("seed role %q: %w", name, err)
		}
	}
	return nil
}
