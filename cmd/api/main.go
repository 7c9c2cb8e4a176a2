package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/driverapp/ride-booking/internal/api"
	"github.com/driverapp/ride-booking/internal/infrastructure/config"
	"github.com/driverapp/ride-booking/internal/infrastructure/db/postgres"
	"github.com/driverapp/ride-booking/pkg/logger"
)

// @title           Ride Booking API
// @version         1.0
// @description     Minimal ride-booking backend: riders create trips, drivers accept them.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	jwtSecret := cfg.JWTSecret
	if jwtSecret == "" {
		jwtSecret = "secret"
		log.Warn().Msg("JWT_SECRET not set, using insecure development default")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := postgres.Connect(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}

	if err := postgres.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("database migration failed")
	}

	// Roles must exist before the first registration comes in.
	if err := postgres.SeedRoles(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("role seeding failed")
	}

	e := api.NewRouter(db, jwtSecret, cfg.JWTTTL)

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
