package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	echoswagger "github.com/swaggo/echo-swagger"
	"gorm.io/gorm"

	_ "github.com/driverapp/ride-booking/docs"
	"github.com/driverapp/ride-booking/internal/api/handler"
	"github.com/driverapp/ride-booking/internal/api/middleware"
	"github.com/driverapp/ride-booking/internal/core/service"
	"github.com/driverapp/ride-booking/internal/infrastructure/db/postgres"
	"github.com/driverapp/ride-booking/internal/infrastructure/http/handlers"
	"github.com/driverapp/ride-booking/pkg/logger"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *gorm.DB, jwtSecret string, tokenTTL time.Duration) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(logger.Get())

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())

	// Each router carries its own HTTP-metrics registry so that building a
	// second instance in the same process does not collide on registration.
	promRegistry := prometheus.NewRegistry()
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "ridebooking",
		Registerer: promRegistry,
	}))

	// --- Dependencies ---
	authRepo := postgres.NewAuthRepository(db)
	tripRepo := postgres.NewTripRepository(db)
	authService := service.NewAuthService(authRepo, jwtSecret, tokenTTL, logger.Get())
	tripService := service.NewTripService(tripRepo, logger.Get())
	authHandler := handler.NewAuthHandler(authService)
	tripHandler := handler.NewTripHandler(tripService)
	authMiddleware := middleware.Auth(jwtSecret)

	// --- Public routes ---
	e.POST("/api/register", authHandler.Register)
	e.POST("/api/login", authHandler.Login)

	// --- Authenticated routes ---
	e.POST("/api/trips", tripHandler.Create, authMiddleware)
	e.GET("/api/trips", tripHandler.ListMine, authMiddleware)
	e.GET("/api/available-trips", tripHandler.ListAvailable, authMiddleware)
	e.POST("/api/accept-trip", tripHandler.Accept, authMiddleware)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: prometheus.Gatherers{promRegistry, prometheus.DefaultGatherer},
	}))
	e.GET("/api-docs/*", echoswagger.WrapHandler)

	return e
}
