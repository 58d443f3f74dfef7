package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/learnobots/job-portal-api/docs"
	"github.com/learnobots/job-portal-api/internal/api/handler"
	"github.com/learnobots/job-portal-api/internal/api/middleware"
	"github.com/learnobots/job-portal-api/internal/core/service"
	"github.com/learnobots/job-portal-api/internal/infrastructure/config"
	mongodb "github.com/learnobots/job-portal-api/internal/infrastructure/db/mongo"
	redisdb "github.com/learnobots/job-portal-api/internal/infrastructure/db/redis"
	"github.com/learnobots/job-portal-api/internal/pkg/token"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, audit service.AuditSink, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("jobportal"))

	// --- Dependencies ---
	codec, err := token.NewCodec(cfg.JWT.Secret, cfg.JWT.Algorithm, cfg.JWT.AccessTTL(), cfg.JWT.RefreshTTL())
	if err != nil {
		return nil, err
	}

	userRepo := mongodb.NewUserRepository(db)
	throttle := redisdb.NewLoginThrottle(rdb, cfg.Throttle.MaxFailures, cfg.Throttle.LockoutWindow())

	authService := service.NewAuthService(userRepo, codec, throttle, audit, log)
	sessionService := service.NewSessionService(userRepo, codec, log)
	userService := service.NewUserService(userRepo, audit, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)

	authenticated := middleware.Authenticate(sessionService)

	// --- Auth routes ---
	e.POST("/auth/token", authHandler.Login)

	// --- User routes ---
	e.POST("/users", userHandler.Register)
	e.GET("/users/me", userHandler.Me, authenticated, middleware.RequireActive())
	e.GET("/users", userHandler.List, authenticated, middleware.RequireRole(middleware.HRTier...))
	e.GET("/users/:id", userHandler.Get, authenticated, middleware.RequireRole(middleware.HRTier...))

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e, nil
}
