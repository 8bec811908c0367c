package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/corphunt/corphunt-api/internal/api/handler"
	"github.com/corphunt/corphunt-api/internal/api/middleware"
	"github.com/corphunt/corphunt-api/internal/core/domain"
	"github.com/corphunt/corphunt-api/internal/core/ports"
	"github.com/corphunt/corphunt-api/internal/core/service"
	"github.com/corphunt/corphunt-api/internal/infrastructure/config"
	mongodb "github.com/corphunt/corphunt-api/internal/infrastructure/db/mongo"
	redisdb "github.com/corphunt/corphunt-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, mailer ports.Mailer, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("corphunt"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	pendingStore := redisdb.NewRegistrationStore(rdb)

	registrationService := service.NewRegistrationService(userRepo, pendingStore, mailer, service.RegistrationConfig{
		OTPTTL:         cfg.OTPTTL,
		MinPasswordLen: cfg.MinPasswordLen,
	}, log)
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL, service.OperatorCredentials{
		Email:        cfg.Admin.Email,
		PasswordHash: cfg.Admin.PasswordHash,
	}, log)
	adminService := service.NewAdminService(userRepo, log)

	authHandler := handler.NewAuthHandler(registrationService, authService)
	adminHandler := handler.NewAdminHandler(adminService, log)

	// --- Auth routes ---
	auth := e.Group("/auth")
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/verify-otp", authHandler.VerifyOTP)
	auth.POST("/resend-otp", authHandler.ResendOTP)
	auth.POST("/login", authHandler.Login)

	// --- Admin routes (privileged token required) ---
	admin := e.Group("/admin", middleware.Auth(cfg.JWTSecret), middleware.RBAC(domain.RoleAdmin))
	admin.GET("/users", adminHandler.ListUsers)
	admin.POST("/users", adminHandler.CreateUser)
	admin.PUT("/users/:id", adminHandler.UpdateUser)
	admin.DELETE("/users/:id", adminHandler.DeleteUser)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
