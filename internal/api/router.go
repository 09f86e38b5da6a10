package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mlserve/sentiment-api/internal/api/handler"
	"github.com/mlserve/sentiment-api/internal/api/middleware"
	"github.com/mlserve/sentiment-api/internal/core/domain"
	"github.com/mlserve/sentiment-api/internal/core/ports"
	"github.com/mlserve/sentiment-api/internal/core/service"
	"github.com/mlserve/sentiment-api/internal/infrastructure/config"
)

// Dependencies carries the externally owned collaborators into the router.
// Mongo and Redis are nil unless the corresponding backend is configured;
// they are only used for readiness probes here.
type Dependencies struct {
	Users     ports.UserRepository
	Predictor ports.Predictor
	Cache     ports.PredictionCache
	Mongo     *mongo.Database
	Redis     *redis.Client
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, log zerolog.Logger, deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowOrigins,
	}))
	e.Use(echoprometheus.NewMiddleware("sentiment"))
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Services ---
	codec := service.NewTokenCodec(cfg.JWTSecret, time.Duration(cfg.TokenTTLMinutes)*time.Minute)
	authService := service.NewAuthService(deps.Users, codec)
	userService := service.NewUserService(deps.Users)
	predictionService := service.NewPredictionService(deps.Predictor, deps.Cache, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService, userService)
	userHandler := handler.NewUserHandler(userService)
	predictHandler := handler.NewPredictHandler(predictionService)
	healthHandler := handler.NewHealthHandler(predictionService, cfg.AppVersion, deps.Mongo, deps.Redis)

	authed := middleware.Auth(authService)
	adminOnly := middleware.RBAC(authService, domain.RoleAdmin)
	userOrAdmin := middleware.RBAC(authService, domain.RoleAdmin, domain.RoleUser)

	// --- Public routes ---
	e.GET("/", healthHandler.Root)
	e.GET("/health", healthHandler.Health)
	e.GET("/health/ready", healthHandler.Readiness)
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Authenticated routes ---
	e.GET("/users/me", userHandler.Me, authed)
	e.PUT("/users/me/password", userHandler.ChangePassword, authed)
	e.GET("/model/info", predictHandler.ModelInfo, authed)
	e.POST("/predict", predictHandler.Predict, authed, userOrAdmin)

	// --- Admin routes ---
	e.GET("/admin/users", userHandler.List, authed, adminOnly)
	e.POST("/admin/users", userHandler.Create, authed, adminOnly)
	e.DELETE("/admin/users/:id", userHandler.Delete, authed, adminOnly)

	return e
}
