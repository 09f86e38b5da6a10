package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	mongodriver "go.mongodb.org/mongo-driver/mongo"

	"github.com/mlserve/sentiment-api/internal/api"
	"github.com/mlserve/sentiment-api/internal/core/domain"
	"github.com/mlserve/sentiment-api/internal/core/ports"
	"github.com/mlserve/sentiment-api/internal/core/service"
	"github.com/mlserve/sentiment-api/internal/infrastructure/config"
	"github.com/mlserve/sentiment-api/internal/infrastructure/db/memory"
	mongorepo "github.com/mlserve/sentiment-api/internal/infrastructure/db/mongo"
	redisinfra "github.com/mlserve/sentiment-api/internal/infrastructure/db/redis"
	"github.com/mlserve/sentiment-api/internal/infrastructure/ml"
	"github.com/mlserve/sentiment-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	ctx := context.Background()
	deps := api.Dependencies{}

	// --- Credential store ---
	var mongoClient *mongodriver.Client
	switch cfg.StoreBackend {
	case "mongo":
		client, db, err := mongorepo.Connect(ctx, mongorepo.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("mongo connection failed")
		}
		mongoClient = client
		deps.Mongo = db
		deps.Users = mongorepo.NewUserRepository(db)
		log.Info().Str("database", cfg.Mongo.Database).Msg("using mongo credential store")
	default:
		store := memory.NewUserRepository()
		if err := seedUsers(ctx, store); err != nil {
			log.Fatal().Err(err).Msg("seeding default users failed")
		}
		deps.Users = store
		log.Info().Msg("using in-memory credential store (default users: admin, testuser)")
	}

	// --- Prediction cache ---
	var redisClient *redis.Client
	if cfg.Redis.CacheEnabled {
		redisClient, err = redisinfra.Connect(ctx, redisinfra.Config{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		deps.Redis = redisClient
		deps.Cache = redisinfra.NewPredictionCache(redisClient, time.Hour, log)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("prediction cache enabled")
	}

	// --- Inference client ---
	mlClient := ml.NewClient(ml.Config{
		BaseURL:   cfg.Model.BaseURL,
		ModelName: cfg.Model.Name,
	}, log)
	deps.Predictor = mlClient

	if mlClient.Loaded(ctx) {
		log.Info().Str("model", cfg.Model.Name).Msg("model backend reachable")
	} else {
		// Mirror of the lazy-load behavior: keep serving, /health reports it.
		log.Warn().Str("url", cfg.Model.BaseURL).Msg("model backend unreachable at startup")
	}

	e := api.NewRouter(cfg, log, deps)

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	waitForShutdown(e, mongoClient, redisClient, log)
}

// seedUsers creates the default accounts the in-memory store ships with.
func seedUsers(ctx context.Context, repo ports.UserRepository) error {
	defaults := []struct {
		username, email, fullName, password string
		role                                domain.Role
	}{
		{"admin", "admin@example.com", "Admin User", "Admin123!", domain.RoleAdmin},
		{"testuser", "user@example.com", "Test User", "User123!", domain.RoleUser},
	}

	for _, d := range defaults {
		hash, err := service.HashPassword(d.password)
		if err != nil {
			return err
		}
		_, err = repo.Create(ctx, &domain.User{
			Username:     d.username,
			Email:        d.email,
			FullName:     d.fullName,
			Role:         d.role,
			Active:       true,
			PasswordHash: hash,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func waitForShutdown(e *echo.Echo, mongoClient *mongodriver.Client, redisClient *redis.Client, log zerolog.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
	if mongoClient != nil {
		_ = mongoClient.Disconnect(ctx)
	}
	if redisClient != nil {
		_ = redisClient.Close()
	}
}
