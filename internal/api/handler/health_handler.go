package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mlserve/sentiment-api/internal/core/ports"
)

// HealthHandler handles the public info and health endpoints.
type HealthHandler struct {
	predictions ports.PredictionService
	version     string
	// Optional dependencies; nil when the memory backend or no cache is used.
	mongo *mongo.Database
	redis *redis.Client
}

func NewHealthHandler(predictions ports.PredictionService, version string, db *mongo.Database, rdb *redis.Client) *HealthHandler {
	return &HealthHandler{predictions: predictions, version: version, mongo: db, redis: rdb}
}

type rootResponse struct {
	Name           string `json:"name"`
	Version        string `json:"version"`
	Health         string `json:"health"`
	Authentication string `json:"authentication"`
}

type healthResponse struct {
	Status      string `json:"status"`
	ModelLoaded bool   `json:"model_loaded"`
	Version     string `json:"version"`
}

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
}

// Root returns basic API information.
func (h *HealthHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, rootResponse{
		Name:           "Sentiment Serving API",
		Version:        h.version,
		Health:         "/health",
		Authentication: "JWT bearer token required for protected endpoints",
	})
}

// Health reports liveness plus whether the model backend is reachable.
// The process stays up even when the model is not loaded.
func (h *HealthHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, healthResponse{
		Status:      "healthy",
		ModelLoaded: h.predictions.Loaded(c.Request().Context()),
		Version:     h.version,
	})
}

// Readiness probes the configured external dependencies.
func (h *HealthHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
	defer cancel()

	deps := make(map[string]dependencyStatus)
	healthy := true

	if h.mongo != nil {
		if err := h.mongo.Client().Ping(ctx, nil); err != nil {
			deps["mongodb"] = dependencyStatus{Status: "unhealthy", Error: err.Error()}
			healthy = false
		} else {
			deps["mongodb"] = dependencyStatus{Status: "ok"}
		}
	}

	if h.redis != nil {
		if _, err := h.redis.Ping(ctx).Result(); err != nil {
			deps["redis"] = dependencyStatus{Status: "unhealthy", Error: err.Error()}
			healthy = false
		} else {
			deps["redis"] = dependencyStatus{Status: "ok"}
		}
	}

	if h.predictions.Loaded(ctx) {
		deps["model"] = dependencyStatus{Status: "ok"}
	} else {
		deps["model"] = dependencyStatus{Status: "unhealthy", Error: "inference backend unreachable"}
		healthy = false
	}

	status := "ok"
	httpStatus := http.StatusOK
	if !healthy {
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}

	return c.JSON(httpStatus, readinessResponse{Status: status, Dependencies: deps})
}
