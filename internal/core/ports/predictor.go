package ports

import (
	"context"

	"github.com/mlserve/sentiment-api/internal/core/domain"
)

// Predictor is the inference collaborator. Calls may be slow or blocking;
// that latency belongs to the backend, not to this service.
type Predictor interface {
	Predict(ctx context.Context, text string) (*domain.Prediction, error)
	ModelInfo(ctx context.Context) (*domain.ModelInfo, error)
	Loaded(ctx context.Context) bool
}

// PredictionCache stores recent predictions keyed by their input text.
// Implementations are best-effort: a miss or a failed write never fails
// the request.
type PredictionCache interface {
	Get(ctx context.Context, text string) (*domain.Prediction, bool)
	Set(ctx context.Context, prediction *domain.Prediction)
}

type PredictionService interface {
	Predict(ctx context.Context, text string) (*domain.Prediction, error)
	ModelInfo(ctx context.Context) (*domain.ModelInfo, error)
	Loaded(ctx context.Context) bool
}
