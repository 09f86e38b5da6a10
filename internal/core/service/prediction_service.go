package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/mlserve/sentiment-api/internal/api/metrics"
	"github.com/mlserve/sentiment-api/internal/core/domain"
	"github.com/mlserve/sentiment-api/internal/core/ports"
)

// PredictionService normalizes input text and delegates to the inference
// collaborator, consulting the optional cache first.
type PredictionService struct {
	predictor ports.Predictor
	cache     ports.PredictionCache // may be nil
	log       zerolog.Logger
}

func NewPredictionService(predictor ports.Predictor, cache ports.PredictionCache, log zerolog.Logger) *PredictionService {
	return &PredictionService{predictor: predictor, cache: cache, log: log}
}

func (s *PredictionService) Predict(ctx context.Context, text string) (*domain.Prediction, error) {
	cleaned := strings.Join(strings.Fields(text), " ")
	if cleaned == "" {
		return nil, domain.ErrEmptyText
	}

	if s.cache != nil {
		if pred, ok := s.cache.Get(ctx, cleaned); ok {
			metrics.PredictionCacheTotal.WithLabelValues("hit").Inc()
			return pred, nil
		}
		metrics.PredictionCacheTotal.WithLabelValues("miss").Inc()
	}

	start := time.Now()
	pred, err := s.predictor.Predict(ctx, cleaned)
	if err != nil {
		metrics.PredictionsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	metrics.PredictionsTotal.WithLabelValues(pred.Label).Inc()
	metrics.PredictionDuration.WithLabelValues(pred.Label).Observe(time.Since(start).Seconds())

	if s.cache != nil {
		s.cache.Set(ctx, pred)
	}
	return pred, nil
}

func (s *PredictionService) ModelInfo(ctx context.Context) (*domain.ModelInfo, error) {
	return s.predictor.ModelInfo(ctx)
}

func (s *PredictionService) Loaded(ctx context.Context) bool {
	return s.predictor.Loaded(ctx)
}
