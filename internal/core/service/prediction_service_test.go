package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/mlserve/sentiment-api/internal/core/domain"
)

type stubPredictor struct {
	predictFn func(ctx context.Context, text string) (*domain.Prediction, error)
	calls     int
}

func (s *stubPredictor) Predict(ctx context.Context, text string) (*domain.Prediction, error) {
	s.calls++
	return s.predictFn(ctx, text)
}

func (s *stubPredictor) ModelInfo(context.Context) (*domain.ModelInfo, error) {
	return &domain.ModelInfo{ModelName: "stub", Loaded: true}, nil
}

func (s *stubPredictor) Loaded(context.Context) bool { return true }

type stubCache struct {
	entries map[string]*domain.Prediction
}

func (s *stubCache) Get(_ context.Context, text string) (*domain.Prediction, bool) {
	p, ok := s.entries[text]
	return p, ok
}

func (s *stubCache) Set(_ context.Context, pred *domain.Prediction) {
	s.entries[pred.Text] = pred
}

func TestPredictionService_NormalizesWhitespace(t *testing.T) {
	predictor := &stubPredictor{
		predictFn: func(_ context.Context, text string) (*domain.Prediction, error) {
			if text != "I love this product!" {
				t.Fatalf("expected normalized text, got %q", text)
			}
			return &domain.Prediction{Label: "POSITIVE", Score: 0.9987, Text: text}, nil
		},
	}
	svc := NewPredictionService(predictor, nil, zerolog.Nop())

	pred, err := svc.Predict(context.Background(), "  I   love\tthis  product! ")
	if err != nil {
		t.Fatalf("Predict returned error: %v", err)
	}
	if pred.Label != "POSITIVE" {
		t.Fatalf("unexpected label %q", pred.Label)
	}
}

func TestPredictionService_EmptyAfterCleaning(t *testing.T) {
	predictor := &stubPredictor{
		predictFn: func(context.Context, string) (*domain.Prediction, error) {
			t.Fatalf("predictor should not be called")
			return nil, nil
		},
	}
	svc := NewPredictionService(predictor, nil, zerolog.Nop())

	if _, err := svc.Predict(context.Background(), "   \t  "); err != domain.ErrEmptyText {
		t.Fatalf("expected ErrEmptyText, got %v", err)
	}
}

func TestPredictionService_CacheHitSkipsInference(t *testing.T) {
	predictor := &stubPredictor{
		predictFn: func(_ context.Context, text string) (*domain.Prediction, error) {
			return &domain.Prediction{Label: "NEGATIVE", Score: 0.8, Text: text}, nil
		},
	}
	cache := &stubCache{entries: make(map[string]*domain.Prediction)}
	svc := NewPredictionService(predictor, cache, zerolog.Nop())

	if _, err := svc.Predict(context.Background(), "this is terrible"); err != nil {
		t.Fatalf("first predict: %v", err)
	}
	if _, err := svc.Predict(context.Background(), "this is terrible"); err != nil {
		t.Fatalf("second predict: %v", err)
	}
	if predictor.calls != 1 {
		t.Fatalf("expected one inference call, got %d", predictor.calls)
	}
}

func TestPredictionService_PropagatesBackendError(t *testing.T) {
	backendErr := errors.New("inference server: status 503")
	predictor := &stubPredictor{
		predictFn: func(context.Context, string) (*domain.Prediction, error) {
			return nil, backendErr
		},
	}
	svc := NewPredictionService(predictor, nil, zerolog.Nop())

	if _, err := svc.Predict(context.Background(), "anything"); !errors.Is(err, backendErr) {
		t.Fatalf("expected backend error, got %v", err)
	}
}
