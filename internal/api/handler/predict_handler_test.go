package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/mlserve/sentiment-api/internal/core/domain"
)

type stubPredictionService struct {
	predictFn func(ctx context.Context, text string) (*domain.Prediction, error)
}

func (s *stubPredictionService) Predict(ctx context.Context, text string) (*domain.Prediction, error) {
	return s.predictFn(ctx, text)
}

func (s *stubPredictionService) ModelInfo(context.Context) (*domain.ModelInfo, error) {
	return &domain.ModelInfo{
		ModelName: "distilbert-base-uncased-finetuned-sst-2-english",
		Backend:   "http://localhost:8501",
		Loaded:    true,
	}, nil
}

func (s *stubPredictionService) Loaded(context.Context) bool { return true }

func TestPredictHandler_Success(t *testing.T) {
	predictions := &stubPredictionService{
		predictFn: func(_ context.Context, text string) (*domain.Prediction, error) {
			return &domain.Prediction{Label: "POSITIVE", Score: 0.9987, Text: text}, nil
		},
	}
	handler := NewPredictHandler(predictions)

	c, rec := newTestContext(t, http.MethodPost, "/predict", `{"text":"I love this product!"}`)
	if err := handler.Predict(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["label"] != "POSITIVE" || resp["score"] != 0.9987 {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestPredictHandler_MissingText(t *testing.T) {
	predictions := &stubPredictionService{
		predictFn: func(context.Context, string) (*domain.Prediction, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	handler := NewPredictHandler(predictions)

	c, rec := newTestContext(t, http.MethodPost, "/predict", `{}`)
	if err := handler.Predict(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestPredictHandler_TextTooLong(t *testing.T) {
	predictions := &stubPredictionService{
		predictFn: func(context.Context, string) (*domain.Prediction, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	handler := NewPredictHandler(predictions)

	long := strings.Repeat("a", 513)
	c, rec := newTestContext(t, http.MethodPost, "/predict", `{"text":"`+long+`"}`)
	if err := handler.Predict(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestPredictHandler_WhitespaceOnlyText(t *testing.T) {
	predictions := &stubPredictionService{
		predictFn: func(context.Context, string) (*domain.Prediction, error) {
			return nil, domain.ErrEmptyText
		},
	}
	handler := NewPredictHandler(predictions)

	c, rec := newTestContext(t, http.MethodPost, "/predict", `{"text":"    "}`)
	if err := handler.Predict(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestPredictHandler_BackendFailure(t *testing.T) {
	predictions := &stubPredictionService{
		predictFn: func(context.Context, string) (*domain.Prediction, error) {
			return nil, context.DeadlineExceeded
		},
	}
	handler := NewPredictHandler(predictions)

	c, rec := newTestContext(t, http.MethodPost, "/predict", `{"text":"hello"}`)
	if err := handler.Predict(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestPredictHandler_ModelInfo(t *testing.T) {
	handler := NewPredictHandler(&stubPredictionService{})

	c, rec := newTestContext(t, http.MethodGet, "/model/info", "")
	if err := handler.ModelInfo(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["model_name"] != "distilbert-base-uncased-finetuned-sst-2-english" || resp["loaded"] != true {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}
