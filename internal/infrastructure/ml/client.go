// Package ml holds the HTTP client for the external inference server that
// hosts the pretrained sentiment model. This service only proxies to it;
// model selection and training live entirely on the other side.
package ml

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/mlserve/sentiment-api/internal/core/domain"
)

const defaultTimeout = 30 * time.Second

// Config captures the settings for reaching the inference server.
type Config struct {
	BaseURL   string
	ModelName string
	Timeout   time.Duration
}

// Client calls the inference server over HTTP.
type Client struct {
	cfg        Config
	httpClient *http.Client
	log        zerolog.Logger
}

func NewClient(cfg Config, log zerolog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

type predictRequest struct {
	Model string `json:"model"`
	Text  string `json:"text"`
}

type predictResponse struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Predict sends text to the inference server and normalizes the result:
// the label is uppercased and the score rounded to four decimals.
func (c *Client) Predict(ctx context.Context, text string) (*domain.Prediction, error) {
	body, err := json.Marshal(predictRequest{Model: c.cfg.ModelName, Text: text})
	if err != nil {
		return nil, fmt.Errorf("encode predict request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/predict", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build predict request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("inference request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Error().Int("status", resp.StatusCode).Str("model", c.cfg.ModelName).Msg("inference server error")
		return nil, fmt.Errorf("inference server: status %d", resp.StatusCode)
	}

	var out predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode predict response: %w", err)
	}

	return &domain.Prediction{
		Label: strings.ToUpper(out.Label),
		Score: math.Round(out.Score*10000) / 10000,
		Text:  text,
	}, nil
}

// ModelInfo reports the configured model and whether the backend is
// currently reachable.
func (c *Client) ModelInfo(ctx context.Context) (*domain.ModelInfo, error) {
	return &domain.ModelInfo{
		ModelName: c.cfg.ModelName,
		Backend:   c.cfg.BaseURL,
		Loaded:    c.Loaded(ctx),
	}, nil
}

// Loaded probes the inference server's health endpoint. The service keeps
// running when the backend is down; /health surfaces the state instead.
func (c *Client) Loaded(ctx context.Context) bool {
	probeCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(probeCtx, http.MethodGet, c.cfg.BaseURL+"/health", nil)
	if err != nil {
		return false
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}
