package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/mlserve/sentiment-api/internal/core/domain"
)

const defaultCacheTTL = time.Hour

// PredictionCache stores recent predictions in Redis.
// Key format: predict:<sha256(text)>
//
// The cache is best-effort: any Redis failure is logged and treated as a
// miss so inference still happens.
type PredictionCache struct {
	client *redis.Client
	ttl    time.Duration
	log    zerolog.Logger
}

// NewPredictionCache creates a PredictionCache wrapping the given Redis client.
func NewPredictionCache(client *redis.Client, ttl time.Duration, log zerolog.Logger) *PredictionCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &PredictionCache{client: client, ttl: ttl, log: log}
}

// Get returns the cached prediction for text, if any.
func (p *PredictionCache) Get(ctx context.Context, text string) (*domain.Prediction, bool) {
	raw, err := p.client.Get(ctx, p.key(text)).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		p.log.Warn().Err(err).Msg("prediction cache read failed")
		return nil, false
	}

	var pred domain.Prediction
	if err := json.Unmarshal(raw, &pred); err != nil {
		p.log.Warn().Err(err).Msg("prediction cache entry corrupt")
		return nil, false
	}
	return &pred, true
}

// Set records a prediction under its input text (expires after the TTL).
func (p *PredictionCache) Set(ctx context.Context, pred *domain.Prediction) {
	raw, err := json.Marshal(pred)
	if err != nil {
		return
	}
	if err := p.client.Set(ctx, p.key(pred.Text), raw, p.ttl).Err(); err != nil {
		p.log.Warn().Err(err).Msg("prediction cache write failed")
	}
}

func (p *PredictionCache) key(text string) string {
	sum := sha256.Sum256([]byte(text))
	return "predict:" + hex.EncodeToString(sum[:])
}
