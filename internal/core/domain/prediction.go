package domain

import "errors"

// ErrEmptyText is returned when the input collapses to nothing after
// whitespace normalization.
var ErrEmptyText = errors.New("text cannot be empty after cleaning")

// Prediction is the outcome of a single sentiment inference call.
type Prediction struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
	Text  string  `json:"text"`
}

// ModelInfo describes the model served by the inference backend.
type ModelInfo struct {
	ModelName string `json:"model_name"`
	Backend   string `json:"backend"`
	Loaded    bool   `json:"loaded"`
}
