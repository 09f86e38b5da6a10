package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mlserve/sentiment-api/internal/core/domain"
	"github.com/mlserve/sentiment-api/internal/core/ports"
)

type predictRequest struct {
	Text string `json:"text" validate:"required,min=1,max=512"`
}

type predictResponse struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
	Text  string  `json:"text"`
}

// PredictHandler handles HTTP requests for model inference.
type PredictHandler struct {
	predictions ports.PredictionService
}

func NewPredictHandler(predictions ports.PredictionService) *PredictHandler {
	return &PredictHandler{predictions: predictions}
}

// Predict runs sentiment analysis on the input text.
//
// @Summary      Predict sentiment
// @Tags         model
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      predictRequest  true  "Text to analyze (1-512 characters)"
// @Success      200   {object}  predictResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /predict [post]
func (h *PredictHandler) Predict(c echo.Context) error {
	var req predictRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	pred, err := h.predictions.Predict(c.Request().Context(), req.Text)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyText) {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "prediction failed"})
	}

	return c.JSON(http.StatusOK, predictResponse{
		Label: pred.Label,
		Score: pred.Score,
		Text:  pred.Text,
	})
}

// ModelInfo describes the model behind the service.
//
// @Summary      Get model information
// @Tags         model
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.ModelInfo
// @Failure      401  {object}  errorResponse
// @Router       /model/info [get]
func (h *PredictHandler) ModelInfo(c echo.Context) error {
	info, err := h.predictions.ModelInfo(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, info)
}
