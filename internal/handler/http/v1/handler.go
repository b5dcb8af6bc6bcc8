package v1

import (
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/disaster_response_predictor/internal/apperrors"
	"github.com/shenikar/disaster_response_predictor/internal/config"
	"github.com/shenikar/disaster_response_predictor/internal/service"
	"github.com/sirupsen/logrus"
)

// HealthStatus - фиксированный статус health-check
const HealthStatus = "online"

type Handler struct {
	predictionService service.PredictionService
	logger            *logrus.Logger
	validate          *validator.Validate
	cfg               *config.Config
}

func NewHandler(predictionService service.PredictionService, logger *logrus.Logger, cfg *config.Config) *Handler {
	validate := validator.New()
	// В ошибках используем имена полей из JSON
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	return &Handler{
		predictionService: predictionService,
		logger:            logger,
		validate:          validate,
		cfg:               cfg,
	}
}

// @Summary Predict response time for a disaster event
// @Description Predicts response time in hours, rounded to 2 decimals, and derives the severity tier.
// @Tags Prediction
// @Accept json
// @Produce json
// @Param event body DisasterEventRequest true "Disaster event"
// @Success 200 {object} PredictResponse
// @Failure 422 {object} ErrorResponse "Validation error"
// @Failure 500 {object} ErrorResponse "Prediction failed"
// @Router /predict [post]
func (h *Handler) predict(c *gin.Context) {
	var input DisasterEventRequest
	log := h.logger.WithFields(logrus.Fields{
		"method":     "predict",
		"request_id": c.GetString(requestIDKey),
	})

	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, log, bindError(err))
		return
	}

	if err := h.validate.Struct(input); err != nil {
		respondError(c, log, structError(err, -1))
		return
	}

	prediction, err := h.predictionService.Predict(c.Request.Context(), DTOToDisasterEvent(input))
	if err != nil {
		respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, PredictResponse{
		Success:                    true,
		PredictedResponseTimeHours: prediction.ResponseTimeHours,
		SeverityTier:               string(prediction.Tier),
		InputReceived:              input,
	})
}

// @Summary Predict response times for a batch of disaster events
// @Description One model call for the whole batch. Predictions keep the input order. A single invalid record rejects the whole batch.
// @Tags Prediction
// @Accept json
// @Produce json
// @Param events body []DisasterEventRequest true "Disaster events"
// @Param include_tiers query bool false "Include severity tier per prediction" default(false)
// @Success 200 {object} BatchPredictResponse
// @Failure 422 {object} ErrorResponse "Validation error"
// @Failure 500 {object} ErrorResponse "Prediction failed"
// @Router /predict/batch [post]
func (h *Handler) predictBatch(c *gin.Context) {
	var input []DisasterEventRequest
	log := h.logger.WithFields(logrus.Fields{
		"method":     "predictBatch",
		"request_id": c.GetString(requestIDKey),
	})

	includeTiers, err := strconv.ParseBool(c.DefaultQuery("include_tiers", "false"))
	if err != nil {
		respondError(c, log, apperrors.NewValidationError("value is not a valid boolean", "query", "include_tiers"))
		return
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		respondError(c, log, bindError(err))
		return
	}

	// Литерал null декодируется в nil-слайс, а не в пустой список
	if input == nil {
		respondError(c, log, apperrors.NewValidationError("value is not a valid list", locBody))
		return
	}

	if len(input) > h.cfg.MaxBatchSize {
		respondError(c, log, apperrors.NewValidationError(
			fmt.Sprintf("batch exceeds maximum size of %d records", h.cfg.MaxBatchSize), locBody))
		return
	}

	for i := range input {
		if err := h.validate.Struct(input[i]); err != nil {
			respondError(c, log, structError(err, i))
			return
		}
	}

	predictions, err := h.predictionService.PredictBatch(c.Request.Context(), DTOsToDisasterEvents(input))
	if err != nil {
		respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, PredictionsToBatchResponse(predictions, includeTiers))
}

// @Summary Get application health status
// @Description Reports liveness and the configured model name. Never calls the model.
// @Tags System
// @Produce json
// @Success 200 {object} HealthResponse
// @Router / [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: HealthStatus, Model: h.cfg.ModelName})
}
