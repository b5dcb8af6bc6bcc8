package service

//go:generate mockgen -source=prediction.go -destination=mocks/prediction_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/disaster_response_predictor/internal/apperrors"
	"github.com/shenikar/disaster_response_predictor/internal/frame"
	"github.com/shenikar/disaster_response_predictor/internal/models"
	"github.com/shenikar/disaster_response_predictor/internal/observability"
	"github.com/shenikar/disaster_response_predictor/internal/webhook"
	"github.com/sirupsen/logrus"
)

// cacheTimeout ограничивает обращения к кешу: медленный Redis не должен задерживать предсказание
const cacheTimeout = 250 * time.Millisecond

// Predictor определяет контракт загруженной модели: одна строка фрейма - одно значение
type Predictor interface {
	Predict(ctx context.Context, f *frame.Frame) ([]float64, error)
	Name() string
}

// PredictionCache определяет контракт кеша округленных предсказаний
type PredictionCache interface {
	Get(ctx context.Context, modelName string, event models.DisasterEvent) (float64, bool, error)
	Set(ctx context.Context, modelName string, event models.DisasterEvent, hours float64) error
}

// PredictionService определяет контракт для бизнес-логики предсказаний
type PredictionService interface {
	Predict(ctx context.Context, event models.DisasterEvent) (models.Prediction, error)
	PredictBatch(ctx context.Context, events []models.DisasterEvent) ([]models.Prediction, error)
}

type predictionService struct {
	predictor Predictor
	cache     PredictionCache
	alerts    webhook.AlertPublisher
	metrics   *observability.Metrics
	clock     clockwork.Clock
	logger    *logrus.Logger
}

// NewPredictionService создает сервис. cache и alerts могут быть nil - тогда кеш и алерты отключены
func NewPredictionService(
	predictor Predictor,
	cache PredictionCache,
	alerts webhook.AlertPublisher,
	metrics *observability.Metrics,
	clock clockwork.Clock,
	logger *logrus.Logger,
) PredictionService {
	return &predictionService{
		predictor: predictor,
		cache:     cache,
		alerts:    alerts,
		metrics:   metrics,
		clock:     clock,
		logger:    logger,
	}
}

// Predict предсказывает время реагирования для одного события и вычисляет уровень серьезности
func (s *predictionService) Predict(ctx context.Context, event models.DisasterEvent) (models.Prediction, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":       "prediction",
		"method":        "Predict",
		"request_id":    observability.RequestIDFrom(ctx),
		"country":       event.Country,
		"disaster_type": event.DisasterType,
	})

	prediction, cached := s.fromCache(ctx, log, event)
	if !cached {
		raw, err := s.infer(ctx, frame.FromEvents([]models.DisasterEvent{event}))
		if err != nil {
			log.WithError(err).Error("Model inference failed")
			return models.Prediction{}, fmt.Errorf("service: could not predict: %w", err)
		}
		prediction = models.NewPrediction(raw[0])
		s.toCache(ctx, log, event, prediction)
	}

	s.metrics.Predictions.WithLabelValues(string(prediction.Tier)).Inc()
	if prediction.Tier == models.SeverityCritical {
		s.publishAlert(ctx, log, event, prediction)
	}

	log.WithFields(logrus.Fields{
		"prediction": prediction.ResponseTimeHours,
		"tier":       prediction.Tier,
		"cached":     cached,
	}).Info("Prediction completed")
	return prediction, nil
}

// PredictBatch выполняет один вызов модели для всех событий. Порядок результатов совпадает с порядком входа
func (s *predictionService) PredictBatch(ctx context.Context, events []models.DisasterEvent) ([]models.Prediction, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":    "prediction",
		"method":     "PredictBatch",
		"request_id": observability.RequestIDFrom(ctx),
		"count":      len(events),
	})

	s.metrics.BatchSize.Observe(float64(len(events)))
	if len(events) == 0 {
		log.Info("Empty batch, skipping model call")
		return []models.Prediction{}, nil
	}

	raw, err := s.infer(ctx, frame.FromEvents(events))
	if err != nil {
		log.WithError(err).Error("Batch model inference failed")
		return nil, fmt.Errorf("service: could not predict batch: %w", err)
	}

	predictions := make([]models.Prediction, len(raw))
	for i, v := range raw {
		predictions[i] = models.NewPrediction(v)
		s.metrics.Predictions.WithLabelValues(string(predictions[i].Tier)).Inc()
	}

	log.Info("Batch prediction completed")
	return predictions, nil
}

// infer вызывает модель и проверяет, что на каждую строку вернулось ровно одно значение
func (s *predictionService) infer(ctx context.Context, f *frame.Frame) ([]float64, error) {
	start := s.clock.Now()
	out, err := s.predictor.Predict(ctx, f)
	s.metrics.InferenceDuration.Observe(s.clock.Since(start).Seconds())

	if err == nil && len(out) != f.Len() {
		err = fmt.Errorf("model returned %d values for %d rows", len(out), f.Len())
	}
	if err != nil {
		s.metrics.InferenceErrors.Inc()
		return nil, &apperrors.InferenceError{Op: "predict", Err: err}
	}
	return out, nil
}

func (s *predictionService) fromCache(ctx context.Context, log *logrus.Entry, event models.DisasterEvent) (models.Prediction, bool) {
	if s.cache == nil {
		return models.Prediction{}, false
	}

	cacheCtx, cancel := context.WithTimeout(ctx, cacheTimeout)
	defer cancel()

	hours, found, err := s.cache.Get(cacheCtx, s.predictor.Name(), event)
	switch {
	case err != nil:
		log.WithError(err).Warn("Prediction cache lookup failed")
		s.metrics.Cache.WithLabelValues("error").Inc()
		return models.Prediction{}, false
	case !found:
		s.metrics.Cache.WithLabelValues("miss").Inc()
		return models.Prediction{}, false
	}

	s.metrics.Cache.WithLabelValues("hit").Inc()
	return models.NewPrediction(hours), true
}

func (s *predictionService) toCache(ctx context.Context, log *logrus.Entry, event models.DisasterEvent, p models.Prediction) {
	if s.cache == nil {
		return
	}
	cacheCtx, cancel := context.WithTimeout(ctx, cacheTimeout)
	defer cancel()

	if err := s.cache.Set(cacheCtx, s.predictor.Name(), event, p.ResponseTimeHours); err != nil {
		log.WithError(err).Warn("Failed to store prediction in cache")
	}
}

func (s *predictionService) publishAlert(ctx context.Context, log *logrus.Entry, event models.DisasterEvent, p models.Prediction) {
	if s.alerts == nil {
		return
	}

	alert := webhook.AlertEvent{
		RequestID:                  observability.RequestIDFrom(ctx),
		ModelName:                  s.predictor.Name(),
		PredictedResponseTimeHours: p.ResponseTimeHours,
		SeverityTier:               p.Tier,
		Event:                      event,
		Timestamp:                  s.clock.Now().UTC(),
	}
	if err := s.alerts.Publish(ctx, alert); err != nil {
		log.WithError(err).Warn("Failed to publish critical alert")
		s.metrics.AlertsPublished.WithLabelValues("error").Inc()
		return
	}
	s.metrics.AlertsPublished.WithLabelValues("success").Inc()
}
