package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "disaster_predictor"

// Metrics - коллекторы Prometheus для HTTP-слоя и инференса
type Metrics struct {
	HTTPRequests *prometheus.CounterVec   // метки: method, route, status
	HTTPDuration *prometheus.HistogramVec // метки: method, route

	InferenceDuration prometheus.Histogram
	InferenceErrors   prometheus.Counter
	BatchSize         prometheus.Histogram
	Predictions       *prometheus.CounterVec // метки: tier
	Cache             *prometheus.CounterVec // метки: result={hit,miss,error}
	AlertsPublished   *prometheus.CounterVec // метки: outcome={success,error}
	ModelLoaded       prometheus.Gauge
}

func newMetrics() *Metrics {
	return &Metrics{
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		InferenceDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "inference_duration_seconds",
			Help:      "Duration of a single model call (one frame).",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}),
		InferenceErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "inference_errors_total",
			Help:      "Total failed model calls.",
		}),
		BatchSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "batch_size",
			Help:      "Number of records per batch prediction request.",
			Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
		}),
		Predictions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "predictions_total",
			Help:      "Predictions returned, by severity tier.",
		}, []string{"tier"}),
		Cache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "prediction_cache_total",
			Help:      "Prediction cache lookups by result.",
		}, []string{"result"}),
		AlertsPublished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "critical_alerts_total",
			Help:      "Critical alerts enqueued for webhook delivery, by outcome.",
		}, []string{"outcome"}),
		ModelLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "model_loaded",
			Help:      "1 once the model artifact is loaded.",
		}),
	}
}

// NewMetrics создает метрики и регистрирует их в реестре Prometheus по умолчанию
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.HTTPRequests,
		m.HTTPDuration,
		m.InferenceDuration,
		m.InferenceErrors,
		m.BatchSize,
		m.Predictions,
		m.Cache,
		m.AlertsPublished,
		m.ModelLoaded,
	)
	return m
}

// NewMetricsForTesting создает незарегистрированные метрики,
// чтобы повторные вызовы из тестов не паниковали с "already registered"
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}
