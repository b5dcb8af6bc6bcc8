package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shenikar/disaster_response_predictor/internal/config"
	"github.com/shenikar/disaster_response_predictor/internal/observability"
	"github.com/sirupsen/logrus"
)

// RegisterRoutes регистрирует маршруты предсказаний и health-check
func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	// Маршрут Health-check
	r.GET("/", h.healthCheck)

	// Маршруты предсказаний
	r.POST("/predict", h.predict)
	r.POST("/predict/batch", h.predictBatch)
}

// NewRouter собирает gin.Engine с middleware и всеми маршрутами сервиса
func NewRouter(h *Handler, cfg *config.Config, metrics *observability.Metrics, log *logrus.Logger) *gin.Engine {
	router := gin.New()
	router.Use(
		RequestIDMiddleware(),
		RequestLoggerMiddleware(log),
		MetricsMiddleware(metrics),
		RecoveryMiddleware(log),
		CORSMiddleware(cfg),
	)

	h.RegisterRoutes(router)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}
