package webhook

//go:generate mockgen -source=publisher.go -destination=mocks/publisher_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/disaster_response_predictor/internal/models"
)

const (
	alertQueueKey = "critical_alerts"
)

// AlertEvent - данные вебхука о предсказании уровня CRITICAL
type AlertEvent struct {
	RequestID                  string               `json:"request_id,omitempty"`
	ModelName                  string               `json:"model"`
	PredictedResponseTimeHours float64              `json:"predicted_response_time_hours"`
	SeverityTier               models.SeverityTier  `json:"severity_tier"`
	Event                      models.DisasterEvent `json:"event"`
	Timestamp                  time.Time            `json:"timestamp"`
}

// AlertPublisher - интерфейс для публикации алертов
type AlertPublisher interface {
	Publish(ctx context.Context, event AlertEvent) error
}

// RedisAlertPublisher - реализация AlertPublisher, использующая Redis
type RedisAlertPublisher struct {
	redisClient *redis.Client
}

// NewRedisAlertPublisher создает новый RedisAlertPublisher
func NewRedisAlertPublisher(client *redis.Client) *RedisAlertPublisher {
	return &RedisAlertPublisher{
		redisClient: client,
	}
}

// Publish публикует алерт в очередь Redis
func (p *RedisAlertPublisher) Publish(ctx context.Context, event AlertEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal alert event: %w", err)
	}

	// LPUSH в левую часть списка, воркер забирает справа через BRPOP
	if err := p.redisClient.LPush(ctx, alertQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish alert event to Redis: %w", err)
	}
	return nil
}
