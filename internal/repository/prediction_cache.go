package repository

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/disaster_response_predictor/internal/models"
	"github.com/shenikar/disaster_response_predictor/internal/service"
)

const predictionKeyPrefix = "prediction"

// PredictionCache хранит округленные предсказания в Redis.
// Модель детерминирована, поэтому одинаковый вход всегда дает одинаковый результат.
type PredictionCache struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewPredictionCache(redisClient *redis.Client, ttl time.Duration) service.PredictionCache {
	return &PredictionCache{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

// Get пытается получить предсказание из Redis. found=false при промахе
func (r *PredictionCache) Get(ctx context.Context, modelName string, event models.DisasterEvent) (float64, bool, error) {
	key, err := PredictionKey(modelName, event)
	if err != nil {
		return 0, false, err
	}

	val, err := r.redisClient.Get(ctx, key).Float64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("failed to get prediction from cache: %w", err)
	}
	return val, true, nil
}

// Set сохраняет предсказание в Redis со сроком жизни ttl
func (r *PredictionCache) Set(ctx context.Context, modelName string, event models.DisasterEvent, hours float64) error {
	key, err := PredictionKey(modelName, event)
	if err != nil {
		return err
	}

	if err := r.redisClient.Set(ctx, key, hours, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set prediction in cache: %w", err)
	}
	return nil
}

// PredictionKey строит ключ кеша: prediction:<model>:<sha256 канонического JSON события>
func PredictionKey(modelName string, event models.DisasterEvent) (string, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return "", fmt.Errorf("failed to marshal event for cache key: %w", err)
	}
	sum := sha256.Sum256(payload)
	return fmt.Sprintf("%s:%s:%s", predictionKeyPrefix, modelName, hex.EncodeToString(sum[:])), nil
}
