package webhook

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRedisAlertPublisher_PushesJSONToQueue(t *testing.T) {
	mr, client := newTestRedis(t)
	publisher := NewRedisAlertPublisher(client)

	first, _ := testPayload(t)
	second := first
	second.RequestID = "req-2"

	require.NoError(t, publisher.Publish(context.Background(), first))
	require.NoError(t, publisher.Publish(context.Background(), second))

	// LPUSH кладет новые события слева, воркер забирает старые справа
	items, err := mr.List(alertQueueKey)
	require.NoError(t, err)
	require.Len(t, items, 2)

	var got AlertEvent
	require.NoError(t, json.Unmarshal([]byte(items[1]), &got))
	assert.Equal(t, first, got)
	require.NoError(t, json.Unmarshal([]byte(items[0]), &got))
	assert.Equal(t, "req-2", got.RequestID)
}

func TestRedisAlertPublisher_RedisError(t *testing.T) {
	mr, client := newTestRedis(t)
	mr.SetError("LOADING Redis is loading the dataset in memory")

	event, _ := testPayload(t)
	err := NewRedisAlertPublisher(client).Publish(context.Background(), event)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to publish alert event to Redis")
}
