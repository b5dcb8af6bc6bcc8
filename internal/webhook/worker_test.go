package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shenikar/disaster_response_predictor/internal/config"
	"github.com/shenikar/disaster_response_predictor/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorker(url, secret string) *AlertWorker {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		WebhookURL:        url,
		WebhookSecret:     secret,
		WebhookTimeout:    time.Second,
		WebhookMaxRetries: 3,
		WebhookBaseDelay:  time.Millisecond,
	}
	return NewAlertWorker(nil, logger, cfg)
}

func testPayload(t *testing.T) (AlertEvent, string) {
	event := AlertEvent{
		RequestID:                  "req-1",
		ModelName:                  "disaster_response_model",
		PredictedResponseTimeHours: 4.5,
		SeverityTier:               models.SeverityCritical,
		Event:                      models.DisasterEvent{Country: "Nepal", DisasterType: "earthquake"},
		Timestamp:                  time.Date(2015, 4, 25, 6, 11, 0, 0, time.UTC),
	}
	raw, err := json.Marshal(event)
	require.NoError(t, err)
	return event, string(raw)
}

func TestDeliver_SignsPayload(t *testing.T) {
	event, raw := testPayload(t)

	var gotBody, gotSignature string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		gotSignature = r.Header.Get(SignatureHeader)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	w := newTestWorker(srv.URL, "s3cret")
	require.NoError(t, w.deliver(context.Background(), event, raw))

	assert.Equal(t, raw, gotBody)
	assert.Equal(t, generateHMACSHA256(raw, "s3cret"), gotSignature)
}

func TestDeliver_RetriesUntilSuccess(t *testing.T) {
	event, raw := testPayload(t)

	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	w := newTestWorker(srv.URL, "")
	require.NoError(t, w.deliver(context.Background(), event, raw))
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestDeliver_GivesUpAfterMaxRetries(t *testing.T) {
	event, raw := testPayload(t)

	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	w := newTestWorker(srv.URL, "")
	err := w.deliver(context.Background(), event, raw)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "after 3 attempts")
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestDeliver_NoURLSkips(t *testing.T) {
	event, raw := testPayload(t)
	w := newTestWorker("", "")
	assert.NoError(t, w.deliver(context.Background(), event, raw))
}

func TestGenerateHMACSHA256_Known(t *testing.T) {
	// HMAC-SHA256("key", "The quick brown fox jumps over the lazy dog")
	assert.Equal(t,
		"f7bc83f430538424b13298e6aa6fb143ef4d59a14946175997479dbc2d1a3cd8",
		generateHMACSHA256("The quick brown fox jumps over the lazy dog", "key"),
	)
}

func TestStart_DeliversQueuedAlerts(t *testing.T) {
	mr, client := newTestRedis(t)
	event, raw := testPayload(t)

	type delivery struct{ body, signature string }
	received := make(chan delivery, 4)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		received <- delivery{body: string(body), signature: r.Header.Get(SignatureHeader)}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	w := newTestWorker(srv.URL, "s3cret")
	w.redisClient = client

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	// Битое сообщение пропускается, следующее доставляется
	_, err := mr.Lpush(alertQueueKey, "not json")
	require.NoError(t, err)
	require.NoError(t, NewRedisAlertPublisher(client).Publish(ctx, event))

	w.Start(ctx)

	select {
	case d := <-received:
		assert.Equal(t, raw, d.body)
		assert.Equal(t, generateHMACSHA256(raw, "s3cret"), d.signature)
	case <-time.After(5 * time.Second):
		t.Fatal("alert was not delivered")
	}

	assert.Eventually(t, func() bool {
		items, err := mr.List(alertQueueKey)
		return err != nil || len(items) == 0
	}, 2*time.Second, 10*time.Millisecond)
	assert.Empty(t, received)
}

func TestStart_StopsOnContextCancel(t *testing.T) {
	_, client := newTestRedis(t)

	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	w := newTestWorker(srv.URL, "")
	w.redisClient = client

	ctx, cancel := context.WithCancel(context.Background())
	w.Start(ctx)
	cancel()

	// После отмены контекста новые события не доставляются
	event, _ := testPayload(t)
	require.NoError(t, NewRedisAlertPublisher(client).Publish(context.Background(), event))
	time.Sleep(100 * time.Millisecond)

	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
}
