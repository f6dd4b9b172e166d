package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-telegram/bot"
	"github.com/shenikar/crash_alert_system/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPayload = models.AlertPayload{
	IncidentID:   "X1",
	VictimUserID: "U1",
	Title:        "Crash detected",
	Body:         "A possible crash was reported",
	Sticky:       true,
}

func TestHTTPGateway_SendSignsBody(t *testing.T) {
	var got pushRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Equal(t, generateHMACSHA256(body, "secret"), r.Header.Get(signatureHeader))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.Unmarshal(body, &got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	gw := NewHTTPGateway(srv.URL, "secret", time.Second)

	err := gw.Send(context.Background(), "push-token-1", testPayload)

	require.NoError(t, err)
	assert.Equal(t, "push-token-1", got.Address)
	assert.Equal(t, testPayload, got.Alert)
}

func TestHTTPGateway_StatusClassification(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		permanent bool
	}{
		{name: "bad token", status: http.StatusGone, permanent: true},
		{name: "bad request", status: http.StatusBadRequest, permanent: true},
		{name: "throttled", status: http.StatusTooManyRequests, permanent: false},
		{name: "server error", status: http.StatusBadGateway, permanent: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			err := NewHTTPGateway(srv.URL, "", time.Second).Send(context.Background(), "tok", testPayload)

			require.Error(t, err)
			assert.Equal(t, tt.permanent, isPermanent(err))
		})
	}
}

func TestHTTPGateway_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	err := NewHTTPGateway(url, "", time.Second).Send(context.Background(), "tok", testPayload)

	require.Error(t, err)
	assert.False(t, isPermanent(err))
}

type recordingSender struct {
	calls atomic.Int32
	last  string
}

func (s *recordingSender) Send(_ context.Context, address string, _ models.AlertPayload) error {
	s.calls.Add(1)
	s.last = address
	return nil
}

func TestRouter_RoutesByScheme(t *testing.T) {
	fallback := &recordingSender{}
	tg := &recordingSender{}
	router := NewRouter(fallback)
	router.Handle(TelegramScheme, tg)

	require.NoError(t, router.Send(context.Background(), "tg:42", testPayload))
	require.NoError(t, router.Send(context.Background(), "fcm-token", testPayload))

	assert.EqualValues(t, 1, tg.calls.Load())
	assert.Equal(t, "tg:42", tg.last)
	assert.EqualValues(t, 1, fallback.calls.Load())
	assert.Equal(t, "fcm-token", fallback.last)
}

func TestRouter_NoFallbackIsPermanent(t *testing.T) {
	router := NewRouter(nil)

	err := router.Send(context.Background(), "fcm-token", testPayload)

	require.Error(t, err)
	assert.True(t, isPermanent(err))
}

func TestLogGateway_AlwaysSucceeds(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	assert.NoError(t, NewLogGateway(logger).Send(context.Background(), "tok", testPayload))
}

func TestTelegramGateway_Send(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/sendMessage"))
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true,"result":{"message_id":1,"date":0,"chat":{"id":42,"type":"private"}}}`))
	}))
	defer srv.Close()

	gw, err := NewTelegramGateway("123:test-token", 10, bot.WithServerURL(srv.URL), bot.WithSkipGetMe())
	require.NoError(t, err)

	err = gw.Send(context.Background(), "tg:42", testPayload)

	require.NoError(t, err)
	assert.EqualValues(t, 1, hits.Load())
}

func TestTelegramGateway_InvalidAddressIsPermanent(t *testing.T) {
	gw, err := NewTelegramGateway("123:test-token", 10, bot.WithSkipGetMe())
	require.NoError(t, err)

	err = gw.Send(context.Background(), "tg:not-a-chat", testPayload)

	require.Error(t, err)
	assert.True(t, isPermanent(err))
}

func isPermanent(err error) bool {
	return errors.Is(err, models.ErrPermanentDelivery)
}
