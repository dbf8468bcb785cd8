package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"vigil/infras/otel/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebhookValidateConfig(t *testing.T) {
	p := NewWebhook(http.DefaultClient, mocks.NewOtel())

	err := p.ValidateConfig(Config{})

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, WebhookFieldURL, cfgErr.Field)

	cfg := Config{WebhookFieldURL: "https://example.com/hook"}
	require.NoError(t, p.ValidateConfig(cfg))
	assert.Equal(t, "application/json", cfg[WebhookFieldContentType])

	cfg = Config{WebhookFieldURL: "https://example.com/hook", WebhookFieldContentType: "text/plain"}
	require.NoError(t, p.ValidateConfig(cfg))
	assert.Equal(t, "text/plain", cfg[WebhookFieldContentType])
}

func TestWebhookSend(t *testing.T) {
	var got webhookEvent

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	p := NewWebhook(server.Client(), mocks.NewOtel())

	monitor := &MonitorContext{ID: "m-2", Name: "db", URL: "tcp://db.example.com:5432"}
	heartbeat := &Heartbeat{Status: "down", Time: "2024-06-15T12:00:00Z", Message: "timeout", Timezone: "Asia/Jakarta"}

	err := p.Send(context.Background(), Config{WebhookFieldURL: server.URL}, "db is down: timeout", monitor, heartbeat)
	require.NoError(t, err)

	assert.Equal(t, "db is down: timeout", got.Message)
	require.NotNil(t, got.Monitor)
	assert.Equal(t, "m-2", got.Monitor.ID)
	require.NotNil(t, got.Heartbeat)
	assert.Equal(t, "down", got.Heartbeat.Status)
}

func TestWebhookSendRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	p := NewWebhook(server.Client(), mocks.NewOtel())

	err := p.Send(context.Background(), Config{WebhookFieldURL: server.URL}, "test", nil, nil)
	assert.ErrorContains(t, err, "status 502")
}

func TestRegistry(t *testing.T) {
	slack := NewSlack(http.DefaultClient, &stubSettings{}, mocks.NewOtel())
	webhook := NewWebhook(http.DefaultClient, mocks.NewOtel())

	registry := NewRegistry(slack, webhook)

	got, err := registry.Get(KindSlack)
	require.NoError(t, err)
	assert.Equal(t, KindSlack, got.Kind())

	got, err = registry.Get(KindWebhook)
	require.NoError(t, err)
	assert.Equal(t, KindWebhook, got.Kind())

	_, err = registry.Get("telegram")
	require.Error(t, err)
	assert.ErrorContains(t, err, "telegram")

	assert.ElementsMatch(t, []string{KindSlack, KindWebhook}, registry.Kinds())
}
