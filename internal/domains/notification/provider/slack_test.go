package provider

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"vigil/infras/otel/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSettings struct {
	value string
	err   error
}

func (s *stubSettings) GetValue(_ context.Context, _ string) (string, error) {
	return s.value, s.err
}

func TestSlackValidateConfig(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		wantField string
		wantIcon  string
	}{
		{
			name:      "missing webhook url",
			cfg:       Config{SlackFieldChannel: "#alerts", SlackFieldUsername: "vigil"},
			wantField: SlackFieldWebhookURL,
		},
		{
			name:      "empty webhook url counts as missing",
			cfg:       Config{SlackFieldWebhookURL: "", SlackFieldChannel: "#alerts", SlackFieldUsername: "vigil"},
			wantField: SlackFieldWebhookURL,
		},
		{
			name:      "missing channel",
			cfg:       Config{SlackFieldWebhookURL: "https://hooks.example.com/x", SlackFieldUsername: "vigil"},
			wantField: SlackFieldChannel,
		},
		{
			name:      "missing username",
			cfg:       Config{SlackFieldWebhookURL: "https://hooks.example.com/x", SlackFieldChannel: "#alerts"},
			wantField: SlackFieldUsername,
		},
		{
			name:      "multiple missing reports first in order",
			cfg:       Config{SlackFieldUsername: "vigil"},
			wantField: SlackFieldWebhookURL,
		},
		{
			name:     "valid config defaults icon",
			cfg:      Config{SlackFieldWebhookURL: "https://hooks.example.com/x", SlackFieldChannel: "#alerts", SlackFieldUsername: "vigil"},
			wantIcon: ":robot_face:",
		},
		{
			name: "valid config keeps user icon",
			cfg: Config{
				SlackFieldWebhookURL: "https://hooks.example.com/x",
				SlackFieldChannel:    "#alerts",
				SlackFieldUsername:   "vigil",
				SlackFieldIconEmoji:  ":fire:",
			},
			wantIcon: ":fire:",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			p := NewSlack(http.DefaultClient, &stubSettings{}, mocks.NewOtel())

			err := p.ValidateConfig(test.cfg)

			if test.wantField != "" {
				var cfgErr *ConfigError
				require.ErrorAs(t, err, &cfgErr)
				assert.Equal(t, test.wantField, cfgErr.Field)
				assert.Contains(t, err.Error(), test.wantField)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, test.wantIcon, test.cfg[SlackFieldIconEmoji])
		})
	}
}

func TestSlackSend(t *testing.T) {
	var got slackPayload

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	p := NewSlack(server.Client(), &stubSettings{value: "https://status.example.com"}, mocks.NewOtel())

	cfg := Config{
		SlackFieldWebhookURL: server.URL,
		SlackFieldChannel:    "#alerts",
		SlackFieldUsername:   "vigil",
	}

	monitor := &MonitorContext{ID: "m-1", Name: "api", URL: "https://api.example.com"}
	heartbeat := &Heartbeat{
		Status:   "down",
		Time:     "2024-12-31T23:00:00Z",
		Message:  "connection refused",
		Timezone: "Europe/Amsterdam",
	}

	err := p.Send(context.Background(), cfg, "api is down: connection refused", monitor, heartbeat)
	require.NoError(t, err)

	assert.Equal(t, "#alerts", got.Channel)
	assert.Equal(t, "vigil", got.Username)
	assert.Equal(t, ":robot_face:", got.IconEmoji)
	assert.Equal(t, "api is down: connection refused", got.Text)

	require.Len(t, got.Attachments, 1)
	attachment := got.Attachments[0]

	assert.Equal(t, "api is down", attachment.Title)
	assert.Equal(t, "#e01e5a", attachment.Color)
	assert.Contains(t, attachment.Text, "Wednesday, Jan 01, 2025 00:00:00")
	assert.Contains(t, attachment.Text, "Netherlands, Europe (Central European Time)")

	require.Len(t, attachment.Actions, 1)
	assert.Equal(t, "button", attachment.Actions[0].Type)
	assert.Equal(t, "Visit site", attachment.Actions[0].Text)
	assert.Equal(t, "https://status.example.com/monitors/m-1", attachment.Actions[0].URL)
}

func TestSlackSendWithoutHeartbeat(t *testing.T) {
	var got slackPayload

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	p := NewSlack(server.Client(), &stubSettings{}, mocks.NewOtel())

	cfg := Config{
		SlackFieldWebhookURL: server.URL,
		SlackFieldChannel:    "#alerts",
		SlackFieldUsername:   "vigil",
	}

	err := p.Send(context.Background(), cfg, "test message", nil, nil)
	require.NoError(t, err)

	assert.Equal(t, "test message", got.Text)
	assert.Empty(t, got.Attachments)
}

func TestSlackSendOmitsVisitButtonWhenSettingUnavailable(t *testing.T) {
	var got slackPayload

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	p := NewSlack(server.Client(), &stubSettings{err: errors.New("settings store down")}, mocks.NewOtel())

	cfg := Config{
		SlackFieldWebhookURL: server.URL,
		SlackFieldChannel:    "#alerts",
		SlackFieldUsername:   "vigil",
	}

	monitor := &MonitorContext{ID: "m-1", Name: "api"}
	heartbeat := &Heartbeat{Status: "up", Time: "2024-06-15T12:00:00Z", Timezone: "Europe/Amsterdam"}

	err := p.Send(context.Background(), cfg, "api is up", monitor, heartbeat)
	require.NoError(t, err)

	require.Len(t, got.Attachments, 1)
	assert.Empty(t, got.Attachments[0].Actions)
}

func TestSlackSendWebhookRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	p := NewSlack(server.Client(), &stubSettings{}, mocks.NewOtel())

	cfg := Config{
		SlackFieldWebhookURL: server.URL,
		SlackFieldChannel:    "#alerts",
		SlackFieldUsername:   "vigil",
	}

	err := p.Send(context.Background(), cfg, "test", nil, nil)
	assert.ErrorContains(t, err, "status 500")
}

func TestSlackSendInvalidConfig(t *testing.T) {
	p := NewSlack(http.DefaultClient, &stubSettings{}, mocks.NewOtel())

	err := p.Send(context.Background(), Config{}, "test", nil, nil)

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, SlackFieldWebhookURL, cfgErr.Field)
}
