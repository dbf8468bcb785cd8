package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"vigil/shared/constant"

	"github.com/rs/zerolog/log"

	"vigil/infras/otel"
)

const (
	KindWebhook = "webhook"

	WebhookFieldURL         = "url"
	WebhookFieldContentType = "contentType"
)

// webhookEvent is the raw payload a generic webhook target receives.
type webhookEvent struct {
	Message   string          `json:"message"`
	Monitor   *MonitorContext `json:"monitor,omitempty"`
	Heartbeat *Heartbeat      `json:"heartbeat,omitempty"`
}

type webhookProvider struct {
	client *http.Client
	otel   otel.Otel
}

func NewWebhook(client *http.Client, otel otel.Otel) Provider {
	return &webhookProvider{
		client: client,
		otel:   otel,
	}
}

func (p *webhookProvider) Kind() string {
	return KindWebhook
}

func (p *webhookProvider) ValidateConfig(cfg Config) error {
	if cfg[WebhookFieldURL] == "" {
		return &ConfigError{Field: WebhookFieldURL}
	}

	if cfg[WebhookFieldContentType] == "" {
		cfg[WebhookFieldContentType] = constant.ContentTypeJSON
	}

	return nil
}

func (p *webhookProvider) Send(ctx context.Context, cfg Config, msg string, monitor *MonitorContext, heartbeat *Heartbeat) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelProviderScopeName, constant.OtelProviderScopeName+".webhook.Send")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = p.ValidateConfig(cfg); err != nil {
		return err
	}

	body, err := json.Marshal(webhookEvent{
		Message:   msg,
		Monitor:   monitor,
		Heartbeat: heartbeat,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal webhook event")

		return fmt.Errorf("failed to marshal webhook event: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, cfg[WebhookFieldURL], bytes.NewReader(body))
	if err != nil {
		log.Error().Err(err).Msg("failed to build webhook request")

		return fmt.Errorf("failed to build webhook request: %w", err)
	}

	req.Header.Set(constant.RequestHeaderContentType, cfg[WebhookFieldContentType])

	resp, err := p.client.Do(req)
	if err != nil {
		log.Error().Err(err).Msg("failed to post webhook event")

		return fmt.Errorf("failed to post webhook event: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		log.Error().Int("status", resp.StatusCode).Str("body", string(respBody)).Msg("webhook target rejected event")

		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}

	return nil
}
