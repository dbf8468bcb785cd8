package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"vigil/shared/constant"
	"vigil/shared/timezone"

	"github.com/rs/zerolog/log"

	"vigil/infras/otel"
)

const (
	KindSlack = "slack"

	SlackFieldWebhookURL = "webhookURL"
	SlackFieldChannel    = "channel"
	SlackFieldUsername   = "username"
	SlackFieldIconEmoji  = "iconEmoji"

	defaultSlackIcon = ":robot_face:"

	settingPrimaryBaseURL = "primary_base_url"
)

// Required fields are checked in this order; validation stops at the
// first missing one.
var slackRequiredFields = []string{SlackFieldWebhookURL, SlackFieldChannel, SlackFieldUsername}

var slackStatusColors = map[string]string{
	"up":      "#2eb886",
	"down":    "#e01e5a",
	"pending": "#ecb22e",
}

type slackPayload struct {
	Channel     string            `json:"channel"`
	Username    string            `json:"username"`
	IconEmoji   string            `json:"icon_emoji"`
	Text        string            `json:"text"`
	Attachments []slackAttachment `json:"attachments,omitempty"`
}

type slackAttachment struct {
	Color   string        `json:"color,omitempty"`
	Title   string        `json:"title,omitempty"`
	Text    string        `json:"text"`
	Actions []slackAction `json:"actions,omitempty"`
}

type slackAction struct {
	Type  string `json:"type"`
	Text  string `json:"text"`
	URL   string `json:"url"`
	Style string `json:"style,omitempty"`
}

type slackProvider struct {
	client   *http.Client
	settings SettingSource
	otel     otel.Otel
}

func NewSlack(client *http.Client, settings SettingSource, otel otel.Otel) Provider {
	return &slackProvider{
		client:   client,
		settings: settings,
		otel:     otel,
	}
}

func (p *slackProvider) Kind() string {
	return KindSlack
}

// ValidateConfig checks the required fields in a fixed order and fails on
// the first missing one. On success the icon emoji is defaulted in place
// when the user left it out.
func (p *slackProvider) ValidateConfig(cfg Config) error {
	for _, field := range slackRequiredFields {
		if cfg[field] == "" {
			return &ConfigError{Field: field}
		}
	}

	if cfg[SlackFieldIconEmoji] == "" {
		cfg[SlackFieldIconEmoji] = defaultSlackIcon
	}

	return nil
}

func (p *slackProvider) Send(ctx context.Context, cfg Config, msg string, monitor *MonitorContext, heartbeat *Heartbeat) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelProviderScopeName, constant.OtelProviderScopeName+".slack.Send")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = p.ValidateConfig(cfg); err != nil {
		return err
	}

	payload := slackPayload{
		Channel:   cfg[SlackFieldChannel],
		Username:  cfg[SlackFieldUsername],
		IconEmoji: cfg[SlackFieldIconEmoji],
		Text:      msg,
	}

	if monitor != nil && heartbeat != nil {
		payload.Attachments = append(payload.Attachments, p.buildAttachment(ctx, msg, monitor, heartbeat))
	}

	return p.post(ctx, cfg[SlackFieldWebhookURL], payload)
}

// buildAttachment renders the heartbeat in the monitor's local time. Any
// field the formatter cannot produce is left out of the message rather
// than shown empty.
func (p *slackProvider) buildAttachment(ctx context.Context, msg string, monitor *MonitorContext, heartbeat *Heartbeat) slackAttachment {
	lines := []string{msg}

	weekday := timezone.FormatWeekday(heartbeat.Time, heartbeat.Timezone)
	date := timezone.FormatDate(heartbeat.Time, heartbeat.Timezone)
	clock := timezone.FormatClockTime(heartbeat.Time, heartbeat.Timezone)

	if weekday != "" && date != "" && clock != "" {
		lines = append(lines, fmt.Sprintf("*Local Time:* %s, %s %s", weekday, date, clock))
	}

	if info := timezone.Resolve(heartbeat.Timezone); info.Country != "" {
		lines = append(lines, fmt.Sprintf("*Region:* %s, %s (%s)", info.Country, info.Continent, info.LocalName))
	}

	attachment := slackAttachment{
		Color: slackStatusColors[heartbeat.Status],
		Title: fmt.Sprintf("%s is %s", monitor.Name, heartbeat.Status),
		Text:  strings.Join(lines, "\n"),
	}

	baseURL, err := p.settings.GetValue(ctx, settingPrimaryBaseURL)
	if err != nil {
		log.Debug().Err(err).Msg("primary base url unavailable, omitting visit button")

		return attachment
	}

	if baseURL != "" {
		attachment.Actions = append(attachment.Actions, slackAction{
			Type: "button",
			Text: "Visit site",
			URL:  fmt.Sprintf("%s/monitors/%s", strings.TrimRight(baseURL, "/"), monitor.ID),
		})
	}

	return attachment
}

func (p *slackProvider) post(ctx context.Context, webhookURL string, payload slackPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal slack payload")

		return fmt.Errorf("failed to marshal slack payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, webhookURL, bytes.NewReader(body))
	if err != nil {
		log.Error().Err(err).Msg("failed to build slack request")

		return fmt.Errorf("failed to build slack request: %w", err)
	}

	req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

	resp, err := p.client.Do(req)
	if err != nil {
		log.Error().Err(err).Msg("failed to post to slack webhook")

		return fmt.Errorf("failed to post to slack webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		log.Error().Int("status", resp.StatusCode).Str("body", string(respBody)).Msg("slack webhook rejected message")

		return fmt.Errorf("slack webhook returned status %d", resp.StatusCode)
	}

	return nil
}
