package provider

import (
	"context"
	"fmt"
	"vigil/shared/failure"
)

// Config carries the user-supplied settings for one notification target.
// Providers mutate it only to fill defaults.
type Config map[string]string

// ConfigError reports a missing required configuration field.
type ConfigError struct {
	Field string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("notification config field %q is required", e.Field)
}

// Heartbeat is a single observed check result, with times in UTC RFC3339.
type Heartbeat struct {
	Status   string `json:"status"`
	Time     string `json:"time"`
	Message  string `json:"message"`
	PingMs   int64  `json:"ping_ms"`
	Timezone string `json:"timezone"`
}

// MonitorContext identifies the monitor a notification is about.
type MonitorContext struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

type Provider interface {
	Kind() string
	ValidateConfig(cfg Config) error
	Send(ctx context.Context, cfg Config, msg string, monitor *MonitorContext, heartbeat *Heartbeat) error
}

// SettingSource supplies application settings to providers that enrich
// their payload with them.
type SettingSource interface {
	GetValue(ctx context.Context, key string) (string, error)
}

type Registry struct {
	providers map[string]Provider
}

func NewRegistry(providers ...Provider) *Registry {
	reg := &Registry{providers: map[string]Provider{}}

	for _, p := range providers {
		reg.providers[p.Kind()] = p
	}

	return reg
}

func (r *Registry) Get(kind string) (Provider, error) {
	p, ok := r.providers[kind]
	if !ok {
		return nil, failure.NotFound(fmt.Sprintf("notification provider %q not found", kind)) // nolint:wrapcheck
	}

	return p, nil
}

func (r *Registry) Kinds() []string {
	kinds := make([]string, 0, len(r.providers))
	for kind := range r.providers {
		kinds = append(kinds, kind)
	}

	return kinds
}
