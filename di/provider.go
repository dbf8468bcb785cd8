package di

import (
	"net/http"
	"time"
	"vigil/config"
	"vigil/infras/otel"
	"vigil/internal/domains/notification/provider"

	monitorService "vigil/internal/domains/monitor/service"
	notificationService "vigil/internal/domains/notification/service"
	settingsService "vigil/internal/domains/settings/service"
)

// ProvideRegistry assembles the delivery providers behind a shared HTTP
// client so webhook calls respect a single outbound timeout.
func ProvideRegistry(cfg *config.Config, settings settingsService.Settings, ot otel.Otel) *provider.Registry {
	client := &http.Client{
		Timeout: time.Duration(cfg.Notification.TimeoutSeconds) * time.Second,
	}

	return provider.NewRegistry(
		provider.NewSlack(client, settings, ot),
		provider.NewWebhook(client, ot),
	)
}

func ProvideNotifier(service notificationService.Notification) monitorService.Notifier {
	return service
}
