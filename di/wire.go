//go:build wireinject
// +build wireinject

package di

import (
	"vigil/config"
	"vigil/infras/kafka"
	"vigil/infras/otel"
	"vigil/infras/postgres"
	"vigil/infras/redis"
	"vigil/infras/s3"
	monitorHandler "vigil/internal/handlers/monitor"
	notificationHandler "vigil/internal/handlers/notification"
	reportHandler "vigil/internal/handlers/report"
	settingsHandler "vigil/internal/handlers/settings"
	"vigil/shared/cache"
	"vigil/transport/http"
	"vigil/transport/http/middleware"
	"vigil/transport/http/router"

	monitorRepository "vigil/internal/domains/monitor/repository"
	monitorService "vigil/internal/domains/monitor/service"
	notificationRepository "vigil/internal/domains/notification/repository"
	notificationService "vigil/internal/domains/notification/service"
	reportService "vigil/internal/domains/report/service"
	settingsRepository "vigil/internal/domains/settings/repository"
	settingsService "vigil/internal/domains/settings/service"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var settingsDomain = wire.NewSet(
	settingsRepository.New,
	settingsService.New,
)

var notificationDomain = wire.NewSet(
	ProvideRegistry,
	notificationRepository.New,
	notificationService.New,
)

var monitorDomain = wire.NewSet(
	ProvideNotifier,
	monitorRepository.New,
	monitorService.New,
)

var reportDomain = wire.NewSet(
	reportService.New,
)

var domains = wire.NewSet(
	settingsDomain,
	notificationDomain,
	monitorDomain,
	reportDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	monitorHandler.New,
	notificationHandler.New,
	settingsHandler.New,
	reportHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
