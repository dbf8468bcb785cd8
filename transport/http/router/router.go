package router

import (
	"vigil/internal/handlers/monitor"
	"vigil/internal/handlers/notification"
	"vigil/internal/handlers/report"
	"vigil/internal/handlers/settings"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Monitor      monitor.Handler
	Notification notification.Handler
	Settings     settings.Handler
	Report       report.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Monitor.Router(routerGroup)
		r.DomainHandlers.Notification.Router(routerGroup)
		r.DomainHandlers.Settings.Router(routerGroup)
		r.DomainHandlers.Report.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
