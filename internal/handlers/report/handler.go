package report

import (
	"net/http"
	"vigil/infras/otel"
	"vigil/internal/domains/report/model/dto"
	"vigil/internal/domains/report/service"
	"vigil/shared/constant"
	"vigil/shared/validator"
	"vigil/transport/http/middleware"
	"vigil/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Report
	auth    middleware.Auth
	otel    otel.Otel
}

func New(service service.Report, auth middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		auth:    auth,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reports", func(routerGroup chi.Router) {
		routerGroup.With(handler.auth.APIKey).Post("/", handler.GenerateReport)
	})
}

// GenerateReport builds and stores an uptime report.
// @Summary Generate an uptime report
// @Description Aggregate a monitor's heartbeats over a window, upload the report to object storage, and return it with the object URL.
// @Tags Report
// @Accept json
// @Produce json
// @Param request body dto.GenerateReportRequest true "Generate Report Request"
// @Success 200 {object} dto.GenerateReportResponse "Generated report"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reports [post]
// @Security ApiKeyAuth
func (handler *Handler) GenerateReport(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GenerateReport")
	defer scope.End()

	req := dto.GenerateReportRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	report, err := handler.service.Generate(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to generate report")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Report generated successfully")

	response.WithJSON(w, http.StatusOK, report)
}
