package monitor

import (
	"net/http"
	"time"
	"vigil/infras/otel"
	"vigil/internal/domains/monitor/model"
	"vigil/internal/domains/monitor/model/dto"
	"vigil/internal/domains/monitor/service"
	"vigil/shared"
	"vigil/shared/constant"
	gDto "vigil/shared/dto"
	"vigil/shared/failure"
	"vigil/shared/validator"
	"vigil/transport/http/middleware"
	"vigil/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Monitor
	auth    middleware.Auth
	otel    otel.Otel
}

func New(service service.Monitor, auth middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		auth:    auth,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/monitors", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetMonitors)
		routerGroup.Get("/{id}", handler.GetMonitorByID)
		routerGroup.Get("/{id}/heartbeats", handler.GetHeartbeats)

		routerGroup.With(handler.auth.APIKey).Post("/", handler.CreateMonitor)
		routerGroup.With(handler.auth.APIKey).Patch("/{id}", handler.UpdateMonitor)
		routerGroup.With(handler.auth.APIKey).Delete("/{id}", handler.DeleteMonitor)
		routerGroup.With(handler.auth.APIKey).Post("/{id}/heartbeats", handler.RecordHeartbeat)
	})
}

// CreateMonitor registers a new monitor.
// @Summary Create a new monitor
// @Description Register a service to be watched for uptime.
// @Tags Monitor
// @Accept json
// @Produce json
// @Param request body dto.CreateMonitorRequest true "Create Monitor Request"
// @Success 201 {object} response.Message "Monitor created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/monitors [post]
// @Security ApiKeyAuth
func (handler *Handler) CreateMonitor(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateMonitor")
	defer scope.End()

	req := dto.CreateMonitorRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create monitor")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Monitor created successfully")

	response.WithMessage(writer, http.StatusCreated, "Monitor created successfully")
}

// GetMonitors lists monitors.
// @Summary Get all monitors
// @Description Retrieve all monitors with optional filtering and pagination.
// @Tags Monitor
// @Accept json
// @Produce json
// @Param name query string false "Filter by name"
// @Param active query boolean false "Filter by active flag"
// @Success 200 {object} dto.GetMonitorsResponse "List of monitors"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/monitors [get]
func (handler *Handler) GetMonitors(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMonitors")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	name := r.URL.Query().Get(model.FieldName)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldName,
				Operator: gDto.FilterOperatorLike,
				Value:    name,
				Table:    model.TableName,
			},
		},
	}

	if active := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldActive)); active != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldActive,
			Operator: gDto.FilterOperatorEq,
			Value:    *active,
			Table:    model.TableName,
		})
	}

	monitors, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get monitors")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Monitors retrieved successfully")

	response.WithJSON(w, http.StatusOK, monitors)
}

// GetMonitorByID retrieves a monitor by its ID.
// @Summary Get a monitor by ID
// @Description Retrieve a monitor by its unique identifier.
// @Tags Monitor
// @Accept json
// @Produce json
// @Param id path string true "Monitor ID"
// @Success 200 {object} dto.MonitorResponse "Monitor details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/monitors/{id} [get]
func (handler *Handler) GetMonitorByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMonitorByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	monitor, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get monitor by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Monitor retrieved successfully")

	response.WithJSON(w, http.StatusOK, monitor)
}

// UpdateMonitor updates an existing monitor by its ID.
// @Summary Update a monitor by ID
// @Description Update the details of an existing monitor.
// @Tags Monitor
// @Accept json
// @Produce json
// @Param id path string true "Monitor ID"
// @Param request body dto.UpdateMonitorRequest true "Update Monitor Request"
// @Success 200 {object} response.Message "Monitor updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/monitors/{id} [patch]
// @Security ApiKeyAuth
func (handler *Handler) UpdateMonitor(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateMonitor")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateMonitorRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update monitor")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Monitor updated successfully")

	response.WithMessage(w, http.StatusOK, "Monitor updated successfully")
}

// DeleteMonitor deletes a monitor by its ID.
// @Summary Delete a monitor by ID
// @Description Delete a monitor using its unique identifier.
// @Tags Monitor
// @Accept json
// @Produce json
// @Param id path string true "Monitor ID"
// @Success 200 {object} response.Message "Monitor deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/monitors/{id} [delete]
// @Security ApiKeyAuth
func (handler *Handler) DeleteMonitor(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteMonitor")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete monitor")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Monitor deleted successfully")

	response.WithMessage(w, http.StatusOK, "Monitor deleted successfully")
}

// RecordHeartbeat ingests a check result for a monitor.
// @Summary Record a heartbeat
// @Description Persist a check result. A status flip alerts the notification targets.
// @Tags Monitor
// @Accept json
// @Produce json
// @Param id path string true "Monitor ID"
// @Param request body dto.RecordHeartbeatRequest true "Record Heartbeat Request"
// @Success 201 {object} response.Message "Heartbeat recorded successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/monitors/{id}/heartbeats [post]
// @Security ApiKeyAuth
func (handler *Handler) RecordHeartbeat(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RecordHeartbeat")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.RecordHeartbeatRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.RecordHeartbeat(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to record heartbeat")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Heartbeat recorded successfully")

	response.WithMessage(w, http.StatusCreated, "Heartbeat recorded successfully")
}

// GetHeartbeats lists a monitor's heartbeats over a time window.
// @Summary Get heartbeats for a monitor
// @Description Retrieve heartbeats between the from and to timestamps (RFC3339). Defaults to the last 24 hours.
// @Tags Monitor
// @Accept json
// @Produce json
// @Param id path string true "Monitor ID"
// @Param from query string false "Window start (RFC3339)"
// @Param to query string false "Window end (RFC3339)"
// @Success 200 {object} dto.GetHeartbeatsResponse "Heartbeats"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/monitors/{id}/heartbeats [get]
func (handler *Handler) GetHeartbeats(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHeartbeats")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	from, err := parseTimeParam(r.URL.Query().Get("from"))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	to, err := parseTimeParam(r.URL.Query().Get("to"))
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	heartbeats, err := handler.service.GetHeartbeats(ctx, id, from, to)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get heartbeats")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Heartbeats retrieved successfully")

	response.WithJSON(w, http.StatusOK, heartbeats)
}

func parseTimeParam(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}

	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, failure.BadRequestFromString("timestamps must be RFC3339") // nolint:wrapcheck
	}

	return parsed, nil
}
