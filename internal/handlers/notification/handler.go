package notification

import (
	"net/http"
	"vigil/infras/otel"
	"vigil/internal/domains/notification/model"
	"vigil/internal/domains/notification/model/dto"
	"vigil/internal/domains/notification/service"
	"vigil/shared"
	"vigil/shared/constant"
	gDto "vigil/shared/dto"
	"vigil/shared/validator"
	"vigil/transport/http/middleware"
	"vigil/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Notification
	auth    middleware.Auth
	otel    otel.Otel
}

func New(service service.Notification, auth middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		auth:    auth,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/notifications", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetNotifications)
		routerGroup.Get("/{id}", handler.GetNotificationByID)

		routerGroup.With(handler.auth.APIKey).Post("/", handler.CreateNotification)
		routerGroup.With(handler.auth.APIKey).Patch("/{id}", handler.UpdateNotification)
		routerGroup.With(handler.auth.APIKey).Delete("/{id}", handler.DeleteNotification)
		routerGroup.With(handler.auth.APIKey).Post("/{id}/test", handler.TestNotification)
	})
}

// CreateNotification registers a new notification target.
// @Summary Create a notification target
// @Description Register a delivery target. The config is validated against the provider before it is stored.
// @Tags Notification
// @Accept json
// @Produce json
// @Param request body dto.CreateNotificationRequest true "Create Notification Request"
// @Success 201 {object} response.Message "Notification created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/notifications [post]
// @Security ApiKeyAuth
func (handler *Handler) CreateNotification(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateNotification")
	defer scope.End()

	req := dto.CreateNotificationRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create notification")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Notification created successfully")

	response.WithMessage(writer, http.StatusCreated, "Notification created successfully")
}

// GetNotifications lists notification targets.
// @Summary Get all notification targets
// @Description Retrieve all notification targets with optional filtering and pagination.
// @Tags Notification
// @Accept json
// @Produce json
// @Param name query string false "Filter by name"
// @Param kind query string false "Filter by kind"
// @Param active query boolean false "Filter by active flag"
// @Success 200 {object} dto.GetNotificationsResponse "List of notification targets"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/notifications [get]
func (handler *Handler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetNotifications")
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

	if kind := r.URL.Query().Get(model.FieldKind); kind != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldKind,
			Operator: gDto.FilterOperatorEq,
			Value:    kind,
			Table:    model.TableName,
		})
	}

	if active := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldActive)); active != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldActive,
			Operator: gDto.FilterOperatorEq,
			Value:    *active,
			Table:    model.TableName,
		})
	}

	notifications, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get notifications")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Notifications retrieved successfully")

	response.WithJSON(w, http.StatusOK, notifications)
}

// GetNotificationByID retrieves a notification target by its ID.
// @Summary Get a notification target by ID
// @Description Retrieve a notification target by its unique identifier.
// @Tags Notification
// @Accept json
// @Produce json
// @Param id path string true "Notification ID"
// @Success 200 {object} dto.NotificationResponse "Notification details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/notifications/{id} [get]
func (handler *Handler) GetNotificationByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetNotificationByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	notification, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get notification by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Notification retrieved successfully")

	response.WithJSON(w, http.StatusOK, notification)
}

// UpdateNotification updates an existing notification target by its ID.
// @Summary Update a notification target by ID
// @Description Update the details of an existing notification target. A new config is re-validated.
// @Tags Notification
// @Accept json
// @Produce json
// @Param id path string true "Notification ID"
// @Param request body dto.UpdateNotificationRequest true "Update Notification Request"
// @Success 200 {object} response.Message "Notification updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/notifications/{id} [patch]
// @Security ApiKeyAuth
func (handler *Handler) UpdateNotification(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateNotification")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateNotificationRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update notification")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Notification updated successfully")

	response.WithMessage(w, http.StatusOK, "Notification updated successfully")
}

// DeleteNotification deletes a notification target by its ID.
// @Summary Delete a notification target by ID
// @Description Delete a notification target using its unique identifier.
// @Tags Notification
// @Accept json
// @Produce json
// @Param id path string true "Notification ID"
// @Success 200 {object} response.Message "Notification deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/notifications/{id} [delete]
// @Security ApiKeyAuth
func (handler *Handler) DeleteNotification(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteNotification")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete notification")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Notification deleted successfully")

	response.WithMessage(w, http.StatusOK, "Notification deleted successfully")
}

// TestNotification sends a canned message to a notification target.
// @Summary Send a test notification
// @Description Deliver a canned message through the stored target so the configuration can be verified.
// @Tags Notification
// @Accept json
// @Produce json
// @Param id path string true "Notification ID"
// @Success 200 {object} response.Message "Test notification sent successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/notifications/{id}/test [post]
// @Security ApiKeyAuth
func (handler *Handler) TestNotification(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".TestNotification")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Test(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to send test notification")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Test notification sent successfully")

	response.WithMessage(w, http.StatusOK, "Test notification sent successfully")
}
