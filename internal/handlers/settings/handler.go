package settings

import (
	"net/http"
	"vigil/infras/otel"
	"vigil/internal/domains/settings/model"
	"vigil/internal/domains/settings/model/dto"
	"vigil/internal/domains/settings/service"
	"vigil/shared/constant"
	gDto "vigil/shared/dto"
	"vigil/shared/validator"
	"vigil/transport/http/middleware"
	"vigil/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Settings
	auth    middleware.Auth
	otel    otel.Otel
}

func New(service service.Settings, auth middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		auth:    auth,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/settings", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetSettings)
		routerGroup.Get("/{key}", handler.GetSettingByKey)

		routerGroup.With(handler.auth.APIKey).Put("/{key}", handler.SetSetting)
		routerGroup.With(handler.auth.APIKey).Delete("/{key}", handler.DeleteSetting)
	})
}

// GetSettings lists application settings.
// @Summary Get all settings
// @Description Retrieve all application settings with pagination.
// @Tags Settings
// @Accept json
// @Produce json
// @Success 200 {object} dto.GetSettingsResponse "List of settings"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/settings [get]
func (handler *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSettings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	if queryParams.SortBy == constant.DefaultValueSortBy {
		queryParams.SortBy = model.FieldKey
		queryParams.SortDir = gDto.SortDirAsc
	}

	settings, err := handler.service.GetAll(ctx, queryParams, gDto.FilterGroup{})
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get settings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Settings retrieved successfully")

	response.WithJSON(w, http.StatusOK, settings)
}

// GetSettingByKey retrieves a setting by its key.
// @Summary Get a setting by key
// @Description Retrieve a single application setting.
// @Tags Settings
// @Accept json
// @Produce json
// @Param key path string true "Setting key"
// @Success 200 {object} dto.SettingResponse "Setting details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/settings/{key} [get]
func (handler *Handler) GetSettingByKey(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSettingByKey")
	defer scope.End()

	key := chi.URLParam(r, constant.RequestParamKey)

	setting, err := handler.service.Get(ctx, key)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get setting")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Setting retrieved successfully")

	response.WithJSON(w, http.StatusOK, setting)
}

// SetSetting creates or replaces a setting.
// @Summary Set a setting
// @Description Create or replace an application setting. The new value is written through to the cache.
// @Tags Settings
// @Accept json
// @Produce json
// @Param key path string true "Setting key"
// @Param request body dto.SetSettingRequest true "Set Setting Request"
// @Success 200 {object} response.Message "Setting saved successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/settings/{key} [put]
// @Security ApiKeyAuth
func (handler *Handler) SetSetting(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetSetting")
	defer scope.End()

	key := chi.URLParam(r, constant.RequestParamKey)

	req := dto.SetSettingRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Set(ctx, key, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to set setting")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Setting saved successfully")

	response.WithMessage(w, http.StatusOK, "Setting saved successfully")
}

// DeleteSetting deletes a setting by its key.
// @Summary Delete a setting by key
// @Description Delete an application setting and evict it from the cache.
// @Tags Settings
// @Accept json
// @Produce json
// @Param key path string true "Setting key"
// @Success 200 {object} response.Message "Setting deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/settings/{key} [delete]
// @Security ApiKeyAuth
func (handler *Handler) DeleteSetting(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteSetting")
	defer scope.End()

	key := chi.URLParam(r, constant.RequestParamKey)

	if err := handler.service.Delete(ctx, key); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete setting")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Setting deleted successfully")

	response.WithMessage(w, http.StatusOK, "Setting deleted successfully")
}
