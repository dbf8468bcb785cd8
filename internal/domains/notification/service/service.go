package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"vigil/config"
	"vigil/infras/otel"
	"vigil/internal/domains/notification/model"
	"vigil/internal/domains/notification/model/dto"
	"vigil/internal/domains/notification/provider"
	"vigil/internal/domains/notification/repository"
	"vigil/shared"
	"vigil/shared/constant"
	gDto "vigil/shared/dto"
	"vigil/shared/failure"

	"github.com/rs/zerolog/log"
)

type Notification interface {
	Create(ctx context.Context, req dto.CreateNotificationRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetNotificationsResponse, error)
	Get(ctx context.Context, id string) (dto.NotificationResponse, error)
	Update(ctx context.Context, req dto.UpdateNotificationRequest, id string) error
	Delete(ctx context.Context, id string) error
	Test(ctx context.Context, id string) error
	Dispatch(ctx context.Context, monitor provider.MonitorContext, heartbeat provider.Heartbeat, msg string) error
}

type serviceImpl struct {
	repo     repository.Notification
	registry *provider.Registry
	cfg      *config.Config
	otel     otel.Otel
}

func New(repo repository.Notification, registry *provider.Registry, cfg *config.Config, otel otel.Otel) Notification {
	return &serviceImpl{
		repo:     repo,
		registry: registry,
		cfg:      cfg,
		otel:     otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateNotificationRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	prov, err := s.registry.Get(req.Kind)
	if err != nil {
		return failure.BadRequestFromString(fmt.Sprintf("unsupported notification kind %q", req.Kind)) // nolint:wrapcheck
	}

	if err = prov.ValidateConfig(req.Config); err != nil {
		return asConfigFailure(err)
	}

	actor, _ := ctx.Value(constant.ContextKeyActor).(string)

	mod, err := req.ToModel(actor)
	if err != nil {
		log.Error().Err(err).Msg("failed to build notification model")

		return fmt.Errorf("failed to build notification model: %w", err)
	}

	if err = s.repo.Insert(ctx, mod); err != nil {
		log.Error().Err(err).Msg("failed to create notification")

		return fmt.Errorf("failed to create notification: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetNotificationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count notifications")

		return res, fmt.Errorf("failed to count notifications: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get notifications")

		return res, fmt.Errorf("failed to get notifications: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.NotificationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	notification, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get notification")

		return res, fmt.Errorf("failed to get notification: %w", err)
	}

	if notification.ID == "" {
		return res, failure.NotFound("notification not found") // nolint:wrapcheck
	}

	res.FromModel(notification)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateNotificationRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.Name == "" && req.Active == nil && req.Config == nil {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	notification, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get notification")

		return fmt.Errorf("failed to get notification: %w", err)
	}

	if notification.ID == "" {
		log.Error().Msg("notification not found")

		return failure.NotFound("notification not found") // nolint:wrapcheck
	}

	actor, _ := ctx.Value(constant.ContextKeyActor).(string)
	updatedFields := shared.TransformFields(req, actor)

	if req.Config != nil {
		prov, err := s.registry.Get(notification.Kind)
		if err != nil {
			return err
		}

		if err = prov.ValidateConfig(req.Config); err != nil {
			return asConfigFailure(err)
		}

		cfg, err := json.Marshal(req.Config)
		if err != nil {
			log.Error().Err(err).Msg("failed to marshal notification config")

			return fmt.Errorf("failed to marshal notification config: %w", err)
		}

		updatedFields[model.FieldConfig] = cfg
	}

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update notification")

		return fmt.Errorf("failed to update notification: %w", err)
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if notification exists")

		return fmt.Errorf("failed to check if notification exists: %w", err)
	}

	if !exist {
		log.Error().Msg("notification not found")

		return failure.NotFound("notification not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete notification")

		return fmt.Errorf("failed to delete notification: %w", err)
	}

	return nil
}

// Test delivers a canned message through the stored target so the user can
// verify their configuration end to end.
func (s *serviceImpl) Test(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Test")
	defer scope.End()
	defer scope.TraceIfError(err)

	notification, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get notification")

		return fmt.Errorf("failed to get notification: %w", err)
	}

	if notification.ID == "" {
		return failure.NotFound("notification not found") // nolint:wrapcheck
	}

	prov, cfg, err := s.resolveTarget(notification)
	if err != nil {
		return err
	}

	msg := fmt.Sprintf("Test notification from %s", s.cfg.App.Name)

	if err = prov.Send(ctx, cfg, msg, nil, nil); err != nil {
		log.Error().Err(err).Str("notification_id", notification.ID).Msg("failed to send test notification")

		return asConfigFailure(err)
	}

	return nil
}

// Dispatch fans a state-change message out to every active target. One
// failing target must not block delivery to the rest.
func (s *serviceImpl) Dispatch(ctx context.Context, monitor provider.MonitorContext, heartbeat provider.Heartbeat, msg string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Dispatch")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldActive,
				Value:    true,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}

	targets, err := s.repo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get active notifications")

		return fmt.Errorf("failed to get active notifications: %w", err)
	}

	for _, target := range targets {
		prov, cfg, err := s.resolveTarget(target)
		if err != nil {
			log.Error().Err(err).Str("notification_id", target.ID).Msg("skipping undeliverable notification target")

			continue
		}

		if err = prov.Send(ctx, cfg, msg, &monitor, &heartbeat); err != nil {
			log.Error().Err(err).
				Str("notification_id", target.ID).
				Str("kind", target.Kind).
				Str("monitor_id", monitor.ID).
				Msg("failed to deliver notification")

			continue
		}

		log.Info().
			Str("notification_id", target.ID).
			Str("kind", target.Kind).
			Str("monitor_id", monitor.ID).
			Msg("notification delivered")
	}

	return nil
}

func (s *serviceImpl) resolveTarget(notification model.Notification) (provider.Provider, provider.Config, error) {
	prov, err := s.registry.Get(notification.Kind)
	if err != nil {
		return nil, nil, err
	}

	var cfg provider.Config
	if err := json.Unmarshal(notification.Config, &cfg); err != nil {
		log.Error().Err(err).Str("notification_id", notification.ID).Msg("failed to decode stored notification config")

		return nil, nil, fmt.Errorf("failed to decode stored notification config: %w", err)
	}

	return prov, cfg, nil
}

// asConfigFailure maps a provider ConfigError to a bad-request failure so
// the user sees which field to fix.
func asConfigFailure(err error) error {
	var cfgErr *provider.ConfigError
	if errors.As(err, &cfgErr) {
		return failure.BadRequestFromString(cfgErr.Error()) // nolint:wrapcheck
	}

	return err
}
