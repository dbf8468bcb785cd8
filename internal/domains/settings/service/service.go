package service

import (
	"context"
	"fmt"
	"vigil/config"
	"vigil/infras/otel"
	"vigil/internal/domains/settings/model"
	"vigil/internal/domains/settings/model/dto"
	"vigil/internal/domains/settings/repository"
	"vigil/shared"
	"vigil/shared/cache"
	"vigil/shared/constant"
	gDto "vigil/shared/dto"
	"vigil/shared/failure"

	"github.com/rs/zerolog/log"
)

const cacheKeyPrefix = "settings"

type Settings interface {
	GetValue(ctx context.Context, key string) (string, error)
	Get(ctx context.Context, key string) (dto.SettingResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetSettingsResponse, error)
	Set(ctx context.Context, key string, req dto.SetSettingRequest) error
	Delete(ctx context.Context, key string) error
}

type serviceImpl struct {
	repo  repository.Settings
	cache cache.RedisCache
	cfg   *config.Config
	otel  otel.Otel
}

func New(repo repository.Settings, redisCache cache.RedisCache, cfg *config.Config, otel otel.Otel) Settings {
	return &serviceImpl{
		repo:  repo,
		cache: redisCache,
		cfg:   cfg,
		otel:  otel,
	}
}

// GetValue looks a setting up cache-aside. A missing setting is not an
// error; it yields an empty value so callers can degrade gracefully.
func (s *serviceImpl) GetValue(ctx context.Context, key string) (value string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetValue")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheKeyPrefix, key)

	if err := s.cache.Get(ctx, cacheKey, &value); err == nil {
		return value, nil
	}

	setting, err := s.repo.Get(ctx, shared.FilterByID(key, model.FieldKey, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to get setting")

		return "", fmt.Errorf("failed to get setting: %w", err)
	}

	if setting.Key == "" {
		return "", nil
	}

	if err := s.cache.Save(ctx, cacheKey, setting.Value, s.cfg.Cache.TTL); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("failed to cache setting")
	}

	return setting.Value, nil
}

func (s *serviceImpl) Get(ctx context.Context, key string) (res dto.SettingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	setting, err := s.repo.Get(ctx, shared.FilterByID(key, model.FieldKey, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to get setting")

		return res, fmt.Errorf("failed to get setting: %w", err)
	}

	if setting.Key == "" {
		return res, failure.NotFound("setting not found") // nolint:wrapcheck
	}

	res.FromModel(setting)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetSettingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count settings")

		return res, fmt.Errorf("failed to count settings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get settings")

		return res, fmt.Errorf("failed to get settings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

// Set upserts a setting and writes the new value through to the cache so
// the next GetValue sees it immediately.
func (s *serviceImpl) Set(ctx context.Context, key string, req dto.SetSettingRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Set")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(key, model.FieldKey, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to check if setting exists")

		return fmt.Errorf("failed to check if setting exists: %w", err)
	}

	actor, _ := ctx.Value(constant.ContextKeyActor).(string)

	if exist {
		updatedFields := shared.TransformFields(struct {
			Value string `db:"value"`
		}{Value: req.Value}, actor)

		if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
			log.Error().Err(err).Str("key", key).Msg("failed to update setting")

			return fmt.Errorf("failed to update setting: %w", err)
		}
	} else {
		if err = s.repo.Insert(ctx, req.ToModel(key, actor)); err != nil {
			log.Error().Err(err).Str("key", key).Msg("failed to insert setting")

			return fmt.Errorf("failed to insert setting: %w", err)
		}
	}

	cacheKey := shared.BuildCacheKey(cacheKeyPrefix, key)
	if err := s.cache.Save(ctx, cacheKey, req.Value, s.cfg.Cache.TTL); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("failed to write setting through to cache")
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, key string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(key, model.FieldKey, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to check if setting exists")

		return fmt.Errorf("failed to check if setting exists: %w", err)
	}

	if !exist {
		return failure.NotFound("setting not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to delete setting")

		return fmt.Errorf("failed to delete setting: %w", err)
	}

	if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheKeyPrefix, key)); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("failed to evict setting from cache")
	}

	return nil
}
