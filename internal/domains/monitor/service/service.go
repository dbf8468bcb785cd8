package service

import (
	"context"
	"fmt"
	"time"
	"vigil/config"
	"vigil/infras/kafka"
	"vigil/infras/otel"
	"vigil/internal/domains/monitor/model"
	"vigil/internal/domains/monitor/model/dto"
	"vigil/internal/domains/monitor/repository"
	"vigil/internal/domains/notification/provider"
	"vigil/shared"
	"vigil/shared/constant"
	gDto "vigil/shared/dto"
	"vigil/shared/failure"

	"github.com/rs/zerolog/log"
)

// Notifier fans a state-change message out to the configured targets.
// Satisfied by the notification service.
type Notifier interface {
	Dispatch(ctx context.Context, monitor provider.MonitorContext, heartbeat provider.Heartbeat, msg string) error
}

// StateChangeEvent is published to Kafka whenever a monitor flips status.
type StateChangeEvent struct {
	MonitorID   string `json:"monitor_id"`
	MonitorName string `json:"monitor_name"`
	From        string `json:"from"`
	To          string `json:"to"`
	Message     string `json:"message,omitempty"`
	CheckedAt   string `json:"checked_at"`
}

type Monitor interface {
	Create(ctx context.Context, req dto.CreateMonitorRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetMonitorsResponse, error)
	Get(ctx context.Context, id string) (dto.MonitorResponse, error)
	Update(ctx context.Context, req dto.UpdateMonitorRequest, id string) error
	Delete(ctx context.Context, id string) error
	RecordHeartbeat(ctx context.Context, monitorID string, req dto.RecordHeartbeatRequest) error
	GetHeartbeats(ctx context.Context, monitorID string, from, to time.Time) (dto.GetHeartbeatsResponse, error)
}

type serviceImpl struct {
	repo     repository.Monitor
	notifier Notifier
	kafka    kafka.Client
	cfg      *config.Config
	otel     otel.Otel
}

func New(repo repository.Monitor, notifier Notifier, kafkaClient kafka.Client, cfg *config.Config, otel otel.Otel) Monitor {
	return &serviceImpl{
		repo:     repo,
		notifier: notifier,
		kafka:    kafkaClient,
		cfg:      cfg,
		otel:     otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateMonitorRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	actor, _ := ctx.Value(constant.ContextKeyActor).(string)

	if err = s.repo.Insert(ctx, req.ToModel(actor)); err != nil {
		log.Error().Err(err).Msg("failed to create monitor")

		return fmt.Errorf("failed to create monitor: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetMonitorsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count monitors")

		return res, fmt.Errorf("failed to count monitors: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get monitors")

		return res, fmt.Errorf("failed to get monitors: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.MonitorResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	monitor, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get monitor")

		return res, fmt.Errorf("failed to get monitor: %w", err)
	}

	if monitor.ID == "" {
		return res, failure.NotFound("monitor not found") // nolint:wrapcheck
	}

	res.FromModel(monitor)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateMonitorRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateMonitorRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if monitor exists")

		return fmt.Errorf("failed to check if monitor exists: %w", err)
	}

	if !exist {
		log.Error().Msg("monitor not found")

		return failure.NotFound("monitor not found") // nolint:wrapcheck
	}

	actor, _ := ctx.Value(constant.ContextKeyActor).(string)

	updatedFields := shared.TransformFields(req, actor)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update monitor")

		return fmt.Errorf("failed to update monitor: %w", err)
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if monitor exists")

		return fmt.Errorf("failed to check if monitor exists: %w", err)
	}

	if !exist {
		log.Error().Msg("monitor not found")

		return failure.NotFound("monitor not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete monitor")

		return fmt.Errorf("failed to delete monitor: %w", err)
	}

	return nil
}

// RecordHeartbeat persists a check result and, when the monitor's status
// flipped against the previous heartbeat, alerts the notification targets
// and publishes a state-change event. Alerting failures never fail the
// heartbeat write.
func (s *serviceImpl) RecordHeartbeat(ctx context.Context, monitorID string, req dto.RecordHeartbeatRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RecordHeartbeat")
	defer scope.End()
	defer scope.TraceIfError(err)

	monitor, err := s.repo.Get(ctx, shared.FilterByID(monitorID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get monitor")

		return fmt.Errorf("failed to get monitor: %w", err)
	}

	if monitor.ID == "" {
		return failure.NotFound("monitor not found") // nolint:wrapcheck
	}

	if !monitor.Active {
		return failure.BadRequestFromString("monitor is not active") // nolint:wrapcheck
	}

	previous, err := s.repo.GetLatestHeartbeat(ctx, monitorID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get latest heartbeat")

		return fmt.Errorf("failed to get latest heartbeat: %w", err)
	}

	heartbeat := req.ToModel(monitorID)

	if err = s.repo.InsertHeartbeat(ctx, heartbeat); err != nil {
		log.Error().Err(err).Msg("failed to insert heartbeat")

		return fmt.Errorf("failed to insert heartbeat: %w", err)
	}

	if isStatusFlip(previous, heartbeat) {
		s.alert(ctx, monitor, previous, heartbeat)
	}

	return nil
}

func (s *serviceImpl) GetHeartbeats(ctx context.Context, monitorID string, from, to time.Time) (res dto.GetHeartbeatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetHeartbeats")
	defer scope.End()
	defer scope.TraceIfError(err)

	monitor, err := s.repo.Get(ctx, shared.FilterByID(monitorID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get monitor")

		return res, fmt.Errorf("failed to get monitor: %w", err)
	}

	if monitor.ID == "" {
		return res, failure.NotFound("monitor not found") // nolint:wrapcheck
	}

	if to.IsZero() {
		to = time.Now().UTC()
	}

	if from.IsZero() {
		from = to.Add(-24 * time.Hour)
	}

	heartbeats, err := s.repo.GetHeartbeats(ctx, monitorID, from, to)
	if err != nil {
		log.Error().Err(err).Msg("failed to get heartbeats")

		return res, fmt.Errorf("failed to get heartbeats: %w", err)
	}

	res.FromModels(heartbeats, monitor.Timezone)

	return res, nil
}

// isStatusFlip reports whether the new heartbeat is a transition worth
// alerting on. The first heartbeat ever and the initial pending->up
// settle-in are not.
func isStatusFlip(previous, next model.Heartbeat) bool {
	if previous.ID == "" {
		return false
	}

	if previous.Status == next.Status {
		return false
	}

	if previous.Status == model.StatusPending && next.Status == model.StatusUp {
		return false
	}

	return true
}

func (s *serviceImpl) alert(ctx context.Context, monitor model.Monitor, previous, heartbeat model.Heartbeat) {
	msg := fmt.Sprintf("%s is %s", monitor.Name, heartbeat.Status)
	if heartbeat.Status == model.StatusDown && heartbeat.Message != "" {
		msg = fmt.Sprintf("%s is down: %s", monitor.Name, heartbeat.Message)
	}

	checkedAt := heartbeat.CheckedAt.UTC().Format(time.RFC3339)

	monitorCtx := provider.MonitorContext{
		ID:   monitor.ID,
		Name: monitor.Name,
		URL:  monitor.URL,
	}

	providerHeartbeat := provider.Heartbeat{
		Status:   heartbeat.Status,
		Time:     checkedAt,
		Message:  heartbeat.Message,
		PingMs:   heartbeat.PingMs,
		Timezone: monitor.Timezone,
	}

	if err := s.notifier.Dispatch(ctx, monitorCtx, providerHeartbeat, msg); err != nil {
		log.Error().Err(err).Str("monitor_id", monitor.ID).Msg("failed to dispatch notifications")
	}

	event := StateChangeEvent{
		MonitorID:   monitor.ID,
		MonitorName: monitor.Name,
		From:        previous.Status,
		To:          heartbeat.Status,
		Message:     heartbeat.Message,
		CheckedAt:   checkedAt,
	}

	err := s.kafka.SendMessages(ctx, s.cfg.Kafka.Topics.MonitorEvents, kafka.Message{
		Key:   monitor.ID,
		Value: event,
	})
	if err != nil {
		log.Error().Err(err).Str("monitor_id", monitor.ID).Msg("failed to publish state-change event")
	}
}
