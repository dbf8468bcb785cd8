package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"vigil/config"
	kafkaMocks "vigil/infras/kafka/mocks"
	"vigil/infras/otel/mocks"
	monitorMocks "vigil/internal/domains/monitor/mocks"
	"vigil/internal/domains/monitor/model"
	"vigil/internal/domains/monitor/service"
	"vigil/internal/domains/notification/provider"
	"vigil/shared/failure"

	"vigil/internal/domains/monitor/model/dto"
)

type fakeNotifier struct {
	calls []dispatchCall
	err   error
}

type dispatchCall struct {
	monitor   provider.MonitorContext
	heartbeat provider.Heartbeat
	msg       string
}

func (f *fakeNotifier) Dispatch(_ context.Context, monitor provider.MonitorContext, heartbeat provider.Heartbeat, msg string) error {
	f.calls = append(f.calls, dispatchCall{monitor: monitor, heartbeat: heartbeat, msg: msg})

	return f.err
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Kafka.Topics.MonitorEvents = "monitor-events"

	return cfg
}

func TestMonitorService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := monitorMocks.NewMockMonitor(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)

	svc := service.New(mockRepo, &fakeNotifier{}, mockKafka, newTestConfig(), mocks.NewOtel())

	tests := []struct {
		name      string
		req       dto.CreateMonitorRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful creation",
			req: dto.CreateMonitorRequest{
				Name:     "api",
				URL:      "https://api.example.com/health",
				Timezone: "Europe/Amsterdam",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "repository error",
			req: dto.CreateMonitorRequest{
				Name: "api",
				URL:  "https://api.example.com/health",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Create(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMonitorService_RecordHeartbeatStatusFlip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := monitorMocks.NewMockMonitor(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	notifier := &fakeNotifier{}

	svc := service.New(mockRepo, notifier, mockKafka, newTestConfig(), mocks.NewOtel())

	monitor := model.Monitor{
		ID:       "m-1",
		Name:     "api",
		URL:      "https://api.example.com",
		Timezone: "Europe/Amsterdam",
		Active:   true,
	}

	mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(monitor, nil)
	mockRepo.EXPECT().
		GetLatestHeartbeat(gomock.Any(), "m-1").
		Return(model.Heartbeat{ID: "hb-0", Status: model.StatusUp}, nil)
	mockRepo.EXPECT().
		InsertHeartbeat(gomock.Any(), gomock.Any()).
		Return(nil)
	mockKafka.EXPECT().
		SendMessages(gomock.Any(), "monitor-events", gomock.Any()).
		Return(nil)

	err := svc.RecordHeartbeat(context.Background(), "m-1", dto.RecordHeartbeatRequest{
		Status:  model.StatusDown,
		Message: "connection refused",
	})

	require.NoError(t, err)
	require.Len(t, notifier.calls, 1)
	assert.Equal(t, "api is down: connection refused", notifier.calls[0].msg)
	assert.Equal(t, "m-1", notifier.calls[0].monitor.ID)
	assert.Equal(t, model.StatusDown, notifier.calls[0].heartbeat.Status)
	assert.Equal(t, "Europe/Amsterdam", notifier.calls[0].heartbeat.Timezone)
}

func TestMonitorService_RecordHeartbeatNoFlip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := monitorMocks.NewMockMonitor(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	notifier := &fakeNotifier{}

	svc := service.New(mockRepo, notifier, mockKafka, newTestConfig(), mocks.NewOtel())

	monitor := model.Monitor{ID: "m-1", Name: "api", Active: true}

	tests := []struct {
		name     string
		previous model.Heartbeat
		status   string
	}{
		{
			name:     "same status",
			previous: model.Heartbeat{ID: "hb-0", Status: model.StatusUp},
			status:   model.StatusUp,
		},
		{
			name:     "first heartbeat",
			previous: model.Heartbeat{},
			status:   model.StatusDown,
		},
		{
			name:     "pending settles to up",
			previous: model.Heartbeat{ID: "hb-0", Status: model.StatusPending},
			status:   model.StatusUp,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo.EXPECT().
				Get(gomock.Any(), gomock.Any()).
				Return(monitor, nil)
			mockRepo.EXPECT().
				GetLatestHeartbeat(gomock.Any(), "m-1").
				Return(tt.previous, nil)
			mockRepo.EXPECT().
				InsertHeartbeat(gomock.Any(), gomock.Any()).
				Return(nil)

			err := svc.RecordHeartbeat(context.Background(), "m-1", dto.RecordHeartbeatRequest{Status: tt.status})

			require.NoError(t, err)
			assert.Empty(t, notifier.calls)
		})
	}
}

func TestMonitorService_RecordHeartbeatAlertFailuresDoNotFailWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := monitorMocks.NewMockMonitor(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	notifier := &fakeNotifier{err: errors.New("all targets down")}

	svc := service.New(mockRepo, notifier, mockKafka, newTestConfig(), mocks.NewOtel())

	mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Monitor{ID: "m-1", Name: "api", Active: true}, nil)
	mockRepo.EXPECT().
		GetLatestHeartbeat(gomock.Any(), "m-1").
		Return(model.Heartbeat{ID: "hb-0", Status: model.StatusDown}, nil)
	mockRepo.EXPECT().
		InsertHeartbeat(gomock.Any(), gomock.Any()).
		Return(nil)
	mockKafka.EXPECT().
		SendMessages(gomock.Any(), "monitor-events", gomock.Any()).
		Return(errors.New("broker unavailable"))

	err := svc.RecordHeartbeat(context.Background(), "m-1", dto.RecordHeartbeatRequest{Status: model.StatusUp})

	assert.NoError(t, err)
}

func TestMonitorService_RecordHeartbeatGuards(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := monitorMocks.NewMockMonitor(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)

	svc := service.New(mockRepo, &fakeNotifier{}, mockKafka, newTestConfig(), mocks.NewOtel())

	tests := []struct {
		name     string
		monitor  model.Monitor
		wantCode int
	}{
		{
			name:     "monitor not found",
			monitor:  model.Monitor{},
			wantCode: 404,
		},
		{
			name:     "monitor inactive",
			monitor:  model.Monitor{ID: "m-1", Active: false},
			wantCode: 400,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo.EXPECT().
				Get(gomock.Any(), gomock.Any()).
				Return(tt.monitor, nil)

			err := svc.RecordHeartbeat(context.Background(), "m-1", dto.RecordHeartbeatRequest{Status: model.StatusUp})

			require.Error(t, err)
			assert.Equal(t, tt.wantCode, failure.GetCode(err))
		})
	}
}

func TestMonitorService_GetHeartbeats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := monitorMocks.NewMockMonitor(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)

	svc := service.New(mockRepo, &fakeNotifier{}, mockKafka, newTestConfig(), mocks.NewOtel())

	checkedAt := time.Date(2024, 12, 31, 23, 0, 0, 0, time.UTC)

	mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Monitor{ID: "m-1", Timezone: "Europe/Amsterdam", Active: true}, nil)
	mockRepo.EXPECT().
		GetHeartbeats(gomock.Any(), "m-1", gomock.Any(), gomock.Any()).
		Return([]model.Heartbeat{
			{ID: "hb-1", MonitorID: "m-1", Status: model.StatusUp, PingMs: 42, CheckedAt: checkedAt},
		}, nil)

	res, err := svc.GetHeartbeats(context.Background(), "m-1", time.Time{}, time.Time{})

	require.NoError(t, err)
	require.Len(t, res.Heartbeats, 1)
	assert.Equal(t, "2024-12-31T23:00:00Z", res.Heartbeats[0].CheckedAt)
	assert.Equal(t, "Wednesday", res.Heartbeats[0].LocalWeekday)
	assert.Equal(t, "Jan 01, 2025", res.Heartbeats[0].LocalDate)
	assert.Equal(t, "00:00:00", res.Heartbeats[0].LocalClock)
}
