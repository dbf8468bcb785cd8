package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"vigil/config"
	"vigil/infras/otel/mocks"
	notificationMocks "vigil/internal/domains/notification/mocks"
	"vigil/internal/domains/notification/model"
	"vigil/internal/domains/notification/model/dto"
	"vigil/internal/domains/notification/provider"
	"vigil/internal/domains/notification/service"
	"vigil/shared/failure"

	"github.com/jmoiron/sqlx/types"
)

type fakeProvider struct {
	kind        string
	validateErr error
	sendErr     error
	sent        []string
}

func (f *fakeProvider) Kind() string { return f.kind }

func (f *fakeProvider) ValidateConfig(_ provider.Config) error { return f.validateErr }

func (f *fakeProvider) Send(_ context.Context, _ provider.Config, msg string, _ *provider.MonitorContext, _ *provider.Heartbeat) error {
	f.sent = append(f.sent, msg)

	return f.sendErr
}

func TestNotificationService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := notificationMocks.NewMockNotification(ctrl)
	mockOtel := mocks.NewOtel()

	slack := &fakeProvider{kind: provider.KindSlack}
	registry := provider.NewRegistry(slack)

	svc := service.New(mockRepo, registry, &config.Config{}, mockOtel)

	tests := []struct {
		name      string
		req       dto.CreateNotificationRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful creation",
			req: dto.CreateNotificationRequest{
				Name:   "ops channel",
				Kind:   provider.KindSlack,
				Config: map[string]string{"webhookURL": "https://hooks.example.com/x", "channel": "#ops", "username": "vigil"},
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
		},
		{
			name: "unsupported kind",
			req: dto.CreateNotificationRequest{
				Name:   "pager",
				Kind:   "pagerduty",
				Config: map[string]string{},
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name: "repository error",
			req: dto.CreateNotificationRequest{
				Name:   "ops channel",
				Kind:   provider.KindSlack,
				Config: map[string]string{"webhookURL": "https://hooks.example.com/x", "channel": "#ops", "username": "vigil"},
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
				require.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNotificationService_CreateInvalidConfig(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := notificationMocks.NewMockNotification(ctrl)

	slack := &fakeProvider{
		kind:        provider.KindSlack,
		validateErr: &provider.ConfigError{Field: provider.SlackFieldChannel},
	}
	registry := provider.NewRegistry(slack)

	svc := service.New(mockRepo, registry, &config.Config{}, mocks.NewOtel())

	err := svc.Create(context.Background(), dto.CreateNotificationRequest{
		Name:   "ops channel",
		Kind:   provider.KindSlack,
		Config: map[string]string{"webhookURL": "https://hooks.example.com/x"},
	})

	require.Error(t, err)
	assert.Equal(t, 400, failure.GetCode(err))
	assert.Contains(t, err.Error(), provider.SlackFieldChannel)
}

func TestNotificationService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := notificationMocks.NewMockNotification(ctrl)
	registry := provider.NewRegistry(&fakeProvider{kind: provider.KindSlack})

	svc := service.New(mockRepo, registry, &config.Config{}, mocks.NewOtel())

	stored := model.Notification{
		ID:     "n-1",
		Name:   "ops channel",
		Kind:   provider.KindSlack,
		Active: true,
		Config: types.JSONText(`{"webhookURL":"https://hooks.example.com/x","channel":"#ops","username":"vigil"}`),
	}

	tests := []struct {
		name      string
		id        string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "found",
			id:   "n-1",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(stored, nil)
			},
		},
		{
			name: "not found",
			id:   "missing",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Notification{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Get(context.Background(), tt.id)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "n-1", res.ID)
			assert.Equal(t, "#ops", res.Config["channel"])
		})
	}
}

func TestNotificationService_UpdateEmptyRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := notificationMocks.NewMockNotification(ctrl)
	registry := provider.NewRegistry(&fakeProvider{kind: provider.KindSlack})

	svc := service.New(mockRepo, registry, &config.Config{}, mocks.NewOtel())

	err := svc.Update(context.Background(), dto.UpdateNotificationRequest{}, "n-1")

	require.Error(t, err)
	assert.Equal(t, 400, failure.GetCode(err))
}

func TestNotificationService_Test(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := notificationMocks.NewMockNotification(ctrl)

	slack := &fakeProvider{kind: provider.KindSlack}
	registry := provider.NewRegistry(slack)

	cfg := &config.Config{}
	cfg.App.Name = "vigil"

	svc := service.New(mockRepo, registry, cfg, mocks.NewOtel())

	mockRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(model.Notification{
			ID:     "n-1",
			Kind:   provider.KindSlack,
			Config: types.JSONText(`{"webhookURL":"https://hooks.example.com/x","channel":"#ops","username":"vigil"}`),
		}, nil)

	err := svc.Test(context.Background(), "n-1")

	require.NoError(t, err)
	require.Len(t, slack.sent, 1)
	assert.Equal(t, "Test notification from vigil", slack.sent[0])
}

func TestNotificationService_Dispatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := notificationMocks.NewMockNotification(ctrl)

	slack := &fakeProvider{kind: provider.KindSlack, sendErr: errors.New("webhook rejected")}
	webhook := &fakeProvider{kind: provider.KindWebhook}
	registry := provider.NewRegistry(slack, webhook)

	svc := service.New(mockRepo, registry, &config.Config{}, mocks.NewOtel())

	targets := []model.Notification{
		{ID: "n-1", Kind: provider.KindSlack, Active: true, Config: types.JSONText(`{}`)},
		{ID: "n-2", Kind: "pagerduty", Active: true, Config: types.JSONText(`{}`)},
		{ID: "n-3", Kind: provider.KindWebhook, Active: true, Config: types.JSONText(`{}`)},
	}

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(targets, nil)

	monitor := provider.MonitorContext{ID: "m-1", Name: "api"}
	heartbeat := provider.Heartbeat{Status: "down", Time: "2024-06-15T12:00:00Z", Timezone: "Europe/Amsterdam"}

	err := svc.Dispatch(context.Background(), monitor, heartbeat, "api is down")

	// one target failing or being unknown must not block the rest
	require.NoError(t, err)
	assert.Len(t, slack.sent, 1)
	require.Len(t, webhook.sent, 1)
	assert.Equal(t, "api is down", webhook.sent[0])
}
