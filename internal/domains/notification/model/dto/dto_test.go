package dto_test

import (
	"testing"

	"vigil/internal/domains/notification/model"
	"vigil/internal/domains/notification/model/dto"
	gModel "vigil/shared/model"
	"vigil/shared/timezone"

	"github.com/jmoiron/sqlx/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateNotificationRequest_ToModel(t *testing.T) {
	req := dto.CreateNotificationRequest{
		Name: "ops-slack",
		Kind: "slack",
		Config: map[string]string{
			"webhookURL": "https://hooks.slack.com/services/T000/B000/XXX",
			"channel":    "#ops",
			"username":   "vigil",
		},
	}

	actor := "api-key"
	mod, err := req.ToModel(actor)

	require.NoError(t, err)
	assert.NotEmpty(t, mod.ID, "expected ID to be generated")
	assert.Equal(t, req.Name, mod.Name)
	assert.Equal(t, req.Kind, mod.Kind)
	assert.True(t, mod.Active, "expected active to default to true")
	assert.Equal(t, actor, mod.CreatedBy)
	assert.Equal(t, actor, mod.ModifiedBy)
	assert.False(t, mod.CreatedAt.IsZero(), "expected CreatedAt to be set")

	assert.JSONEq(t, `{
		"webhookURL": "https://hooks.slack.com/services/T000/B000/XXX",
		"channel": "#ops",
		"username": "vigil"
	}`, string(mod.Config))
}

func TestCreateNotificationRequest_ToModelExplicitInactive(t *testing.T) {
	active := false
	req := dto.CreateNotificationRequest{
		Name:   "ops-webhook",
		Kind:   "webhook",
		Active: &active,
		Config: map[string]string{"url": "https://hooks.example.com/vigil"},
	}

	mod, err := req.ToModel("api-key")

	require.NoError(t, err)
	assert.False(t, mod.Active)
}

func TestNotificationResponse_FromModel(t *testing.T) {
	now := timezone.Now()
	notificationModel := model.Notification{
		ID:     "test-id",
		Name:   "ops-slack",
		Kind:   "slack",
		Active: true,
		Config: types.JSONText(`{"webhookURL":"https://hooks.slack.com/services/T000/B000/XXX","channel":"#ops","username":"vigil"}`),
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  "api-key",
			ModifiedBy: "api-key",
		},
	}

	var response dto.NotificationResponse
	response.FromModel(notificationModel)

	assert.Equal(t, notificationModel.ID, response.ID)
	assert.Equal(t, notificationModel.Name, response.Name)
	assert.Equal(t, notificationModel.Kind, response.Kind)
	assert.Equal(t, "#ops", response.Config["channel"])
	assert.Equal(t, notificationModel.CreatedBy, response.CreatedBy)
}

func TestNotificationResponse_FromModelBadConfig(t *testing.T) {
	notificationModel := model.Notification{
		ID:     "test-id",
		Name:   "ops-slack",
		Kind:   "slack",
		Config: types.JSONText(`not-json`),
	}

	var response dto.NotificationResponse
	response.FromModel(notificationModel)

	assert.Equal(t, notificationModel.ID, response.ID)
	assert.Nil(t, response.Config, "expected config to stay empty when stored JSON is invalid")
}

func TestGetNotificationsResponse_FromModels(t *testing.T) {
	now := timezone.Now()
	notifications := []model.Notification{
		{
			ID:     "test-id-1",
			Name:   "ops-slack",
			Kind:   "slack",
			Active: true,
			Config: types.JSONText(`{"webhookURL":"https://hooks.slack.com/services/T000/B000/XXX"}`),
			Metadata: gModel.Metadata{
				CreatedAt:  now,
				ModifiedAt: now,
				CreatedBy:  "api-key",
				ModifiedBy: "api-key",
			},
		},
		{
			ID:     "test-id-2",
			Name:   "ops-webhook",
			Kind:   "webhook",
			Active: false,
			Config: types.JSONText(`{"url":"https://hooks.example.com/vigil"}`),
			Metadata: gModel.Metadata{
				CreatedAt:  now,
				ModifiedAt: now,
				CreatedBy:  "api-key",
				ModifiedBy: "api-key",
			},
		},
	}

	var response dto.GetNotificationsResponse
	response.FromModels(notifications, 15, 10)

	assert.Equal(t, 15, response.TotalData)
	assert.Equal(t, 2, response.TotalPage)
	assert.Len(t, response.Notifications, len(notifications))

	for i, notification := range response.Notifications {
		assert.Equal(t, notifications[i].ID, notification.ID)
		assert.Equal(t, notifications[i].Kind, notification.Kind)
	}
}
