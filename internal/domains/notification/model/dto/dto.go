package dto

import (
	"encoding/json"
	"fmt"
	"vigil/internal/domains/notification/model"
	"vigil/shared"
	gDto "vigil/shared/dto"
	gModel "vigil/shared/model"
	"vigil/shared/timezone"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx/types"
	"github.com/rs/zerolog/log"
)

type CreateNotificationRequest struct {
	Name   string            `json:"name" validate:"required,max=255"`
	Kind   string            `json:"kind" validate:"required,oneof=slack webhook"`
	Active *bool             `json:"active" validate:"omitempty"`
	Config map[string]string `json:"config" validate:"required"`
}

func (c *CreateNotificationRequest) ToModel(actor string) (model.Notification, error) {
	cfg, err := json.Marshal(c.Config)
	if err != nil {
		return model.Notification{}, fmt.Errorf("failed to marshal notification config: %w", err)
	}

	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Notification{
		ID:     uuid.NewString(),
		Name:   c.Name,
		Kind:   c.Kind,
		Active: active,
		Config: types.JSONText(cfg),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  actor,
			ModifiedBy: actor,
		},
	}, nil
}

type UpdateNotificationRequest struct {
	Name   string            `db:"name" json:"name" validate:"omitempty,max=255"`
	Active *bool             `db:"active" json:"active" validate:"omitempty"`
	Config map[string]string `json:"config" validate:"omitempty"`
}

type NotificationResponse struct {
	ID     string            `json:"id"`
	Name   string            `json:"name"`
	Kind   string            `json:"kind"`
	Active bool              `json:"active"`
	Config map[string]string `json:"config"`
	gDto.Metadata
}

func (r *NotificationResponse) FromModel(mod model.Notification) {
	r.ID = mod.ID
	r.Name = mod.Name
	r.Kind = mod.Kind
	r.Active = mod.Active
	r.Metadata.FromModel(mod.Metadata)

	if err := json.Unmarshal(mod.Config, &r.Config); err != nil {
		log.Warn().Err(err).Str("notification_id", mod.ID).Msg("failed to decode stored notification config")
	}
}

type GetNotificationsResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	TotalPage     int                    `json:"total_page"`
	TotalData     int                    `json:"total_data"`
}

func (r *GetNotificationsResponse) FromModels(models []model.Notification, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Notifications = make([]NotificationResponse, len(models))
	for i, mod := range models {
		r.Notifications[i].FromModel(mod)
	}
}
