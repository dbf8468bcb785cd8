package dto

import (
	"time"
	"vigil/internal/domains/monitor/model"
	"vigil/shared"
	gDto "vigil/shared/dto"
	gModel "vigil/shared/model"
	"vigil/shared/timezone"

	"github.com/google/uuid"
)

type CreateMonitorRequest struct {
	Name            string `json:"name" validate:"required,max=255"`
	URL             string `json:"url" validate:"required,url,max=2048"`
	Type            string `json:"type" validate:"omitempty,oneof=http tcp ping"`
	IntervalSeconds int    `json:"interval_seconds" validate:"omitempty,min=10"`
	Timezone        string `json:"timezone" validate:"omitempty,tzid"`
	Active          *bool  `json:"active" validate:"omitempty"`
}

func (c *CreateMonitorRequest) ToModel(actor string) model.Monitor {
	monitorType := c.Type
	if monitorType == "" {
		monitorType = "http"
	}

	interval := c.IntervalSeconds
	if interval == 0 {
		interval = 60
	}

	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Monitor{
		ID:              uuid.NewString(),
		Name:            c.Name,
		URL:             c.URL,
		Type:            monitorType,
		IntervalSeconds: interval,
		Timezone:        c.Timezone,
		Active:          active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  actor,
			ModifiedBy: actor,
		},
	}
}

type UpdateMonitorRequest struct {
	Name            string `db:"name" json:"name" validate:"omitempty,max=255"`
	URL             string `db:"url" json:"url" validate:"omitempty,url,max=2048"`
	Type            string `db:"type" json:"type" validate:"omitempty,oneof=http tcp ping"`
	IntervalSeconds int    `db:"interval_seconds" json:"interval_seconds" validate:"omitempty,min=10"`
	Timezone        string `db:"timezone" json:"timezone" validate:"omitempty,tzid"`
	Active          *bool  `db:"active" json:"active" validate:"omitempty"`
}

type MonitorResponse struct {
	ID              string                `json:"id"`
	Name            string                `json:"name"`
	URL             string                `json:"url"`
	Type            string                `json:"type"`
	IntervalSeconds int                   `json:"interval_seconds"`
	Timezone        string                `json:"timezone"`
	Region          timezone.TimezoneInfo `json:"region"`
	Active          bool                  `json:"active"`
	gDto.Metadata
}

func (r *MonitorResponse) FromModel(mod model.Monitor) {
	r.ID = mod.ID
	r.Name = mod.Name
	r.URL = mod.URL
	r.Type = mod.Type
	r.IntervalSeconds = mod.IntervalSeconds
	r.Timezone = mod.Timezone
	r.Region = timezone.Resolve(mod.Timezone)
	r.Active = mod.Active
	r.Metadata.FromModel(mod.Metadata)
}

type GetMonitorsResponse struct {
	Monitors  []MonitorResponse `json:"monitors"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetMonitorsResponse) FromModels(models []model.Monitor, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Monitors = make([]MonitorResponse, len(models))
	for i, mod := range models {
		r.Monitors[i].FromModel(mod)
	}
}

type RecordHeartbeatRequest struct {
	Status  string `json:"status" validate:"required,oneof=up down pending"`
	Message string `json:"message" validate:"omitempty,max=2048"`
	PingMs  int64  `json:"ping_ms" validate:"omitempty,min=0"`
}

func (c *RecordHeartbeatRequest) ToModel(monitorID string) model.Heartbeat {
	return model.Heartbeat{
		ID:        uuid.NewString(),
		MonitorID: monitorID,
		Status:    c.Status,
		Message:   c.Message,
		PingMs:    c.PingMs,
		CheckedAt: timezone.Now().UTC(),
	}
}

type HeartbeatResponse struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	Message      string `json:"message,omitempty"`
	PingMs       int64  `json:"ping_ms"`
	CheckedAt    string `json:"checked_at"`
	LocalWeekday string `json:"local_weekday,omitempty"`
	LocalDate    string `json:"local_date,omitempty"`
	LocalClock   string `json:"local_clock,omitempty"`
}

// FromModel renders the heartbeat with its local-time view in the
// monitor's timezone. Unknown timezones leave the local fields empty.
func (r *HeartbeatResponse) FromModel(mod model.Heartbeat, tzID string) {
	utc := mod.CheckedAt.UTC().Format(time.RFC3339)

	r.ID = mod.ID
	r.Status = mod.Status
	r.Message = mod.Message
	r.PingMs = mod.PingMs
	r.CheckedAt = utc
	r.LocalWeekday = timezone.FormatWeekday(utc, tzID)
	r.LocalDate = timezone.FormatDate(utc, tzID)
	r.LocalClock = timezone.FormatClockTime(utc, tzID)
}

type GetHeartbeatsResponse struct {
	Heartbeats []HeartbeatResponse `json:"heartbeats"`
	TotalData  int                 `json:"total_data"`
}

func (r *GetHeartbeatsResponse) FromModels(models []model.Heartbeat, tzID string) {
	r.TotalData = len(models)

	r.Heartbeats = make([]HeartbeatResponse, len(models))
	for i, mod := range models {
		r.Heartbeats[i].FromModel(mod, tzID)
	}
}
