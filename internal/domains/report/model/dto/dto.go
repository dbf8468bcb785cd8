package dto

import (
	"vigil/shared/timezone"
)

type GenerateReportRequest struct {
	MonitorID string `json:"monitor_id" validate:"required"`
	From      string `json:"from" validate:"omitempty"`
	To        string `json:"to" validate:"omitempty"`
}

// UptimeReport is the document uploaded to object storage.
type UptimeReport struct {
	MonitorID     string                `json:"monitor_id"`
	MonitorName   string                `json:"monitor_name"`
	MonitorURL    string                `json:"monitor_url"`
	Timezone      string                `json:"timezone,omitempty"`
	Region        timezone.TimezoneInfo `json:"region"`
	From          string                `json:"from"`
	To            string                `json:"to"`
	FromLocal     string                `json:"from_local,omitempty"`
	ToLocal       string                `json:"to_local,omitempty"`
	TotalChecks   int                   `json:"total_checks"`
	UpChecks      int                   `json:"up_checks"`
	DownChecks    int                   `json:"down_checks"`
	UptimePercent float64               `json:"uptime_percent"`
	AveragePingMs float64               `json:"average_ping_ms"`
	GeneratedAt   string                `json:"generated_at"`
}

type GenerateReportResponse struct {
	Report    UptimeReport `json:"report"`
	ObjectURL string       `json:"object_url"`
}
