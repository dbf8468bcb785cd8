package model

import (
	"time"
	"vigil/shared/model"
)

const (
	TableName  = "monitors"
	EntityName = "monitor"

	FieldID              = "id"
	FieldName            = "name"
	FieldURL             = "url"
	FieldType            = "type"
	FieldIntervalSeconds = "interval_seconds"
	FieldTimezone        = "timezone"
	FieldActive          = "active"
)

const (
	HeartbeatTableName  = "heartbeats"
	HeartbeatEntityName = "heartbeat"

	HeartbeatFieldID        = "id"
	HeartbeatFieldMonitorID = "monitor_id"
	HeartbeatFieldStatus    = "status"
	HeartbeatFieldMessage   = "message"
	HeartbeatFieldPingMs    = "ping_ms"
	HeartbeatFieldCheckedAt = "checked_at"
)

const (
	StatusUp      = "up"
	StatusDown    = "down"
	StatusPending = "pending"
)

type Monitor struct {
	ID              string `db:"id"`
	Name            string `db:"name"`
	URL             string `db:"url"`
	Type            string `db:"type"`
	IntervalSeconds int    `db:"interval_seconds"`
	Timezone        string `db:"timezone"`
	Active          bool   `db:"active"`
	model.Metadata
}

// Heartbeat rows are immutable once written.
type Heartbeat struct {
	ID        string    `db:"id"`
	MonitorID string    `db:"monitor_id"`
	Status    string    `db:"status"`
	Message   string    `db:"message"`
	PingMs    int64     `db:"ping_ms"`
	CheckedAt time.Time `db:"checked_at"`
}
