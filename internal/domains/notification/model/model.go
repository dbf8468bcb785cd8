package model

import (
	"vigil/shared/model"

	"github.com/jmoiron/sqlx/types"
)

const (
	TableName  = "notifications"
	EntityName = "notification"

	FieldID     = "id"
	FieldName   = "name"
	FieldKind   = "kind"
	FieldActive = "active"
	FieldConfig = "config"
)

type Notification struct {
	ID     string         `db:"id"`
	Name   string         `db:"name"`
	Kind   string         `db:"kind"`
	Active bool           `db:"active"`
	Config types.JSONText `db:"config"`
	model.Metadata
}
