package model

import "vigil/shared/model"

const (
	TableName  = "settings"
	EntityName = "setting"

	FieldKey   = "key"
	FieldValue = "value"
)

// Well-known setting keys.
const (
	KeyPrimaryBaseURL = "primary_base_url"
)

type Setting struct {
	Key   string `db:"key"`
	Value string `db:"value"`
	model.Metadata
}
