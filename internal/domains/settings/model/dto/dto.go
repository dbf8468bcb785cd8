package dto

import (
	"vigil/internal/domains/settings/model"
	"vigil/shared"
	gDto "vigil/shared/dto"
	gModel "vigil/shared/model"
	"vigil/shared/timezone"
)

type SetSettingRequest struct {
	Value string `json:"value" validate:"required,max=2048"`
}

func (c *SetSettingRequest) ToModel(key, actor string) model.Setting {
	return model.Setting{
		Key:   key,
		Value: c.Value,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  actor,
			ModifiedBy: actor,
		},
	}
}

type SettingResponse struct {
	Key   string `json:"key"`
	Value string `json:"value"`
	gDto.Metadata
}

func (r *SettingResponse) FromModel(mod model.Setting) {
	r.Key = mod.Key
	r.Value = mod.Value
	r.Metadata.FromModel(mod.Metadata)
}

type GetSettingsResponse struct {
	Settings  []SettingResponse `json:"settings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetSettingsResponse) FromModels(models []model.Setting, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Settings = make([]SettingResponse, len(models))
	for i, mod := range models {
		r.Settings[i].FromModel(mod)
	}
}
