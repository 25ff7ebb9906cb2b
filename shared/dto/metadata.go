package dto

import (
	"usertodo/shared/constant"
	"usertodo/shared/model"
	"usertodo/shared/timezone"
)

type Metadata struct {
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func (m *Metadata) FromModel(model model.Metadata) {
	m.CreatedAt = timezone.WallClock(model.CreatedAt).Format(constant.DateFormat)
	m.UpdatedAt = timezone.WallClock(model.UpdatedAt).Format(constant.DateFormat)
}
