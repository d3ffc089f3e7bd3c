package dto

import (
	"time"

	"campushub_backend/internals/features/content/life/model"
)

type LifeItemDTO struct {
	LifeItemID        string    `json:"life_item_id"`
	LifeItemTitle     string    `json:"life_item_title"`
	LifeItemContent   string    `json:"life_item_content"`
	LifeItemCreatedAt time.Time `json:"life_item_created_at"`
	LifeItemUpdatedAt time.Time `json:"life_item_updated_at"`
}

type SaveLifeItemRequest struct {
	LifeItemTitle   string `json:"life_item_title" form:"life_item_title" validate:"required"`
	LifeItemContent string `json:"life_item_content" form:"life_item_content" validate:"required"`
}

func ToLifeItemDTO(m model.LifeItemModel) LifeItemDTO {
	return LifeItemDTO{
		LifeItemID:        m.LifeItemID.String(),
		LifeItemTitle:     m.LifeItemTitle,
		LifeItemContent:   m.LifeItemContent,
		LifeItemCreatedAt: m.LifeItemCreatedAt,
		LifeItemUpdatedAt: m.LifeItemUpdatedAt,
	}
}

func ToLifeItemDTOs(ms []model.LifeItemModel) []LifeItemDTO {
	out := make([]LifeItemDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToLifeItemDTO(m))
	}
	return out
}
