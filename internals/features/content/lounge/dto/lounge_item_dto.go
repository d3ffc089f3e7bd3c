package dto

import (
	"time"

	"campushub_backend/internals/features/content/lounge/model"
)

type LoungeItemDTO struct {
	LoungeItemID        string    `json:"lounge_item_id"`
	LoungeItemTitle     string    `json:"lounge_item_title"`
	LoungeItemContent   string    `json:"lounge_item_content"`
	LoungeItemCreatedAt time.Time `json:"lounge_item_created_at"`
	LoungeItemUpdatedAt time.Time `json:"lounge_item_updated_at"`
}

type SaveLoungeItemRequest struct {
	LoungeItemTitle   string `json:"lounge_item_title" form:"lounge_item_title" validate:"required"`
	LoungeItemContent string `json:"lounge_item_content" form:"lounge_item_content" validate:"required"`
}

func ToLoungeItemDTO(m model.LoungeItemModel) LoungeItemDTO {
	return LoungeItemDTO{
		LoungeItemID:        m.LoungeItemID.String(),
		LoungeItemTitle:     m.LoungeItemTitle,
		LoungeItemContent:   m.LoungeItemContent,
		LoungeItemCreatedAt: m.LoungeItemCreatedAt,
		LoungeItemUpdatedAt: m.LoungeItemUpdatedAt,
	}
}

func ToLoungeItemDTOs(ms []model.LoungeItemModel) []LoungeItemDTO {
	out := make([]LoungeItemDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToLoungeItemDTO(m))
	}
	return out
}
