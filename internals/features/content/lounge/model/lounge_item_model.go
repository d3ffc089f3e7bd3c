package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LoungeItemModel struct {
	LoungeItemID        uuid.UUID `gorm:"column:lounge_item_id;type:uuid;primaryKey" json:"lounge_item_id"`
	LoungeItemTitle     string    `gorm:"column:lounge_item_title;type:varchar(255);not null" json:"lounge_item_title"`
	LoungeItemContent   string    `gorm:"column:lounge_item_content;type:text;not null" json:"lounge_item_content"`
	LoungeItemCreatedAt time.Time `gorm:"column:lounge_item_created_at;autoCreateTime" json:"lounge_item_created_at"`
	LoungeItemUpdatedAt time.Time `gorm:"column:lounge_item_updated_at;autoUpdateTime" json:"lounge_item_updated_at"`
}

func (LoungeItemModel) TableName() string {
	return "lounge_items"
}

func (m *LoungeItemModel) BeforeCreate(tx *gorm.DB) error {
	if m.LoungeItemID == uuid.Nil {
		m.LoungeItemID = uuid.New()
	}
	return nil
}
