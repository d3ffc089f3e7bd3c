package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LifeItemModel struct {
	LifeItemID        uuid.UUID `gorm:"column:life_item_id;type:uuid;primaryKey" json:"life_item_id"`
	LifeItemTitle     string    `gorm:"column:life_item_title;type:varchar(255);not null" json:"life_item_title"`
	LifeItemContent   string    `gorm:"column:life_item_content;type:text;not null" json:"life_item_content"`
	LifeItemCreatedAt time.Time `gorm:"column:life_item_created_at;autoCreateTime" json:"life_item_created_at"`
	LifeItemUpdatedAt time.Time `gorm:"column:life_item_updated_at;autoUpdateTime" json:"life_item_updated_at"`
}

func (LifeItemModel) TableName() string {
	return "life_items"
}

func (m *LifeItemModel) BeforeCreate(tx *gorm.DB) error {
	if m.LifeItemID == uuid.Nil {
		m.LifeItemID = uuid.New()
	}
	return nil
}
