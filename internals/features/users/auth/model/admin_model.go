package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AdminModel is the single console credential. The console only offers
// registration while no row exists; at-most-one admin is a convention, not
// a storage constraint. Username matching is case-insensitive at the query
// layer.
type AdminModel struct {
	ID        uuid.UUID `gorm:"column:admin_id;type:uuid;primaryKey" json:"admin_id"`
	UserName  string    `gorm:"column:admin_user_name;size:50;not null;unique" json:"admin_user_name"`
	Password  string    `gorm:"column:admin_password;not null" json:"-"`
	IsActive  bool      `gorm:"column:admin_is_active;not null;default:true" json:"admin_is_active"`
	CreatedAt time.Time `gorm:"column:admin_created_at;autoCreateTime" json:"admin_created_at"`
	UpdatedAt time.Time `gorm:"column:admin_updated_at;autoUpdateTime" json:"admin_updated_at"`
}

func (AdminModel) TableName() string {
	return "admin_users"
}

func (m *AdminModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
