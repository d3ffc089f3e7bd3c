package repository

import (
	"time"

	"gorm.io/gorm"

	authModel "campushub_backend/internals/features/users/auth/model"
)

/* ====================== ADMIN ====================== */

// FindAdminByUserName matches case-insensitively: registering "admin" and
// logging in as "ADMIN" hit the same row.
func FindAdminByUserName(db *gorm.DB, userName string) (*authModel.AdminModel, error) {
	var admin authModel.AdminModel
	if err := db.Where("LOWER(admin_user_name) = LOWER(?)", userName).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func CountAdmins(db *gorm.DB) (int64, error) {
	var n int64
	err := db.Model(&authModel.AdminModel{}).Count(&n).Error
	return n, err
}

func CreateAdmin(db *gorm.DB, admin *authModel.AdminModel) error {
	return db.Create(admin).Error
}

/* ====================== BLACKLIST TOKEN ====================== */

func BlacklistToken(db *gorm.DB, token string, ttl time.Duration) error {
	return db.Create(&authModel.TokenBlacklist{
		Token:     token,
		ExpiredAt: time.Now().UTC().Add(ttl),
	}).Error
}
