package dto

import (
	"time"

	"campushub_backend/internals/features/users/auth/model"
)

// ============================
// Request DTO
// ============================

type RegisterRequest struct {
	UserName        string `json:"user_name" validate:"required,min=3,max=50"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

type LoginRequest struct {
	UserName string `json:"user_name" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ============================
// Response DTO
// ============================

type AdminResponse struct {
	AdminID       string    `json:"admin_id"`
	AdminUserName string    `json:"admin_user_name"`
	CreatedAt     time.Time `json:"created_at"`
}

type SessionResponse struct {
	AccessToken string        `json:"access_token"`
	ExpiresAt   time.Time     `json:"expires_at"`
	Admin       AdminResponse `json:"admin"`
}

func ToAdminResponse(m model.AdminModel) AdminResponse {
	return AdminResponse{
		AdminID:       m.ID.String(),
		AdminUserName: m.UserName,
		CreatedAt:     m.CreatedAt,
	}
}
