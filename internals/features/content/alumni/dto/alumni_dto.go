package dto

import (
	"time"

	"campushub_backend/internals/features/content/alumni/model"

	"github.com/google/uuid"
)

/* =============================== */
/* ========== Requests =========== */
/* =============================== */

type SaveFeaturedAlumnusRequest struct {
	Name         string   `json:"name" form:"name" validate:"required,min=2,max=255"`
	Batch        string   `json:"batch" form:"batch" validate:"required,max=50"`
	Role         string   `json:"role" form:"role" validate:"required,max=255"`
	Company      string   `json:"company" form:"company" validate:"required,max=255"`
	Quote        string   `json:"quote" form:"quote" validate:"omitempty"`
	Achievements []string `json:"achievements" form:"achievements" validate:"omitempty,dive,min=1"`
	ClearImage   bool     `json:"clear_image" form:"clear_image"`
}

type SaveSuccessStoryRequest struct {
	Name       string `json:"name" form:"name" validate:"required,min=2,max=255"`
	Batch      string `json:"batch" form:"batch" validate:"required,max=50"`
	Role       string `json:"role" form:"role" validate:"required,max=255"`
	Company    string `json:"company" form:"company" validate:"required,max=255"`
	Location   string `json:"location" form:"location" validate:"omitempty,max=255"`
	StoryURL   string `json:"story_url" form:"story_url" validate:"omitempty,url"`
	ClearImage bool   `json:"clear_image" form:"clear_image"`
}

/* =============================== */
/* ========== Responses ========== */
/* =============================== */

type FeaturedAlumnusResponse struct {
	FeaturedAlumnusID           uuid.UUID `json:"featured_alumnus_id"`
	FeaturedAlumnusName         string    `json:"featured_alumnus_name"`
	FeaturedAlumnusBatch        string    `json:"featured_alumnus_batch"`
	FeaturedAlumnusRole         string    `json:"featured_alumnus_role"`
	FeaturedAlumnusCompany      string    `json:"featured_alumnus_company"`
	FeaturedAlumnusImageURL     string    `json:"featured_alumnus_image_url"`
	FeaturedAlumnusQuote        string    `json:"featured_alumnus_quote"`
	FeaturedAlumnusAchievements []string  `json:"featured_alumnus_achievements"`
	FeaturedAlumnusCreatedAt    time.Time `json:"featured_alumnus_created_at"`
	FeaturedAlumnusUpdatedAt    time.Time `json:"featured_alumnus_updated_at"`
}

type SuccessStoryResponse struct {
	SuccessStoryID        uuid.UUID `json:"success_story_id"`
	SuccessStoryName      string    `json:"success_story_name"`
	SuccessStoryBatch     string    `json:"success_story_batch"`
	SuccessStoryRole      string    `json:"success_story_role"`
	SuccessStoryCompany   string    `json:"success_story_company"`
	SuccessStoryLocation  string    `json:"success_story_location"`
	SuccessStoryStoryURL  string    `json:"success_story_story_url"`
	SuccessStoryImageURL  string    `json:"success_story_image_url"`
	SuccessStoryCreatedAt time.Time `json:"success_story_created_at"`
	SuccessStoryUpdatedAt time.Time `json:"success_story_updated_at"`
}

func ToFeaturedAlumnusResponse(m model.FeaturedAlumnusModel) FeaturedAlumnusResponse {
	achievements := []string(m.FeaturedAlumnusAchievements)
	if achievements == nil {
		achievements = []string{}
	}
	return FeaturedAlumnusResponse{
		FeaturedAlumnusID:           m.FeaturedAlumnusID,
		FeaturedAlumnusName:         m.FeaturedAlumnusName,
		FeaturedAlumnusBatch:        m.FeaturedAlumnusBatch,
		FeaturedAlumnusRole:         m.FeaturedAlumnusRole,
		FeaturedAlumnusCompany:      m.FeaturedAlumnusCompany,
		FeaturedAlumnusImageURL:     m.FeaturedAlumnusImageURL,
		FeaturedAlumnusQuote:        m.FeaturedAlumnusQuote,
		FeaturedAlumnusAchievements: achievements,
		FeaturedAlumnusCreatedAt:    m.FeaturedAlumnusCreatedAt,
		FeaturedAlumnusUpdatedAt:    m.FeaturedAlumnusUpdatedAt,
	}
}

func ToFeaturedAlumnusResponseList(models []model.FeaturedAlumnusModel) []FeaturedAlumnusResponse {
	out := make([]FeaturedAlumnusResponse, 0, len(models))
	for _, m := range models {
		out = append(out, ToFeaturedAlumnusResponse(m))
	}
	return out
}

func ToSuccessStoryResponse(m model.SuccessStoryModel) SuccessStoryResponse {
	return SuccessStoryResponse{
		SuccessStoryID:        m.SuccessStoryID,
		SuccessStoryName:      m.SuccessStoryName,
		SuccessStoryBatch:     m.SuccessStoryBatch,
		SuccessStoryRole:      m.SuccessStoryRole,
		SuccessStoryCompany:   m.SuccessStoryCompany,
		SuccessStoryLocation:  m.SuccessStoryLocation,
		SuccessStoryStoryURL:  m.SuccessStoryStoryURL,
		SuccessStoryImageURL:  m.SuccessStoryImageURL,
		SuccessStoryCreatedAt: m.SuccessStoryCreatedAt,
		SuccessStoryUpdatedAt: m.SuccessStoryUpdatedAt,
	}
}

func ToSuccessStoryResponseList(models []model.SuccessStoryModel) []SuccessStoryResponse {
	out := make([]SuccessStoryResponse, 0, len(models))
	for _, m := range models {
		out = append(out, ToSuccessStoryResponse(m))
	}
	return out
}
