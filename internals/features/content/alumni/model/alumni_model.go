package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// The alumni panel curates two record shapes: featured alumni (homepage
// spotlight with quote and achievements) and success stories (external
// link cards). AlumniRecord is the closed variant over the two; shared
// code dispatches on the concrete type instead of a discriminator string.
type AlumniRecord interface {
	alumniRecord()
	ImageURL() string
}

type FeaturedAlumnusModel struct {
	FeaturedAlumnusID           uuid.UUID                  `gorm:"column:featured_alumnus_id;type:uuid;primaryKey" json:"featured_alumnus_id"`
	FeaturedAlumnusName         string                     `gorm:"column:featured_alumnus_name;type:varchar(255);not null" json:"featured_alumnus_name"`
	FeaturedAlumnusBatch        string                     `gorm:"column:featured_alumnus_batch;type:varchar(50);not null" json:"featured_alumnus_batch"`
	FeaturedAlumnusRole         string                     `gorm:"column:featured_alumnus_role;type:varchar(255);not null" json:"featured_alumnus_role"`
	FeaturedAlumnusCompany      string                     `gorm:"column:featured_alumnus_company;type:varchar(255);not null" json:"featured_alumnus_company"`
	FeaturedAlumnusImageURL     string                     `gorm:"column:featured_alumnus_image_url;type:text" json:"featured_alumnus_image_url"`
	FeaturedAlumnusQuote        string                     `gorm:"column:featured_alumnus_quote;type:text" json:"featured_alumnus_quote"`
	FeaturedAlumnusAchievements datatypes.JSONSlice[string] `gorm:"column:featured_alumnus_achievements" json:"featured_alumnus_achievements"`
	FeaturedAlumnusCreatedAt    time.Time                  `gorm:"column:featured_alumnus_created_at;autoCreateTime" json:"featured_alumnus_created_at"`
	FeaturedAlumnusUpdatedAt    time.Time                  `gorm:"column:featured_alumnus_updated_at;autoUpdateTime" json:"featured_alumnus_updated_at"`
}

func (FeaturedAlumnusModel) TableName() string {
	return "featured_alumni"
}

func (m *FeaturedAlumnusModel) BeforeCreate(tx *gorm.DB) error {
	if m.FeaturedAlumnusID == uuid.Nil {
		m.FeaturedAlumnusID = uuid.New()
	}
	return nil
}

func (FeaturedAlumnusModel) alumniRecord() {}

func (m FeaturedAlumnusModel) ImageURL() string { return m.FeaturedAlumnusImageURL }

type SuccessStoryModel struct {
	SuccessStoryID        uuid.UUID `gorm:"column:success_story_id;type:uuid;primaryKey" json:"success_story_id"`
	SuccessStoryName      string    `gorm:"column:success_story_name;type:varchar(255);not null" json:"success_story_name"`
	SuccessStoryBatch     string    `gorm:"column:success_story_batch;type:varchar(50);not null" json:"success_story_batch"`
	SuccessStoryRole      string    `gorm:"column:success_story_role;type:varchar(255);not null" json:"success_story_role"`
	SuccessStoryCompany   string    `gorm:"column:success_story_company;type:varchar(255);not null" json:"success_story_company"`
	SuccessStoryLocation  string    `gorm:"column:success_story_location;type:varchar(255)" json:"success_story_location"`
	SuccessStoryStoryURL  string    `gorm:"column:success_story_story_url;type:text" json:"success_story_story_url"`
	SuccessStoryImageURL  string    `gorm:"column:success_story_image_url;type:text" json:"success_story_image_url"`
	SuccessStoryCreatedAt time.Time `gorm:"column:success_story_created_at;autoCreateTime" json:"success_story_created_at"`
	SuccessStoryUpdatedAt time.Time `gorm:"column:success_story_updated_at;autoUpdateTime" json:"success_story_updated_at"`
}

func (SuccessStoryModel) TableName() string {
	return "success_stories"
}

func (m *SuccessStoryModel) BeforeCreate(tx *gorm.DB) error {
	if m.SuccessStoryID == uuid.Nil {
		m.SuccessStoryID = uuid.New()
	}
	return nil
}

func (SuccessStoryModel) alumniRecord() {}

func (m SuccessStoryModel) ImageURL() string { return m.SuccessStoryImageURL }

// ImageScope picks the storage scope for a record shape.
func ImageScope(r AlumniRecord) string {
	switch r.(type) {
	case FeaturedAlumnusModel, *FeaturedAlumnusModel:
		return "featured-alumni"
	case SuccessStoryModel, *SuccessStoryModel:
		return "success-stories"
	default:
		return "alumni"
	}
}
