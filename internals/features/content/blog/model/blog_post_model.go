package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BlogPostModel struct {
	BlogPostID        uuid.UUID `gorm:"column:blog_post_id;type:uuid;primaryKey" json:"blog_post_id"`
	BlogPostTitle     string    `gorm:"column:blog_post_title;type:varchar(255);not null" json:"blog_post_title"`
	BlogPostContent   string    `gorm:"column:blog_post_content;type:text;not null" json:"blog_post_content"`
	BlogPostExcerpt   string    `gorm:"column:blog_post_excerpt;type:text;not null" json:"blog_post_excerpt"`
	BlogPostCategory  string    `gorm:"column:blog_post_category;type:varchar(100)" json:"blog_post_category"`
	BlogPostImageURL  string    `gorm:"column:blog_post_image_url;type:text" json:"blog_post_image_url"`
	BlogPostCreatedAt time.Time `gorm:"column:blog_post_created_at;autoCreateTime" json:"blog_post_created_at"`
	BlogPostUpdatedAt time.Time `gorm:"column:blog_post_updated_at;autoUpdateTime" json:"blog_post_updated_at"`
}

func (BlogPostModel) TableName() string {
	return "blog_posts"
}

func (m *BlogPostModel) BeforeCreate(tx *gorm.DB) error {
	if m.BlogPostID == uuid.Nil {
		m.BlogPostID = uuid.New()
	}
	return nil
}
