package dto

import (
	"time"

	"campushub_backend/internals/features/content/blog/model"
)

// ============================
// Response DTO
// ============================

type BlogPostDTO struct {
	BlogPostID        string    `json:"blog_post_id"`
	BlogPostTitle     string    `json:"blog_post_title"`
	BlogPostContent   string    `json:"blog_post_content"`
	BlogPostExcerpt   string    `json:"blog_post_excerpt"`
	BlogPostCategory  string    `json:"blog_post_category"`
	BlogPostImageURL  string    `json:"blog_post_image_url"`
	BlogPostCreatedAt time.Time `json:"blog_post_created_at"`
	BlogPostUpdatedAt time.Time `json:"blog_post_updated_at"`
}

// ============================
// Create & Update Request DTO
// ============================

// SaveBlogPostRequest carries the edit buffer. ClearImage only matters on
// update when no replacement file is attached.
type SaveBlogPostRequest struct {
	BlogPostTitle    string `json:"blog_post_title" form:"blog_post_title" validate:"required"`
	BlogPostContent  string `json:"blog_post_content" form:"blog_post_content" validate:"required"`
	BlogPostExcerpt  string `json:"blog_post_excerpt" form:"blog_post_excerpt" validate:"required"`
	BlogPostCategory string `json:"blog_post_category" form:"blog_post_category"`
	ClearImage       bool   `json:"clear_image" form:"clear_image"`
}

// ============================
// Converter
// ============================

func ToBlogPostDTO(m model.BlogPostModel) BlogPostDTO {
	return BlogPostDTO{
		BlogPostID:        m.BlogPostID.String(),
		BlogPostTitle:     m.BlogPostTitle,
		BlogPostContent:   m.BlogPostContent,
		BlogPostExcerpt:   m.BlogPostExcerpt,
		BlogPostCategory:  m.BlogPostCategory,
		BlogPostImageURL:  m.BlogPostImageURL,
		BlogPostCreatedAt: m.BlogPostCreatedAt,
		BlogPostUpdatedAt: m.BlogPostUpdatedAt,
	}
}

func ToBlogPostDTOs(ms []model.BlogPostModel) []BlogPostDTO {
	out := make([]BlogPostDTO, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToBlogPostDTO(m))
	}
	return out
}
