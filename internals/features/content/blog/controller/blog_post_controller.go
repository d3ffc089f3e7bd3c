package controller

import (
	"errors"
	"mime/multipart"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campushub_backend/internals/features/content/blog/dto"
	"campushub_backend/internals/features/content/blog/model"
	helpers "campushub_backend/internals/helpers"
	"campushub_backend/internals/helpers/crud"
	ossHelper "campushub_backend/internals/helpers/oss"
)

var validateBlogPost = validator.New()

const blogImageScope = "blog"

type BlogPostController struct {
	DB     *gorm.DB
	Store  *crud.Store[model.BlogPostModel]
	Images *ossHelper.ImageService
}

func NewBlogPostController(db *gorm.DB, images *ossHelper.ImageService) *BlogPostController {
	return &BlogPostController{
		DB:     db,
		Store:  crud.NewStore[model.BlogPostModel](db, "blog_post_id", "blog_post_created_at DESC"),
		Images: images,
	}
}

// =============================
// 📄 List Blog Posts
// =============================
func (ctrl *BlogPostController) GetAll(c *fiber.Ctx) error {
	paging := helpers.ResolvePaging(c, 20, 100)
	posts, total, err := ctrl.Store.ListPage(c.UserContext(), paging.Offset, paging.Limit)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve blog posts")
	}
	p := helpers.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helpers.JsonList(c, "", dto.ToBlogPostDTOs(posts), &p)
}

// =============================
// 🔍 Get Blog Post By ID
// =============================
func (ctrl *BlogPostController) GetByID(c *fiber.Ctx) error {
	post, err := ctrl.Store.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "Blog post not found")
	}
	return helpers.JsonOK(c, "", dto.ToBlogPostDTO(*post))
}

// =============================
// ➕ Create Blog Post
// =============================
func (ctrl *BlogPostController) Create(c *fiber.Ctx) error {
	var body dto.SaveBlogPostRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateBlogPost.Struct(&body); err != nil {
		return helpers.JsonValidationError(c, helpers.ValidationMap(err))
	}

	post := model.BlogPostModel{
		BlogPostTitle:    body.BlogPostTitle,
		BlogPostContent:  body.BlogPostContent,
		BlogPostExcerpt:  body.BlogPostExcerpt,
		BlogPostCategory: body.BlogPostCategory,
	}

	if fh := formImage(c); fh != nil {
		url, err := ctrl.uploadImage(c, fh)
		if err != nil {
			return helpers.JsonErrorFrom(c, err)
		}
		post.BlogPostImageURL = url
	}

	if err := ctrl.Store.Create(c.UserContext(), &post); err != nil {
		// Row was never linked; drop the fresh object rather than leak it.
		if post.BlogPostImageURL != "" && ctrl.Images != nil {
			ctrl.Images.Clear(c.UserContext(), post.BlogPostImageURL)
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to create blog post")
	}

	return helpers.JsonCreated(c, "Blog post created", dto.ToBlogPostDTO(post))
}

// =============================
// 🔄 Update Blog Post
// =============================
// Image replacement order: upload the new object, persist the record, then
// best-effort delete the previous object. An upload failure aborts the save
// with the stored image_url untouched.
func (ctrl *BlogPostController) Update(c *fiber.Ctx) error {
	post, err := ctrl.Store.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "Blog post not found")
	}

	var body dto.SaveBlogPostRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateBlogPost.Struct(&body); err != nil {
		return helpers.JsonValidationError(c, helpers.ValidationMap(err))
	}

	oldURL := post.BlogPostImageURL
	newUpload := false

	if fh := formImage(c); fh != nil {
		url, err := ctrl.uploadImage(c, fh)
		if err != nil {
			return helpers.JsonErrorFrom(c, err)
		}
		post.BlogPostImageURL = url
		newUpload = true
	} else if body.ClearImage && oldURL != "" {
		// Best-effort delete; the field is cleared either way.
		if ctrl.Images != nil {
			ctrl.Images.Clear(c.UserContext(), oldURL)
		}
		post.BlogPostImageURL = ""
	}

	post.BlogPostTitle = body.BlogPostTitle
	post.BlogPostContent = body.BlogPostContent
	post.BlogPostExcerpt = body.BlogPostExcerpt
	post.BlogPostCategory = body.BlogPostCategory

	if err := ctrl.Store.Update(c.UserContext(), post); err != nil {
		if newUpload && ctrl.Images != nil {
			ctrl.Images.Clear(c.UserContext(), post.BlogPostImageURL)
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to update blog post")
	}

	if newUpload && oldURL != "" && oldURL != post.BlogPostImageURL && ctrl.Images != nil {
		ctrl.Images.Clear(c.UserContext(), oldURL)
	}

	return helpers.JsonUpdated(c, "Blog post updated", dto.ToBlogPostDTO(*post))
}

// =============================
// 🗑️ Delete Blog Post
// =============================
func (ctrl *BlogPostController) Delete(c *fiber.Ctx) error {
	post, err := ctrl.Store.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusNotFound, "Blog post not found")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to load blog post")
	}

	if _, err := ctrl.Store.Delete(c.UserContext(), c.Params("id")); err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to delete blog post")
	}

	if post.BlogPostImageURL != "" && ctrl.Images != nil {
		ctrl.Images.Clear(c.UserContext(), post.BlogPostImageURL)
	}

	return helpers.JsonDeleted(c, "Blog post deleted", nil)
}

/* =============================
   Helpers
============================= */

func formImage(c *fiber.Ctx) *multipart.FileHeader {
	fh, err := c.FormFile("image")
	if err != nil {
		return nil
	}
	return fh
}

func (ctrl *BlogPostController) uploadImage(c *fiber.Ctx, fh *multipart.FileHeader) (string, error) {
	if err := ossHelper.ValidateImage(fh); err != nil {
		return "", err
	}
	if ctrl.Images == nil {
		return "", fiber.NewError(fiber.StatusServiceUnavailable, "Asset storage is not configured")
	}
	return ctrl.Images.UploadFromForm(c.UserContext(), blogImageScope, fh)
}
