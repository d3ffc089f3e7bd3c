package controller

import (
	"errors"
	"mime/multipart"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"campushub_backend/internals/features/content/alumni/dto"
	"campushub_backend/internals/features/content/alumni/model"
	helpers "campushub_backend/internals/helpers"
	"campushub_backend/internals/helpers/crud"
	ossHelper "campushub_backend/internals/helpers/oss"
)

var validateAlumni = validator.New()

type AlumniController struct {
	DB      *gorm.DB
	Alumni  *crud.Store[model.FeaturedAlumnusModel]
	Stories *crud.Store[model.SuccessStoryModel]
	Images  *ossHelper.ImageService
}

func NewAlumniController(db *gorm.DB, images *ossHelper.ImageService) *AlumniController {
	return &AlumniController{
		DB:      db,
		Alumni:  crud.NewStore[model.FeaturedAlumnusModel](db, "featured_alumnus_id", "featured_alumnus_created_at DESC"),
		Stories: crud.NewStore[model.SuccessStoryModel](db, "success_story_id", "success_story_created_at DESC"),
		Images:  images,
	}
}

/* ====================================== */
/* ========== Featured Alumni =========== */
/* ====================================== */

// =============================
// 📄 List Featured Alumni
// =============================
func (ctrl *AlumniController) GetAllFeatured(c *fiber.Ctx) error {
	paging := helpers.ResolvePaging(c, 20, 100)
	records, total, err := ctrl.Alumni.ListPage(c.UserContext(), paging.Offset, paging.Limit)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve featured alumni")
	}
	p := helpers.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helpers.JsonList(c, "", dto.ToFeaturedAlumnusResponseList(records), &p)
}

// =============================
// 🔍 Get Featured Alumnus By ID
// =============================
func (ctrl *AlumniController) GetFeaturedByID(c *fiber.Ctx) error {
	record, err := ctrl.Alumni.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "Featured alumnus not found")
	}
	return helpers.JsonOK(c, "", dto.ToFeaturedAlumnusResponse(*record))
}

// =============================
// ➕ Create Featured Alumnus
// =============================
func (ctrl *AlumniController) CreateFeatured(c *fiber.Ctx) error {
	var body dto.SaveFeaturedAlumnusRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAlumni.Struct(&body); err != nil {
		return helpers.JsonValidationError(c, helpers.ValidationMap(err))
	}

	record := model.FeaturedAlumnusModel{
		FeaturedAlumnusName:         body.Name,
		FeaturedAlumnusBatch:        body.Batch,
		FeaturedAlumnusRole:         body.Role,
		FeaturedAlumnusCompany:      body.Company,
		FeaturedAlumnusQuote:        body.Quote,
		FeaturedAlumnusAchievements: datatypes.NewJSONSlice(body.Achievements),
	}

	if fh := alumniFormImage(c); fh != nil {
		url, err := ctrl.uploadImage(c, model.ImageScope(&record), fh)
		if err != nil {
			return helpers.JsonErrorFrom(c, err)
		}
		record.FeaturedAlumnusImageURL = url
	}

	if err := ctrl.Alumni.Create(c.UserContext(), &record); err != nil {
		if record.FeaturedAlumnusImageURL != "" && ctrl.Images != nil {
			ctrl.Images.Clear(c.UserContext(), record.FeaturedAlumnusImageURL)
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to create featured alumnus")
	}

	return helpers.JsonCreated(c, "Featured alumnus created", dto.ToFeaturedAlumnusResponse(record))
}

// =============================
// 🔄 Update Featured Alumnus
// =============================
// Same replacement order as blog posts: upload first, persist, then drop
// the previous object best-effort.
func (ctrl *AlumniController) UpdateFeatured(c *fiber.Ctx) error {
	record, err := ctrl.Alumni.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "Featured alumnus not found")
	}

	var body dto.SaveFeaturedAlumnusRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAlumni.Struct(&body); err != nil {
		return helpers.JsonValidationError(c, helpers.ValidationMap(err))
	}

	oldURL := record.FeaturedAlumnusImageURL
	newUpload := false

	if fh := alumniFormImage(c); fh != nil {
		url, err := ctrl.uploadImage(c, model.ImageScope(record), fh)
		if err != nil {
			return helpers.JsonErrorFrom(c, err)
		}
		record.FeaturedAlumnusImageURL = url
		newUpload = true
	} else if body.ClearImage && oldURL != "" {
		if ctrl.Images != nil {
			ctrl.Images.Clear(c.UserContext(), oldURL)
		}
		record.FeaturedAlumnusImageURL = ""
	}

	record.FeaturedAlumnusName = body.Name
	record.FeaturedAlumnusBatch = body.Batch
	record.FeaturedAlumnusRole = body.Role
	record.FeaturedAlumnusCompany = body.Company
	record.FeaturedAlumnusQuote = body.Quote
	record.FeaturedAlumnusAchievements = datatypes.NewJSONSlice(body.Achievements)

	if err := ctrl.Alumni.Update(c.UserContext(), record); err != nil {
		if newUpload && ctrl.Images != nil {
			ctrl.Images.Clear(c.UserContext(), record.FeaturedAlumnusImageURL)
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to update featured alumnus")
	}

	if newUpload && oldURL != "" && oldURL != record.FeaturedAlumnusImageURL && ctrl.Images != nil {
		ctrl.Images.Clear(c.UserContext(), oldURL)
	}

	return helpers.JsonUpdated(c, "Featured alumnus updated", dto.ToFeaturedAlumnusResponse(*record))
}

// =============================
// 🗑️ Delete Featured Alumnus
// =============================
func (ctrl *AlumniController) DeleteFeatured(c *fiber.Ctx) error {
	record, err := ctrl.Alumni.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusNotFound, "Featured alumnus not found")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to load featured alumnus")
	}

	if _, err := ctrl.Alumni.Delete(c.UserContext(), c.Params("id")); err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to delete featured alumnus")
	}

	if record.FeaturedAlumnusImageURL != "" && ctrl.Images != nil {
		ctrl.Images.Clear(c.UserContext(), record.FeaturedAlumnusImageURL)
	}

	return helpers.JsonDeleted(c, "Featured alumnus deleted", nil)
}

/* ====================================== */
/* ========== Success Stories =========== */
/* ====================================== */

// =============================
// 📄 List Success Stories
// =============================
func (ctrl *AlumniController) GetAllStories(c *fiber.Ctx) error {
	paging := helpers.ResolvePaging(c, 20, 100)
	records, total, err := ctrl.Stories.ListPage(c.UserContext(), paging.Offset, paging.Limit)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve success stories")
	}
	p := helpers.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helpers.JsonList(c, "", dto.ToSuccessStoryResponseList(records), &p)
}

// =============================
// 🔍 Get Success Story By ID
// =============================
func (ctrl *AlumniController) GetStoryByID(c *fiber.Ctx) error {
	record, err := ctrl.Stories.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "Success story not found")
	}
	return helpers.JsonOK(c, "", dto.ToSuccessStoryResponse(*record))
}

// =============================
// ➕ Create Success Story
// =============================
func (ctrl *AlumniController) CreateStory(c *fiber.Ctx) error {
	var body dto.SaveSuccessStoryRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAlumni.Struct(&body); err != nil {
		return helpers.JsonValidationError(c, helpers.ValidationMap(err))
	}

	record := model.SuccessStoryModel{
		SuccessStoryName:     body.Name,
		SuccessStoryBatch:    body.Batch,
		SuccessStoryRole:     body.Role,
		SuccessStoryCompany:  body.Company,
		SuccessStoryLocation: body.Location,
		SuccessStoryStoryURL: body.StoryURL,
	}

	if fh := alumniFormImage(c); fh != nil {
		url, err := ctrl.uploadImage(c, model.ImageScope(&record), fh)
		if err != nil {
			return helpers.JsonErrorFrom(c, err)
		}
		record.SuccessStoryImageURL = url
	}

	if err := ctrl.Stories.Create(c.UserContext(), &record); err != nil {
		if record.SuccessStoryImageURL != "" && ctrl.Images != nil {
			ctrl.Images.Clear(c.UserContext(), record.SuccessStoryImageURL)
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to create success story")
	}

	return helpers.JsonCreated(c, "Success story created", dto.ToSuccessStoryResponse(record))
}

// =============================
// 🔄 Update Success Story
// =============================
func (ctrl *AlumniController) UpdateStory(c *fiber.Ctx) error {
	record, err := ctrl.Stories.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "Success story not found")
	}

	var body dto.SaveSuccessStoryRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateAlumni.Struct(&body); err != nil {
		return helpers.JsonValidationError(c, helpers.ValidationMap(err))
	}

	oldURL := record.SuccessStoryImageURL
	newUpload := false

	if fh := alumniFormImage(c); fh != nil {
		url, err := ctrl.uploadImage(c, model.ImageScope(record), fh)
		if err != nil {
			return helpers.JsonErrorFrom(c, err)
		}
		record.SuccessStoryImageURL = url
		newUpload = true
	} else if body.ClearImage && oldURL != "" {
		if ctrl.Images != nil {
			ctrl.Images.Clear(c.UserContext(), oldURL)
		}
		record.SuccessStoryImageURL = ""
	}

	record.SuccessStoryName = body.Name
	record.SuccessStoryBatch = body.Batch
	record.SuccessStoryRole = body.Role
	record.SuccessStoryCompany = body.Company
	record.SuccessStoryLocation = body.Location
	record.SuccessStoryStoryURL = body.StoryURL

	if err := ctrl.Stories.Update(c.UserContext(), record); err != nil {
		if newUpload && ctrl.Images != nil {
			ctrl.Images.Clear(c.UserContext(), record.SuccessStoryImageURL)
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to update success story")
	}

	if newUpload && oldURL != "" && oldURL != record.SuccessStoryImageURL && ctrl.Images != nil {
		ctrl.Images.Clear(c.UserContext(), oldURL)
	}

	return helpers.JsonUpdated(c, "Success story updated", dto.ToSuccessStoryResponse(*record))
}

// =============================
// 🗑️ Delete Success Story
// =============================
func (ctrl *AlumniController) DeleteStory(c *fiber.Ctx) error {
	record, err := ctrl.Stories.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusNotFound, "Success story not found")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to load success story")
	}

	if _, err := ctrl.Stories.Delete(c.UserContext(), c.Params("id")); err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to delete success story")
	}

	if record.SuccessStoryImageURL != "" && ctrl.Images != nil {
		ctrl.Images.Clear(c.UserContext(), record.SuccessStoryImageURL)
	}

	return helpers.JsonDeleted(c, "Success story deleted", nil)
}

/* =============================
   Helpers
============================= */

func alumniFormImage(c *fiber.Ctx) *multipart.FileHeader {
	fh, err := c.FormFile("image")
	if err != nil {
		return nil
	}
	return fh
}

func (ctrl *AlumniController) uploadImage(c *fiber.Ctx, scope string, fh *multipart.FileHeader) (string, error) {
	if err := ossHelper.ValidateImage(fh); err != nil {
		return "", err
	}
	if ctrl.Images == nil {
		return "", fiber.NewError(fiber.StatusServiceUnavailable, "Asset storage is not configured")
	}
	return ctrl.Images.UploadFromForm(c.UserContext(), scope, fh)
}
