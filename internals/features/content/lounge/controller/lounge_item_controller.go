package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campushub_backend/internals/features/content/lounge/dto"
	"campushub_backend/internals/features/content/lounge/model"
	helpers "campushub_backend/internals/helpers"
	"campushub_backend/internals/helpers/crud"
)

var validateLoungeItem = validator.New()

type LoungeItemController struct {
	DB    *gorm.DB
	Store *crud.Store[model.LoungeItemModel]
}

func NewLoungeItemController(db *gorm.DB) *LoungeItemController {
	return &LoungeItemController{
		DB:    db,
		Store: crud.NewStore[model.LoungeItemModel](db, "lounge_item_id", "lounge_item_created_at DESC"),
	}
}

func (ctrl *LoungeItemController) GetAll(c *fiber.Ctx) error {
	paging := helpers.ResolvePaging(c, 20, 100)
	items, total, err := ctrl.Store.ListPage(c.UserContext(), paging.Offset, paging.Limit)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve lounge items")
	}
	p := helpers.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helpers.JsonList(c, "", dto.ToLoungeItemDTOs(items), &p)
}

func (ctrl *LoungeItemController) GetByID(c *fiber.Ctx) error {
	item, err := ctrl.Store.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "Lounge item not found")
	}
	return helpers.JsonOK(c, "", dto.ToLoungeItemDTO(*item))
}

func (ctrl *LoungeItemController) Create(c *fiber.Ctx) error {
	var body dto.SaveLoungeItemRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateLoungeItem.Struct(&body); err != nil {
		return helpers.JsonValidationError(c, helpers.ValidationMap(err))
	}

	item := model.LoungeItemModel{
		LoungeItemTitle:   body.LoungeItemTitle,
		LoungeItemContent: body.LoungeItemContent,
	}
	if err := ctrl.Store.Create(c.UserContext(), &item); err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to create lounge item")
	}
	return helpers.JsonCreated(c, "Lounge item created", dto.ToLoungeItemDTO(item))
}

func (ctrl *LoungeItemController) Update(c *fiber.Ctx) error {
	item, err := ctrl.Store.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "Lounge item not found")
	}

	var body dto.SaveLoungeItemRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateLoungeItem.Struct(&body); err != nil {
		return helpers.JsonValidationError(c, helpers.ValidationMap(err))
	}

	item.LoungeItemTitle = body.LoungeItemTitle
	item.LoungeItemContent = body.LoungeItemContent
	if err := ctrl.Store.Update(c.UserContext(), item); err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to update lounge item")
	}
	return helpers.JsonUpdated(c, "Lounge item updated", dto.ToLoungeItemDTO(*item))
}

func (ctrl *LoungeItemController) Delete(c *fiber.Ctx) error {
	n, err := ctrl.Store.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to delete lounge item")
	}
	if n == 0 {
		return helpers.JsonError(c, fiber.StatusNotFound, "Lounge item not found")
	}
	return helpers.JsonDeleted(c, "Lounge item deleted", nil)
}
