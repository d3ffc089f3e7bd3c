package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campushub_backend/internals/features/content/life/dto"
	"campushub_backend/internals/features/content/life/model"
	helpers "campushub_backend/internals/helpers"
	"campushub_backend/internals/helpers/crud"
)

var validateLifeItem = validator.New()

type LifeItemController struct {
	DB    *gorm.DB
	Store *crud.Store[model.LifeItemModel]
}

func NewLifeItemController(db *gorm.DB) *LifeItemController {
	return &LifeItemController{
		DB:    db,
		Store: crud.NewStore[model.LifeItemModel](db, "life_item_id", "life_item_created_at DESC"),
	}
}

func (ctrl *LifeItemController) GetAll(c *fiber.Ctx) error {
	paging := helpers.ResolvePaging(c, 20, 100)
	items, total, err := ctrl.Store.ListPage(c.UserContext(), paging.Offset, paging.Limit)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve life items")
	}
	p := helpers.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helpers.JsonList(c, "", dto.ToLifeItemDTOs(items), &p)
}

func (ctrl *LifeItemController) GetByID(c *fiber.Ctx) error {
	item, err := ctrl.Store.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "Life item not found")
	}
	return helpers.JsonOK(c, "", dto.ToLifeItemDTO(*item))
}

func (ctrl *LifeItemController) Create(c *fiber.Ctx) error {
	var body dto.SaveLifeItemRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateLifeItem.Struct(&body); err != nil {
		return helpers.JsonValidationError(c, helpers.ValidationMap(err))
	}

	item := model.LifeItemModel{
		LifeItemTitle:   body.LifeItemTitle,
		LifeItemContent: body.LifeItemContent,
	}
	if err := ctrl.Store.Create(c.UserContext(), &item); err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to create life item")
	}
	return helpers.JsonCreated(c, "Life item created", dto.ToLifeItemDTO(item))
}

func (ctrl *LifeItemController) Update(c *fiber.Ctx) error {
	item, err := ctrl.Store.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "Life item not found")
	}

	var body dto.SaveLifeItemRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateLifeItem.Struct(&body); err != nil {
		return helpers.JsonValidationError(c, helpers.ValidationMap(err))
	}

	item.LifeItemTitle = body.LifeItemTitle
	item.LifeItemContent = body.LifeItemContent
	if err := ctrl.Store.Update(c.UserContext(), item); err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to update life item")
	}
	return helpers.JsonUpdated(c, "Life item updated", dto.ToLifeItemDTO(*item))
}

func (ctrl *LifeItemController) Delete(c *fiber.Ctx) error {
	n, err := ctrl.Store.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to delete life item")
	}
	if n == 0 {
		return helpers.JsonError(c, fiber.StatusNotFound, "Life item not found")
	}
	return helpers.JsonDeleted(c, "Life item deleted", nil)
}
