package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campushub_backend/internals/features/content/life/controller"
)

func LifeAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewLifeItemController(db)

	life := api.Group("/life-items")
	life.Get("/", ctrl.GetAll)
	life.Get("/:id", ctrl.GetByID)
	life.Post("/", ctrl.Create)
	life.Put("/:id", ctrl.Update)
	life.Delete("/:id", ctrl.Delete)
}
