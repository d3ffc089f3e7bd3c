package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campushub_backend/internals/features/content/lounge/controller"
)

func LoungeAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewLoungeItemController(db)

	lounge := api.Group("/lounge-items")
	lounge.Get("/", ctrl.GetAll)
	lounge.Get("/:id", ctrl.GetByID)
	lounge.Post("/", ctrl.Create)
	lounge.Put("/:id", ctrl.Update)
	lounge.Delete("/:id", ctrl.Delete)
}
