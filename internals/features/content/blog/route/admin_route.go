package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campushub_backend/internals/features/content/blog/controller"
	ossHelper "campushub_backend/internals/helpers/oss"
)

func BlogAdminRoutes(api fiber.Router, db *gorm.DB, images *ossHelper.ImageService) {
	ctrl := controller.NewBlogPostController(db, images)

	blog := api.Group("/blog-posts")
	blog.Get("/", ctrl.GetAll)
	blog.Get("/:id", ctrl.GetByID)
	blog.Post("/", ctrl.Create)
	blog.Put("/:id", ctrl.Update)
	blog.Delete("/:id", ctrl.Delete)
}
