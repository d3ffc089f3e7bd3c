package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campushub_backend/internals/features/content/alumni/controller"
	ossHelper "campushub_backend/internals/helpers/oss"
)

func AlumniAdminRoutes(api fiber.Router, db *gorm.DB, images *ossHelper.ImageService) {
	ctrl := controller.NewAlumniController(db, images)

	alumni := api.Group("/featured-alumni")
	alumni.Get("/", ctrl.GetAllFeatured)
	alumni.Get("/:id", ctrl.GetFeaturedByID)
	alumni.Post("/", ctrl.CreateFeatured)
	alumni.Put("/:id", ctrl.UpdateFeatured)
	alumni.Delete("/:id", ctrl.DeleteFeatured)

	stories := api.Group("/success-stories")
	stories.Get("/", ctrl.GetAllStories)
	stories.Get("/:id", ctrl.GetStoryByID)
	stories.Post("/", ctrl.CreateStory)
	stories.Put("/:id", ctrl.UpdateStory)
	stories.Delete("/:id", ctrl.DeleteStory)
}
