package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campushub_backend/internals/features/school/students/controller"
)

func StudentAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewStudentController(db)

	students := api.Group("/students")
	students.Get("/", ctrl.GetAll)
	students.Get("/:id", ctrl.GetByID)
	students.Post("/", ctrl.Create)
	students.Put("/:id", ctrl.Update)
	students.Delete("/:id", ctrl.Delete)
}
