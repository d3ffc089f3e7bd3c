package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campushub_backend/internals/features/school/schedules/controller"
)

func ClassScheduleAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewClassScheduleController(db)

	schedules := api.Group("/class-schedules")
	schedules.Get("/", ctrl.GetAll)
	schedules.Get("/:id", ctrl.GetByID)
	schedules.Post("/", ctrl.Create)
	schedules.Put("/:id", ctrl.Update)
	schedules.Delete("/:id", ctrl.Delete)

	schedules.Get("/:id/students", ctrl.GetRoster)
	schedules.Post("/:id/students", ctrl.AddStudent)
	schedules.Delete("/:id/students/:student_number", ctrl.RemoveStudent)
}
