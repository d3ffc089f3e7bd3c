package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"campushub_backend/internals/features/school/schedules/dto"
	"campushub_backend/internals/features/school/schedules/model"
	"campushub_backend/internals/features/school/schedules/service"
	studentModel "campushub_backend/internals/features/school/students/model"
	helpers "campushub_backend/internals/helpers"
	"campushub_backend/internals/helpers/crud"
)

var validateSchedule = validator.New()

type ClassScheduleController struct {
	DB     *gorm.DB
	Store  *crud.Store[model.ClassScheduleModel]
	Roster *service.RosterService
}

func NewClassScheduleController(db *gorm.DB) *ClassScheduleController {
	return &ClassScheduleController{
		DB:     db,
		Store:  crud.NewStore[model.ClassScheduleModel](db, "class_schedule_id", "class_schedule_created_at DESC"),
		Roster: service.NewRosterService(db),
	}
}

// =============================
// 📄 List Class Schedules
// =============================
func (ctrl *ClassScheduleController) GetAll(c *fiber.Ctx) error {
	paging := helpers.ResolvePaging(c, 20, 100)
	schedules, total, err := ctrl.Store.ListPage(c.UserContext(), paging.Offset, paging.Limit)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve class schedules")
	}
	p := helpers.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helpers.JsonList(c, "", dto.ToClassScheduleResponseList(schedules), &p)
}

// =============================
// 🔍 Get Class Schedule By ID
// =============================
func (ctrl *ClassScheduleController) GetByID(c *fiber.Ctx) error {
	schedule, err := ctrl.Store.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "Class schedule not found")
	}
	return helpers.JsonOK(c, "", dto.ToClassScheduleResponse(*schedule))
}

// =============================
// ➕ Create Class Schedule
// =============================
func (ctrl *ClassScheduleController) Create(c *fiber.Ctx) error {
	var body dto.SaveClassScheduleRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateSchedule.Struct(&body); err != nil {
		return helpers.JsonValidationError(c, helpers.ValidationMap(err))
	}

	schedule := model.ClassScheduleModel{
		ClassScheduleCourseCode:       body.CourseCode,
		ClassScheduleCourseName:       body.CourseName,
		ClassScheduleInstructor:       body.Instructor,
		ClassScheduleSection:          body.Section,
		ClassScheduleTime:             body.Time,
		ClassScheduleDays:             datatypes.NewJSONSlice(body.Days),
		ClassScheduleBuilding:         body.Building,
		ClassScheduleRoom:             body.Room,
		ClassScheduleCredits:          body.Credits,
		ClassScheduleYearLevel:        body.YearLevel,
		ClassScheduleBatch:            body.Batch,
		ClassScheduleEnrolledStudents: datatypes.NewJSONSlice([]string{}),
	}

	if err := ctrl.Store.Create(c.UserContext(), &schedule); err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to create class schedule")
	}

	return helpers.JsonCreated(c, "Class schedule created", dto.ToClassScheduleResponse(schedule))
}

// =============================
// 🔄 Update Class Schedule
// =============================
// Only the descriptive fields; the roster moves exclusively through the
// roster endpoints so the version check stays meaningful.
func (ctrl *ClassScheduleController) Update(c *fiber.Ctx) error {
	schedule, err := ctrl.Store.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "Class schedule not found")
	}

	var body dto.SaveClassScheduleRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateSchedule.Struct(&body); err != nil {
		return helpers.JsonValidationError(c, helpers.ValidationMap(err))
	}

	updates := map[string]interface{}{
		"class_schedule_course_code": body.CourseCode,
		"class_schedule_course_name": body.CourseName,
		"class_schedule_instructor":  body.Instructor,
		"class_schedule_section":     body.Section,
		"class_schedule_time":        body.Time,
		"class_schedule_days":        datatypes.NewJSONSlice(body.Days),
		"class_schedule_building":    body.Building,
		"class_schedule_room":        body.Room,
		"class_schedule_credits":     body.Credits,
		"class_schedule_year_level":  body.YearLevel,
		"class_schedule_batch":       body.Batch,
	}

	if err := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.ClassScheduleModel{}).
		Where("class_schedule_id = ?", schedule.ClassScheduleID).
		Updates(updates).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to update class schedule")
	}

	schedule, err = ctrl.Store.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to reload class schedule")
	}

	return helpers.JsonUpdated(c, "Class schedule updated", dto.ToClassScheduleResponse(*schedule))
}

// =============================
// 🗑️ Delete Class Schedule
// =============================
func (ctrl *ClassScheduleController) Delete(c *fiber.Ctx) error {
	rows, err := ctrl.Store.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusNotFound, "Class schedule not found")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to delete class schedule")
	}
	if rows == 0 {
		return helpers.JsonError(c, fiber.StatusNotFound, "Class schedule not found")
	}
	return helpers.JsonDeleted(c, "Class schedule deleted", nil)
}

/* =============================== */
/* ========== Roster ============= */
/* =============================== */

// =============================
// 👥 Get Roster
// =============================
// Joins each roster entry against the students table; numbers without a
// matching student record are still listed with an empty name.
func (ctrl *ClassScheduleController) GetRoster(c *fiber.Ctx) error {
	schedule, err := ctrl.Store.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "Class schedule not found")
	}

	numbers := []string(schedule.ClassScheduleEnrolledStudents)
	names := map[string]string{}
	if len(numbers) > 0 {
		var students []studentModel.StudentModel
		if err := ctrl.DB.WithContext(c.UserContext()).
			Where("student_number IN ?", numbers).
			Find(&students).Error; err != nil {
			return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to resolve roster students")
		}
		for _, s := range students {
			names[s.StudentNumber] = s.StudentName
		}
	}

	roster := make([]dto.RosterStudent, 0, len(numbers))
	for _, n := range numbers {
		roster = append(roster, dto.RosterStudent{
			StudentNumber: n,
			StudentName:   names[n],
		})
	}

	return helpers.JsonOK(c, "", dto.ClassScheduleRosterResponse{
		ClassScheduleID:  schedule.ClassScheduleID,
		CourseName:       schedule.ClassScheduleCourseName,
		Section:          schedule.ClassScheduleSection,
		EnrolledCount:    schedule.ClassScheduleEnrolledCount,
		EnrolledStudents: roster,
	})
}

// =============================
// ➕ Add Roster Student
// =============================
func (ctrl *ClassScheduleController) AddStudent(c *fiber.Ctx) error {
	var body dto.AddRosterStudentRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateSchedule.Struct(&body); err != nil {
		return helpers.JsonValidationError(c, helpers.ValidationMap(err))
	}

	schedule, err := ctrl.Roster.AddStudent(c.UserContext(), c.Params("id"), body.StudentNumber)
	if err != nil {
		return rosterError(c, err, "Failed to add student to roster")
	}

	return helpers.JsonUpdated(c, "Student added to roster", dto.ToClassScheduleResponse(*schedule))
}

// =============================
// ➖ Remove Roster Student
// =============================
func (ctrl *ClassScheduleController) RemoveStudent(c *fiber.Ctx) error {
	schedule, err := ctrl.Roster.RemoveStudent(c.UserContext(), c.Params("id"), c.Params("student_number"))
	if err != nil {
		return rosterError(c, err, "Failed to remove student from roster")
	}

	return helpers.JsonUpdated(c, "Student removed from roster", dto.ToClassScheduleResponse(*schedule))
}

func rosterError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, service.ErrScheduleNotFound):
		return helpers.JsonError(c, fiber.StatusNotFound, "Class schedule not found")
	case errors.Is(err, service.ErrDuplicateStudent):
		return helpers.JsonError(c, fiber.StatusConflict, "Student already enrolled in this class")
	case errors.Is(err, service.ErrRosterConflict):
		return helpers.JsonError(c, fiber.StatusConflict, "Roster was modified concurrently, please retry")
	default:
		return helpers.JsonError(c, fiber.StatusInternalServerError, fallback)
	}
}
