package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"campushub_backend/internals/features/school/students/dto"
	"campushub_backend/internals/features/school/students/model"
	helpers "campushub_backend/internals/helpers"
	"campushub_backend/internals/helpers/crud"
)

var validateStudent = validator.New()

type StudentController struct {
	DB    *gorm.DB
	Store *crud.Store[model.StudentModel]
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{
		DB:    db,
		Store: crud.NewStore[model.StudentModel](db, "student_id", "student_created_at DESC"),
	}
}

// =============================
// 📄 List Students
// =============================
// Supports ?q= filtering on number and name for roster pickers.
func (ctrl *StudentController) GetAll(c *fiber.Ctx) error {
	paging := helpers.ResolvePaging(c, 20, 100)

	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.StudentModel{})
	if term := strings.TrimSpace(c.Query("q")); term != "" {
		like := "%" + strings.ToLower(term) + "%"
		q = q.Where("LOWER(student_number) LIKE ? OR LOWER(student_name) LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve students")
	}

	var students []model.StudentModel
	if err := q.Order("student_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&students).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve students")
	}

	p := helpers.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helpers.JsonList(c, "", dto.ToStudentResponseList(students), &p)
}

// =============================
// 🔍 Get Student By ID
// =============================
func (ctrl *StudentController) GetByID(c *fiber.Ctx) error {
	student, err := ctrl.Store.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "Student not found")
	}
	return helpers.JsonOK(c, "", dto.ToStudentResponse(*student))
}

// =============================
// ➕ Create Student
// =============================
func (ctrl *StudentController) Create(c *fiber.Ctx) error {
	var body dto.SaveStudentRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateStudent.Struct(&body); err != nil {
		return helpers.JsonValidationError(c, helpers.ValidationMap(err))
	}

	student := model.StudentModel{
		StudentNumber:   strings.TrimSpace(body.StudentNumber),
		StudentName:     body.Name,
		StudentEmail:    body.Email,
		StudentIsActive: true,
	}
	if body.IsActive != nil {
		student.StudentIsActive = *body.IsActive
	}

	if err := ctrl.Store.Create(c.UserContext(), &student); err != nil {
		if helpers.IsUniqueViolation(err) {
			return helpers.JsonError(c, fiber.StatusConflict, "Student number already registered")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to create student")
	}

	return helpers.JsonCreated(c, "Student created", dto.ToStudentResponse(student))
}

// =============================
// 🔄 Update Student
// =============================
func (ctrl *StudentController) Update(c *fiber.Ctx) error {
	student, err := ctrl.Store.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "Student not found")
	}

	var body dto.SaveStudentRequest
	if err := c.BodyParser(&body); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateStudent.Struct(&body); err != nil {
		return helpers.JsonValidationError(c, helpers.ValidationMap(err))
	}

	student.StudentNumber = strings.TrimSpace(body.StudentNumber)
	student.StudentName = body.Name
	student.StudentEmail = body.Email
	if body.IsActive != nil {
		student.StudentIsActive = *body.IsActive
	}

	if err := ctrl.Store.Update(c.UserContext(), student); err != nil {
		if helpers.IsUniqueViolation(err) {
			return helpers.JsonError(c, fiber.StatusConflict, "Student number already registered")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to update student")
	}

	return helpers.JsonUpdated(c, "Student updated", dto.ToStudentResponse(*student))
}

// =============================
// 🗑️ Delete Student
// =============================
func (ctrl *StudentController) Delete(c *fiber.Ctx) error {
	rows, err := ctrl.Store.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to delete student")
	}
	if rows == 0 {
		return helpers.JsonError(c, fiber.StatusNotFound, "Student not found")
	}
	return helpers.JsonDeleted(c, "Student deleted", nil)
}
