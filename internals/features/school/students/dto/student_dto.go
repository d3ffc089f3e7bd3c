package dto

import (
	"time"

	"campushub_backend/internals/features/school/students/model"

	"github.com/google/uuid"
)

type SaveStudentRequest struct {
	StudentNumber string `json:"student_number" form:"student_number" validate:"required,min=3,max=50"`
	Name          string `json:"name" form:"name" validate:"required,min=2,max=255"`
	Email         string `json:"email" form:"email" validate:"omitempty,email,max=255"`
	IsActive      *bool  `json:"is_active" form:"is_active"`
}

type StudentResponse struct {
	StudentID        uuid.UUID `json:"student_id"`
	StudentNumber    string    `json:"student_number"`
	StudentName      string    `json:"student_name"`
	StudentEmail     string    `json:"student_email"`
	StudentIsActive  bool      `json:"student_is_active"`
	StudentCreatedAt time.Time `json:"student_created_at"`
	StudentUpdatedAt time.Time `json:"student_updated_at"`
}

func ToStudentResponse(m model.StudentModel) StudentResponse {
	return StudentResponse{
		StudentID:        m.StudentID,
		StudentNumber:    m.StudentNumber,
		StudentName:      m.StudentName,
		StudentEmail:     m.StudentEmail,
		StudentIsActive:  m.StudentIsActive,
		StudentCreatedAt: m.StudentCreatedAt,
		StudentUpdatedAt: m.StudentUpdatedAt,
	}
}

func ToStudentResponseList(models []model.StudentModel) []StudentResponse {
	out := make([]StudentResponse, 0, len(models))
	for _, m := range models {
		out = append(out, ToStudentResponse(m))
	}
	return out
}
