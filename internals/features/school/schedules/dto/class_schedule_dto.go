package dto

import (
	"time"

	"campushub_backend/internals/features/school/schedules/model"

	"github.com/google/uuid"
)

/* =============================== */
/* ========== Requests =========== */
/* =============================== */

type SaveClassScheduleRequest struct {
	CourseCode string   `json:"course_code" form:"course_code" validate:"required,max=50"`
	CourseName string   `json:"course_name" form:"course_name" validate:"required,min=2,max=255"`
	Instructor string   `json:"instructor" form:"instructor" validate:"required,max=255"`
	Section    string   `json:"section" form:"section" validate:"required,max=50"`
	Time       string   `json:"time" form:"time" validate:"omitempty,max=50"`
	Days       []string `json:"days" form:"days" validate:"omitempty,dive,oneof=mon tue wed thu fri sat sun"`
	Building   string   `json:"building" form:"building" validate:"omitempty,max=100"`
	Room       string   `json:"room" form:"room" validate:"omitempty,max=100"`
	Credits    int      `json:"credits" form:"credits" validate:"omitempty,min=0,max=12"`
	YearLevel  int      `json:"year_level" form:"year_level" validate:"omitempty,min=0,max=8"`
	Batch      string   `json:"batch" form:"batch" validate:"omitempty,max=50"`
}

type AddRosterStudentRequest struct {
	StudentNumber string `json:"student_number" form:"student_number" validate:"required,min=3,max=50"`
}

/* =============================== */
/* ========== Responses ========== */
/* =============================== */

type ClassScheduleResponse struct {
	ClassScheduleID               uuid.UUID `json:"class_schedule_id"`
	ClassScheduleCourseCode       string    `json:"class_schedule_course_code"`
	ClassScheduleCourseName       string    `json:"class_schedule_course_name"`
	ClassScheduleInstructor       string    `json:"class_schedule_instructor"`
	ClassScheduleSection          string    `json:"class_schedule_section"`
	ClassScheduleTime             string    `json:"class_schedule_time"`
	ClassScheduleDays             []string  `json:"class_schedule_days"`
	ClassScheduleBuilding         string    `json:"class_schedule_building"`
	ClassScheduleRoom             string    `json:"class_schedule_room"`
	ClassScheduleCredits          int       `json:"class_schedule_credits"`
	ClassScheduleYearLevel        int       `json:"class_schedule_year_level"`
	ClassScheduleBatch            string    `json:"class_schedule_batch"`
	ClassScheduleEnrolledStudents []string  `json:"class_schedule_enrolled_students"`
	ClassScheduleEnrolledCount    int       `json:"class_schedule_enrolled_count"`
	ClassScheduleCreatedAt        time.Time `json:"class_schedule_created_at"`
	ClassScheduleUpdatedAt        time.Time `json:"class_schedule_updated_at"`
}

// RosterStudent pairs a roster entry with the student record it points
// to. Name is empty when the number has no matching students row.
type RosterStudent struct {
	StudentNumber string `json:"student_number"`
	StudentName   string `json:"student_name"`
}

type ClassScheduleRosterResponse struct {
	ClassScheduleID  uuid.UUID       `json:"class_schedule_id"`
	CourseName       string          `json:"course_name"`
	Section          string          `json:"section"`
	EnrolledCount    int             `json:"enrolled_count"`
	EnrolledStudents []RosterStudent `json:"enrolled_students"`
}

func ToClassScheduleResponse(m model.ClassScheduleModel) ClassScheduleResponse {
	days := []string(m.ClassScheduleDays)
	if days == nil {
		days = []string{}
	}
	enrolled := []string(m.ClassScheduleEnrolledStudents)
	if enrolled == nil {
		enrolled = []string{}
	}
	return ClassScheduleResponse{
		ClassScheduleID:               m.ClassScheduleID,
		ClassScheduleCourseCode:       m.ClassScheduleCourseCode,
		ClassScheduleCourseName:       m.ClassScheduleCourseName,
		ClassScheduleInstructor:       m.ClassScheduleInstructor,
		ClassScheduleSection:          m.ClassScheduleSection,
		ClassScheduleTime:             m.ClassScheduleTime,
		ClassScheduleDays:             days,
		ClassScheduleBuilding:         m.ClassScheduleBuilding,
		ClassScheduleRoom:             m.ClassScheduleRoom,
		ClassScheduleCredits:          m.ClassScheduleCredits,
		ClassScheduleYearLevel:        m.ClassScheduleYearLevel,
		ClassScheduleBatch:            m.ClassScheduleBatch,
		ClassScheduleEnrolledStudents: enrolled,
		ClassScheduleEnrolledCount:    m.ClassScheduleEnrolledCount,
		ClassScheduleCreatedAt:        m.ClassScheduleCreatedAt,
		ClassScheduleUpdatedAt:        m.ClassScheduleUpdatedAt,
	}
}

func ToClassScheduleResponseList(models []model.ClassScheduleModel) []ClassScheduleResponse {
	out := make([]ClassScheduleResponse, 0, len(models))
	for _, m := range models {
		out = append(out, ToClassScheduleResponse(m))
	}
	return out
}
