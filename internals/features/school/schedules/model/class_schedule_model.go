package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ClassScheduleVersion guards roster mutations: every enrolled_students
// write goes through UPDATE ... WHERE class_schedule_version = ?, so two
// admins editing the same roster cannot silently drop each other's change.
type ClassScheduleModel struct {
	ClassScheduleID               uuid.UUID                   `gorm:"column:class_schedule_id;type:uuid;primaryKey" json:"class_schedule_id"`
	ClassScheduleCourseCode       string                      `gorm:"column:class_schedule_course_code;type:varchar(50);not null" json:"class_schedule_course_code"`
	ClassScheduleCourseName       string                      `gorm:"column:class_schedule_course_name;type:varchar(255);not null" json:"class_schedule_course_name"`
	ClassScheduleInstructor       string                      `gorm:"column:class_schedule_instructor;type:varchar(255);not null" json:"class_schedule_instructor"`
	ClassScheduleSection          string                      `gorm:"column:class_schedule_section;type:varchar(50);not null" json:"class_schedule_section"`
	ClassScheduleTime             string                      `gorm:"column:class_schedule_time;type:varchar(50)" json:"class_schedule_time"`
	ClassScheduleDays             datatypes.JSONSlice[string] `gorm:"column:class_schedule_days" json:"class_schedule_days"`
	ClassScheduleBuilding         string                      `gorm:"column:class_schedule_building;type:varchar(100)" json:"class_schedule_building"`
	ClassScheduleRoom             string                      `gorm:"column:class_schedule_room;type:varchar(100)" json:"class_schedule_room"`
	ClassScheduleCredits          int                         `gorm:"column:class_schedule_credits;default:0" json:"class_schedule_credits"`
	ClassScheduleYearLevel        int                         `gorm:"column:class_schedule_year_level;default:0" json:"class_schedule_year_level"`
	ClassScheduleBatch            string                      `gorm:"column:class_schedule_batch;type:varchar(50)" json:"class_schedule_batch"`
	ClassScheduleEnrolledStudents datatypes.JSONSlice[string] `gorm:"column:class_schedule_enrolled_students" json:"class_schedule_enrolled_students"`
	ClassScheduleEnrolledCount    int                         `gorm:"column:class_schedule_enrolled_count;default:0" json:"class_schedule_enrolled_count"`
	ClassScheduleVersion          int                         `gorm:"column:class_schedule_version;default:1" json:"class_schedule_version"`
	ClassScheduleCreatedAt        time.Time                   `gorm:"column:class_schedule_created_at;autoCreateTime" json:"class_schedule_created_at"`
	ClassScheduleUpdatedAt        time.Time                   `gorm:"column:class_schedule_updated_at;autoUpdateTime" json:"class_schedule_updated_at"`
}

func (ClassScheduleModel) TableName() string {
	return "class_schedules"
}

func (m *ClassScheduleModel) BeforeCreate(tx *gorm.DB) error {
	if m.ClassScheduleID == uuid.Nil {
		m.ClassScheduleID = uuid.New()
	}
	if m.ClassScheduleVersion == 0 {
		m.ClassScheduleVersion = 1
	}
	return nil
}

// HasStudent reports whether the roster already holds the number.
func (m *ClassScheduleModel) HasStudent(studentNumber string) bool {
	for _, n := range m.ClassScheduleEnrolledStudents {
		if n == studentNumber {
			return true
		}
	}
	return false
}
