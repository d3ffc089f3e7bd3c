package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"campushub_backend/internals/features/school/schedules/model"
)

var (
	ErrScheduleNotFound = errors.New("class schedule not found")
	ErrDuplicateStudent = errors.New("student already enrolled")
	ErrRosterConflict   = errors.New("roster changed concurrently, retry")
)

// casMaxAttempts bounds the re-read/retry loop on version conflicts.
const casMaxAttempts = 3

// RosterService mutates the enrolled_students list of a class schedule.
// Every write is a compare-and-swap on class_schedule_version: the UPDATE
// carries the version the mutation was computed from, and zero affected
// rows means another writer got there first, so the service re-reads and
// retries up to casMaxAttempts before reporting a conflict.
type RosterService struct {
	DB *gorm.DB
}

func NewRosterService(db *gorm.DB) *RosterService {
	return &RosterService{DB: db}
}

// AddStudent appends the number to the roster. Adding a number that is
// already on the roster fails with ErrDuplicateStudent.
func (s *RosterService) AddStudent(ctx context.Context, scheduleID string, studentNumber string) (*model.ClassScheduleModel, error) {
	studentNumber = strings.TrimSpace(studentNumber)

	return s.mutate(ctx, scheduleID, func(schedule *model.ClassScheduleModel) ([]string, error) {
		if schedule.HasStudent(studentNumber) {
			return nil, ErrDuplicateStudent
		}
		roster := append([]string(nil), schedule.ClassScheduleEnrolledStudents...)
		return append(roster, studentNumber), nil
	})
}

// RemoveStudent drops the number from the roster. Removing a number that
// is not on the roster is a no-op and succeeds.
func (s *RosterService) RemoveStudent(ctx context.Context, scheduleID string, studentNumber string) (*model.ClassScheduleModel, error) {
	studentNumber = strings.TrimSpace(studentNumber)

	return s.mutate(ctx, scheduleID, func(schedule *model.ClassScheduleModel) ([]string, error) {
		if !schedule.HasStudent(studentNumber) {
			return nil, nil
		}
		roster := make([]string, 0, len(schedule.ClassScheduleEnrolledStudents))
		for _, n := range schedule.ClassScheduleEnrolledStudents {
			if n != studentNumber {
				roster = append(roster, n)
			}
		}
		return roster, nil
	})
}

// mutate runs the CAS loop. apply receives the freshly read schedule and
// returns the new roster, or nil to signal an intentional no-op.
func (s *RosterService) mutate(ctx context.Context, scheduleID string, apply func(*model.ClassScheduleModel) ([]string, error)) (*model.ClassScheduleModel, error) {
	for attempt := 0; attempt < casMaxAttempts; attempt++ {
		var schedule model.ClassScheduleModel
		err := s.DB.WithContext(ctx).
			Where("class_schedule_id = ?", scheduleID).
			First(&schedule).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrScheduleNotFound
			}
			return nil, err
		}

		roster, err := apply(&schedule)
		if err != nil {
			return nil, err
		}
		if roster == nil {
			return &schedule, nil
		}

		res := s.DB.WithContext(ctx).
			Model(&model.ClassScheduleModel{}).
			Where("class_schedule_id = ? AND class_schedule_version = ?", schedule.ClassScheduleID, schedule.ClassScheduleVersion).
			Updates(map[string]interface{}{
				"class_schedule_enrolled_students": datatypes.NewJSONSlice(roster),
				"class_schedule_enrolled_count":    len(roster),
				"class_schedule_version":           schedule.ClassScheduleVersion + 1,
				"class_schedule_updated_at":        time.Now(),
			})
		if res.Error != nil {
			return nil, res.Error
		}
		if res.RowsAffected == 1 {
			schedule.ClassScheduleEnrolledStudents = datatypes.NewJSONSlice(roster)
			schedule.ClassScheduleEnrolledCount = len(roster)
			schedule.ClassScheduleVersion++
			return &schedule, nil
		}
		// Lost the race; loop re-reads the current roster.
	}
	return nil, ErrRosterConflict
}
