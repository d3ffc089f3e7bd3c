package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"campushub_backend/internals/features/school/schedules/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared&_pragma=foreign_keys(1)"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.ClassScheduleModel{}))
	t.Cleanup(func() {
		db.Exec("DELETE FROM class_schedules")
	})
	return db
}

func seedSchedule(t *testing.T, db *gorm.DB, enrolled ...string) *model.ClassScheduleModel {
	t.Helper()
	schedule := model.ClassScheduleModel{
		ClassScheduleCourseCode: "CS-4402",
		ClassScheduleCourseName: "Distributed Systems",
		ClassScheduleInstructor: "Dr. Hartono",
		ClassScheduleSection:    "A",
	}
	for _, n := range enrolled {
		schedule.ClassScheduleEnrolledStudents = append(schedule.ClassScheduleEnrolledStudents, n)
	}
	schedule.ClassScheduleEnrolledCount = len(enrolled)
	require.NoError(t, db.Create(&schedule).Error)
	return &schedule
}

func TestRosterService_AddStudent(t *testing.T) {
	db := newTestDB(t)
	svc := NewRosterService(db)
	seeded := seedSchedule(t, db, "2021001")

	got, err := svc.AddStudent(context.Background(), seeded.ClassScheduleID.String(), "2021002")
	require.NoError(t, err)

	assert.Equal(t, []string{"2021001", "2021002"}, []string(got.ClassScheduleEnrolledStudents))
	assert.Equal(t, 2, got.ClassScheduleEnrolledCount)
	assert.Equal(t, seeded.ClassScheduleVersion+1, got.ClassScheduleVersion)

	var stored model.ClassScheduleModel
	require.NoError(t, db.First(&stored, "class_schedule_id = ?", seeded.ClassScheduleID).Error)
	assert.Equal(t, 2, stored.ClassScheduleEnrolledCount)
	assert.Len(t, stored.ClassScheduleEnrolledStudents, stored.ClassScheduleEnrolledCount)
}

func TestRosterService_AddStudent_TrimsInput(t *testing.T) {
	db := newTestDB(t)
	svc := NewRosterService(db)
	seeded := seedSchedule(t, db)

	got, err := svc.AddStudent(context.Background(), seeded.ClassScheduleID.String(), "  2021003  ")
	require.NoError(t, err)
	assert.Equal(t, []string{"2021003"}, []string(got.ClassScheduleEnrolledStudents))
}

func TestRosterService_AddStudent_Duplicate(t *testing.T) {
	db := newTestDB(t)
	svc := NewRosterService(db)
	seeded := seedSchedule(t, db, "2021001")

	_, err := svc.AddStudent(context.Background(), seeded.ClassScheduleID.String(), "2021001")
	assert.ErrorIs(t, err, ErrDuplicateStudent)

	// Roster and version untouched by the failed add.
	var stored model.ClassScheduleModel
	require.NoError(t, db.First(&stored, "class_schedule_id = ?", seeded.ClassScheduleID).Error)
	assert.Equal(t, 1, stored.ClassScheduleEnrolledCount)
	assert.Equal(t, seeded.ClassScheduleVersion, stored.ClassScheduleVersion)
}

func TestRosterService_AddStudent_ScheduleMissing(t *testing.T) {
	db := newTestDB(t)
	svc := NewRosterService(db)

	_, err := svc.AddStudent(context.Background(), "1f8f7e1a-0000-0000-0000-000000000000", "2021001")
	assert.ErrorIs(t, err, ErrScheduleNotFound)
}

func TestRosterService_RemoveStudent(t *testing.T) {
	db := newTestDB(t)
	svc := NewRosterService(db)
	seeded := seedSchedule(t, db, "2021001", "2021002", "2021003")

	got, err := svc.RemoveStudent(context.Background(), seeded.ClassScheduleID.String(), "2021002")
	require.NoError(t, err)

	assert.Equal(t, []string{"2021001", "2021003"}, []string(got.ClassScheduleEnrolledStudents))
	assert.Equal(t, 2, got.ClassScheduleEnrolledCount)
	assert.Equal(t, seeded.ClassScheduleVersion+1, got.ClassScheduleVersion)
}

func TestRosterService_RemoveStudent_AbsentIsNoop(t *testing.T) {
	db := newTestDB(t)
	svc := NewRosterService(db)
	seeded := seedSchedule(t, db, "2021001")

	got, err := svc.RemoveStudent(context.Background(), seeded.ClassScheduleID.String(), "9999999")
	require.NoError(t, err)

	assert.Equal(t, []string{"2021001"}, []string(got.ClassScheduleEnrolledStudents))
	assert.Equal(t, 1, got.ClassScheduleEnrolledCount)
	// No write happened, so the version stays put.
	assert.Equal(t, seeded.ClassScheduleVersion, got.ClassScheduleVersion)
}

func TestRosterService_CountTracksRoster(t *testing.T) {
	db := newTestDB(t)
	svc := NewRosterService(db)
	seeded := seedSchedule(t, db)

	for i := 0; i < 5; i++ {
		_, err := svc.AddStudent(context.Background(), seeded.ClassScheduleID.String(), fmt.Sprintf("20210%02d", i))
		require.NoError(t, err)
	}
	got, err := svc.RemoveStudent(context.Background(), seeded.ClassScheduleID.String(), "202103")
	require.NoError(t, err)

	assert.Equal(t, 4, got.ClassScheduleEnrolledCount)
	assert.Len(t, got.ClassScheduleEnrolledStudents, got.ClassScheduleEnrolledCount)
}

// An out-of-band version bump between the read and the write forces the
// compare-and-swap to fail once; the loop re-reads and lands the change.
func TestRosterService_RetriesAfterVersionConflict(t *testing.T) {
	db := newTestDB(t)
	svc := NewRosterService(db)
	seeded := seedSchedule(t, db, "2021001")

	interfered := false
	got, err := svc.mutate(context.Background(), seeded.ClassScheduleID.String(), func(schedule *model.ClassScheduleModel) ([]string, error) {
		if !interfered {
			interfered = true
			require.NoError(t, db.Model(&model.ClassScheduleModel{}).
				Where("class_schedule_id = ?", schedule.ClassScheduleID).
				Update("class_schedule_version", schedule.ClassScheduleVersion+1).Error)
		}
		return append(append([]string(nil), schedule.ClassScheduleEnrolledStudents...), "2021002"), nil
	})
	require.NoError(t, err)

	assert.True(t, interfered)
	assert.Equal(t, 2, got.ClassScheduleEnrolledCount)
	assert.Equal(t, []string{"2021001", "2021002"}, []string(got.ClassScheduleEnrolledStudents))
}

func TestRosterService_ConflictAfterExhaustedRetries(t *testing.T) {
	db := newTestDB(t)
	svc := NewRosterService(db)
	seeded := seedSchedule(t, db)

	attempts := 0
	_, err := svc.mutate(context.Background(), seeded.ClassScheduleID.String(), func(schedule *model.ClassScheduleModel) ([]string, error) {
		attempts++
		require.NoError(t, db.Model(&model.ClassScheduleModel{}).
			Where("class_schedule_id = ?", schedule.ClassScheduleID).
			Update("class_schedule_version", schedule.ClassScheduleVersion+1).Error)
		return []string{"2021001"}, nil
	})

	assert.ErrorIs(t, err, ErrRosterConflict)
	assert.Equal(t, casMaxAttempts, attempts)
}
