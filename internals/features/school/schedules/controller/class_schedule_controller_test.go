package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"campushub_backend/internals/features/school/schedules/dto"
	"campushub_backend/internals/features/school/schedules/model"
	studentModel "campushub_backend/internals/features/school/students/model"
)

func newScheduleTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.ClassScheduleModel{}, &studentModel.StudentModel{}))

	ctrl := NewClassScheduleController(db)
	app := fiber.New()
	app.Post("/class-schedules", ctrl.Create)
	app.Get("/class-schedules/:id", ctrl.GetByID)
	app.Get("/class-schedules/:id/students", ctrl.GetRoster)
	app.Post("/class-schedules/:id/students", ctrl.AddStudent)
	app.Delete("/class-schedules/:id/students/:student_number", ctrl.RemoveStudent)
	return app, db
}

func jsonReq(t *testing.T, method, path string, payload any) *http.Request {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func createSchedule(t *testing.T, app *fiber.App) dto.ClassScheduleResponse {
	t.Helper()
	res, err := app.Test(jsonReq(t, http.MethodPost, "/class-schedules", fiber.Map{
		"course_code": "CS-3201",
		"course_name": "Operating Systems",
		"instructor":  "Dr. Hartono",
		"section":     "A",
		"time":        "09:00-10:40",
		"days":        []string{"mon", "wed"},
		"building":    "Engineering",
		"room":        "E-204",
		"credits":     3,
	}), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, res.StatusCode)

	var body struct {
		Data dto.ClassScheduleResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	return body.Data
}

func TestClassSchedule_CreateStartsEmpty(t *testing.T) {
	app, _ := newScheduleTestApp(t)

	schedule := createSchedule(t, app)
	assert.Empty(t, schedule.ClassScheduleEnrolledStudents)
	assert.Zero(t, schedule.ClassScheduleEnrolledCount)
	assert.Equal(t, []string{"mon", "wed"}, schedule.ClassScheduleDays)
}

func TestClassSchedule_AddAndRemoveStudent(t *testing.T) {
	app, _ := newScheduleTestApp(t)
	schedule := createSchedule(t, app)
	base := "/class-schedules/" + schedule.ClassScheduleID.String()

	res, err := app.Test(jsonReq(t, http.MethodPost, base+"/students", fiber.Map{"student_number": "2024101"}), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)

	// Same number again conflicts.
	res, err = app.Test(jsonReq(t, http.MethodPost, base+"/students", fiber.Map{"student_number": "2024101"}), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, res.StatusCode)

	res, err = app.Test(httptest.NewRequest(http.MethodDelete, base+"/students/2024101", nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var body struct {
		Data dto.ClassScheduleResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	assert.Empty(t, body.Data.ClassScheduleEnrolledStudents)
	assert.Zero(t, body.Data.ClassScheduleEnrolledCount)
}

func TestClassSchedule_RosterResolvesNames(t *testing.T) {
	app, db := newScheduleTestApp(t)
	schedule := createSchedule(t, app)
	base := "/class-schedules/" + schedule.ClassScheduleID.String()

	require.NoError(t, db.Create(&studentModel.StudentModel{
		StudentNumber: "2024101",
		StudentName:   "Rani Wijaya",
	}).Error)

	for _, n := range []string{"2024101", "9999999"} {
		res, err := app.Test(jsonReq(t, http.MethodPost, base+"/students", fiber.Map{"student_number": n}), -1)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, res.StatusCode)
	}

	res, err := app.Test(httptest.NewRequest(http.MethodGet, base+"/students", nil), -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var body struct {
		Data dto.ClassScheduleRosterResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
	require.Len(t, body.Data.EnrolledStudents, 2)
	assert.Equal(t, "Rani Wijaya", body.Data.EnrolledStudents[0].StudentName)
	// Number without a students row is still listed, just unnamed.
	assert.Equal(t, "9999999", body.Data.EnrolledStudents[1].StudentNumber)
	assert.Empty(t, body.Data.EnrolledStudents[1].StudentName)
}

func TestClassSchedule_RosterForMissingSchedule(t *testing.T) {
	app, _ := newScheduleTestApp(t)

	res, err := app.Test(jsonReq(t, http.MethodPost, "/class-schedules/5a7c1d20-0000-0000-0000-000000000000/students", fiber.Map{"student_number": "2024101"}), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}
