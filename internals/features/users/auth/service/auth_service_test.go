package service

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
	gormLogger "gorm.io/gorm/logger"

	"campushub_backend/internals/configs"
	authModel "campushub_backend/internals/features/users/auth/model"
)

func newAuthTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	configs.JWTSecret = "auth-test-secret"

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&authModel.AdminModel{}, &authModel.TokenBlacklist{}))

	app := fiber.New()
	app.Post("/register", func(c *fiber.Ctx) error { return Register(db, c) })
	app.Post("/login", func(c *fiber.Ctx) error { return Login(db, c) })
	app.Get("/has-admin", func(c *fiber.Ctx) error { return HasAdmin(db, c) })
	return app, db
}

func postJSON(t *testing.T, app *fiber.App, path string, payload any) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req, -1)
	require.NoError(t, err)
	return res
}

func decodeBody(t *testing.T, res *http.Response) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.NewDecoder(res.Body).Decode(&out))
	return out
}

func registerAdmin(t *testing.T, app *fiber.App, username, password string) {
	t.Helper()
	res := postJSON(t, app, "/register", fiber.Map{
		"user_name":        username,
		"password":         password,
		"confirm_password": password,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)
}

func TestRegister_IssuesSession(t *testing.T) {
	app, db := newAuthTestApp(t)

	res := postJSON(t, app, "/register", fiber.Map{
		"user_name":        "campus_admin",
		"password":         "very-strong-pass",
		"confirm_password": "very-strong-pass",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)

	body := decodeBody(t, res)
	data := body["data"].(map[string]any)
	assert.NotEmpty(t, data["access_token"])

	var cookie string
	for _, c := range res.Cookies() {
		if c.Name == "access_token" {
			cookie = c.Value
		}
	}
	assert.NotEmpty(t, cookie)

	var stored authModel.AdminModel
	require.NoError(t, db.First(&stored, "admin_user_name = ?", "campus_admin").Error)
	assert.NotEqual(t, "very-strong-pass", stored.Password)
	assert.True(t, stored.IsActive)
}

func TestRegister_PasswordConfirmMismatch(t *testing.T) {
	app, _ := newAuthTestApp(t)

	res := postJSON(t, app, "/register", fiber.Map{
		"user_name":        "campus_admin",
		"password":         "very-strong-pass",
		"confirm_password": "something-else",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, res.StatusCode)
}

func TestRegister_DuplicateUsernameCaseInsensitive(t *testing.T) {
	app, _ := newAuthTestApp(t)
	registerAdmin(t, app, "Campus_Admin", "very-strong-pass")

	res := postJSON(t, app, "/register", fiber.Map{
		"user_name":        "campus_admin",
		"password":         "another-pass-123",
		"confirm_password": "another-pass-123",
	})
	assert.Equal(t, http.StatusConflict, res.StatusCode)
}

func TestLogin(t *testing.T) {
	app, _ := newAuthTestApp(t)
	registerAdmin(t, app, "campus_admin", "very-strong-pass")

	res := postJSON(t, app, "/login", fiber.Map{
		"user_name": "campus_admin",
		"password":  "very-strong-pass",
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	body := decodeBody(t, res)
	data := body["data"].(map[string]any)
	assert.NotEmpty(t, data["access_token"])
}

func TestLogin_UsernameIsCaseInsensitive(t *testing.T) {
	app, _ := newAuthTestApp(t)
	registerAdmin(t, app, "campus_admin", "very-strong-pass")

	res := postJSON(t, app, "/login", fiber.Map{
		"user_name": "CAMPUS_ADMIN",
		"password":  "very-strong-pass",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestLogin_SameAnswerForBothFailureModes(t *testing.T) {
	app, _ := newAuthTestApp(t)
	registerAdmin(t, app, "campus_admin", "very-strong-pass")

	wrongPass := postJSON(t, app, "/login", fiber.Map{
		"user_name": "campus_admin",
		"password":  "wrong-password!",
	})
	noUser := postJSON(t, app, "/login", fiber.Map{
		"user_name": "nobody_here",
		"password":  "wrong-password!",
	})

	assert.Equal(t, http.StatusUnauthorized, wrongPass.StatusCode)
	assert.Equal(t, http.StatusUnauthorized, noUser.StatusCode)
	assert.Equal(t, decodeBody(t, wrongPass)["message"], decodeBody(t, noUser)["message"])
}

func TestLogin_DisabledAccount(t *testing.T) {
	app, db := newAuthTestApp(t)
	registerAdmin(t, app, "campus_admin", "very-strong-pass")
	require.NoError(t, db.Model(&authModel.AdminModel{}).
		Where("admin_user_name = ?", "campus_admin").
		Update("admin_is_active", false).Error)

	res := postJSON(t, app, "/login", fiber.Map{
		"user_name": "campus_admin",
		"password":  "very-strong-pass",
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestHasAdmin(t *testing.T) {
	app, _ := newAuthTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/has-admin", nil)
	res, err := app.Test(req, -1)
	require.NoError(t, err)
	body := decodeBody(t, res)
	assert.Equal(t, false, body["data"].(map[string]any)["has_admin"])

	registerAdmin(t, app, "campus_admin", "very-strong-pass")

	res, err = app.Test(httptest.NewRequest(http.MethodGet, "/has-admin", nil), -1)
	require.NoError(t, err)
	body = decodeBody(t, res)
	assert.Equal(t, true, body["data"].(map[string]any)["has_admin"])
}
