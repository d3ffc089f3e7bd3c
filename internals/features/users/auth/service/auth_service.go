package service

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"campushub_backend/internals/configs"
	"campushub_backend/internals/features/users/auth/dto"
	authModel "campushub_backend/internals/features/users/auth/model"
	authRepo "campushub_backend/internals/features/users/auth/repository"
	helpers "campushub_backend/internals/helpers"
)

var validateAuth = validator.New()

const sessionTTLDefault = 24 * time.Hour

/* ==========================
   REGISTER
========================== */

// Register creates the sole console credential and opens a session. The
// console calls this only while HasAdmin reports false; a concurrent second
// registration is still rejected on the username match.
func Register(db *gorm.DB, c *fiber.Ctx) error {
	var input dto.RegisterRequest
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	input.UserName = strings.TrimSpace(input.UserName)

	if err := validateAuth.Struct(&input); err != nil {
		return helpers.JsonValidationError(c, helpers.ValidationMap(err))
	}
	if input.Password != input.ConfirmPassword {
		return helpers.JsonValidationError(c, map[string][]string{
			"ConfirmPassword": {"passwords do not match"},
		})
	}

	// Case-insensitive duplicate guard, before any write.
	if _, err := authRepo.FindAdminByUserName(db, input.UserName); err == nil {
		return helpers.JsonError(c, fiber.StatusConflict, "Username already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to check existing admin")
	}

	hash, err := HashPassword(input.Password)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Password hashing failed")
	}

	admin := authModel.AdminModel{
		UserName: input.UserName,
		Password: hash,
		IsActive: true,
	}
	if err := authRepo.CreateAdmin(db, &admin); err != nil {
		if helpers.IsUniqueViolation(err) {
			return helpers.JsonError(c, fiber.StatusConflict, "Username already registered")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to create admin")
	}

	return issueSession(c, admin, fiber.StatusCreated, "Registration successful")
}

/* ==========================
   LOGIN
========================== */

// Login deliberately reports the same failure for an unknown username and a
// wrong password.
func Login(db *gorm.DB, c *fiber.Ctx) error {
	var input dto.LoginRequest
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	input.UserName = strings.TrimSpace(input.UserName)

	if err := validateAuth.Struct(&input); err != nil {
		return helpers.JsonValidationError(c, helpers.ValidationMap(err))
	}

	admin, err := authRepo.FindAdminByUserName(db, input.UserName)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Invalid username or password")
	}
	if !admin.IsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "Account is disabled")
	}
	if err := CheckPasswordHash(admin.Password, input.Password); err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Invalid username or password")
	}

	return issueSession(c, *admin, fiber.StatusOK, "Login successful")
}

/* ==========================
   SESSION
========================== */

// HasAdmin tells the console whether to offer the registration form.
func HasAdmin(db *gorm.DB, c *fiber.Ctx) error {
	n, err := authRepo.CountAdmins(db)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to check admin")
	}
	return helpers.JsonOK(c, "", fiber.Map{"has_admin": n > 0})
}

func Me(db *gorm.DB, c *fiber.Ctx) error {
	idStr, ok := c.Locals("admin_id").(string)
	if !ok || idStr == "" {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	adminID, err := uuid.Parse(idStr)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Invalid admin id")
	}

	var admin authModel.AdminModel
	if err := db.First(&admin, "admin_id = ?", adminID).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "Admin not found")
	}
	return helpers.JsonOK(c, "", dto.ToAdminResponse(admin))
}

// Logout revokes the current token and clears the session cookie.
func Logout(db *gorm.DB, c *fiber.Ctx) error {
	raw, _ := c.Locals("jwt_token").(string)
	if raw == "" {
		raw = strings.TrimSpace(c.Cookies("access_token"))
	}
	if raw != "" {
		ttl := sessionTTL()
		if claims, ok := c.Locals("jwt_claims").(jwt.MapClaims); ok {
			if expFloat, ok := claims["exp"].(float64); ok {
				if rem := time.Until(time.Unix(int64(expFloat), 0)); rem > 0 {
					ttl = rem
				}
			}
		}
		if err := authRepo.BlacklistToken(db, raw, ttl); err != nil && !helpers.IsUniqueViolation(err) {
			return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to revoke session")
		}
	}

	clearSessionCookie(c)
	return helpers.JsonOK(c, "Logged out", nil)
}

/* ==========================
   Helpers
========================== */

func sessionTTL() time.Duration {
	if v := configs.GetEnv("SESSION_TTL_HOURS"); v != "" {
		if d, err := time.ParseDuration(v + "h"); err == nil && d > 0 {
			return d
		}
	}
	return sessionTTLDefault
}

func issueSession(c *fiber.Ctx, admin authModel.AdminModel, status int, message string) error {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "JWT_SECRET is not set")
	}

	now := time.Now().UTC()
	exp := now.Add(sessionTTL())
	claims := jwt.MapClaims{
		"typ":       "access",
		"sub":       admin.ID.String(),
		"id":        admin.ID.String(),
		"user_name": admin.UserName,
		"iat":       now.Unix(),
		"exp":       exp.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Failed to sign session token")
	}

	// Durable client-side session: the cookie survives a console reload and
	// the middleware trusts a valid token without re-verifying credentials.
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		Expires:  exp,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
		Path:     "/",
	})

	body := dto.SessionResponse{
		AccessToken: token,
		ExpiresAt:   exp,
		Admin:       dto.ToAdminResponse(admin),
	}
	if status == fiber.StatusCreated {
		return helpers.JsonCreated(c, message, body)
	}
	return helpers.JsonOK(c, message, body)
}

func clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
		Path:     "/",
	})
}
