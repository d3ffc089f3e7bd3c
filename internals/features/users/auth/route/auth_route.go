package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "campushub_backend/internals/features/users/auth/controller"
	rateLimiter "campushub_backend/internals/middlewares"
	authMw "campushub_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := controller.NewAuthController(db)

	// Base: /api/auth
	baseAuth := app.Group("/api/auth")

	// Public
	baseAuth.Get("/has-admin", authController.HasAdmin)
	baseAuth.Post("/login", rateLimiter.LoginRateLimiter(), authController.Login)
	baseAuth.Post("/register", rateLimiter.RegisterRateLimiter(), authController.Register)

	// Session-bound
	protected := app.Group("/api/auth", authMw.AuthMiddleware(db))
	protected.Post("/logout", authController.Logout)
	protected.Get("/me", authController.Me)
}
