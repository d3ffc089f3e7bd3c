package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	alumniRoute "campushub_backend/internals/features/content/alumni/route"
	blogRoute "campushub_backend/internals/features/content/blog/route"
	lifeRoute "campushub_backend/internals/features/content/life/route"
	loungeRoute "campushub_backend/internals/features/content/lounge/route"
	schedulesRoute "campushub_backend/internals/features/school/schedules/route"
	studentsRoute "campushub_backend/internals/features/school/students/route"
	authRoute "campushub_backend/internals/features/users/auth/route"
	ossHelper "campushub_backend/internals/helpers/oss"
	authMw "campushub_backend/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	// Asset storage is optional at boot; controllers answer 503 on image
	// uploads when it is absent.
	var images *ossHelper.ImageService
	if svc, err := ossHelper.NewOSSServiceFromEnv(""); err != nil {
		log.Printf("[WARN] OSS storage not configured: %v", err)
	} else {
		images = &ossHelper.ImageService{Store: svc}
	}

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a", authMw.AuthMiddleware(db))

	log.Println("[INFO] Mounting Content routes...")
	blogRoute.BlogAdminRoutes(admin, db, images)
	loungeRoute.LoungeAdminRoutes(admin, db)
	lifeRoute.LifeAdminRoutes(admin, db)
	alumniRoute.AlumniAdminRoutes(admin, db, images)

	log.Println("[INFO] Mounting School routes...")
	studentsRoute.StudentAdminRoutes(admin, db)
	schedulesRoute.ClassScheduleAdminRoutes(admin, db)
}
