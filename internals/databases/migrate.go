package database

import (
	"log"
	"os"
	"strings"

	alumniModel "campushub_backend/internals/features/content/alumni/model"
	blogModel "campushub_backend/internals/features/content/blog/model"
	lifeModel "campushub_backend/internals/features/content/life/model"
	loungeModel "campushub_backend/internals/features/content/lounge/model"
	schedulesModel "campushub_backend/internals/features/school/schedules/model"
	studentsModel "campushub_backend/internals/features/school/students/model"
	authModel "campushub_backend/internals/features/users/auth/model"
)

// AutoMigrate creates/updates the schema when DB_AUTO_MIGRATE is set.
// Production environments keep it off and manage the schema externally.
func AutoMigrate() {
	v := strings.ToLower(os.Getenv("DB_AUTO_MIGRATE"))
	if v != "1" && v != "true" && v != "yes" {
		return
	}

	log.Println("🔧 Running schema auto-migration...")
	err := DB.AutoMigrate(
		&authModel.AdminModel{},
		&authModel.TokenBlacklist{},
		&blogModel.BlogPostModel{},
		&loungeModel.LoungeItemModel{},
		&lifeModel.LifeItemModel{},
		&alumniModel.FeaturedAlumnusModel{},
		&alumniModel.SuccessStoryModel{},
		&studentsModel.StudentModel{},
		&schedulesModel.ClassScheduleModel{},
	)
	if err != nil {
		log.Fatalf("❌ auto-migration failed: %v", err)
	}
	log.Println("✅ Schema up to date.")
}
