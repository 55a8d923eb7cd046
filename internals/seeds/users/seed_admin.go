// file: internals/seeds/users/seed_admin.go
package users

import (
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"academia_backend/internals/configs"
	"academia_backend/internals/constants"
	userModel "academia_backend/internals/features/people/users/model"
)

// SeedAdminUser makes sure one bootstrap admin account exists so the system
// is operable on a fresh database. Credentials come from SEED_ADMIN_EMAIL /
// SEED_ADMIN_PASSWORD; skipped silently when they are not set.
func SeedAdminUser(db *gorm.DB) {
	email := configs.SeedAdminEmail
	password := configs.SeedAdminPassword
	if email == "" || password == "" {
		log.Println("⚠️ SEED_ADMIN_EMAIL/SEED_ADMIN_PASSWORD not set, skipping admin seed")
		return
	}

	var existing userModel.UserModel
	err := db.First(&existing, "user_email = ?", email).Error
	if err == nil {
		return // already seeded
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("❌ Admin seed check failed: %v", err)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("❌ Failed to hash admin password: %v", err)
		return
	}

	admin := userModel.UserModel{
		UserEmail:        email,
		UserPasswordHash: string(hash),
		UserRole:         constants.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Printf("❌ Failed to seed admin user: %v", err)
		return
	}
	log.Printf("✅ Admin user seeded (%s)", email)
}
