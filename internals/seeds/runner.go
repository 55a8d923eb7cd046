package seeds

import (
	"gorm.io/gorm"

	users "academia_backend/internals/seeds/users"
)

func RunAllSeeds(db *gorm.DB) {
	users.SeedAdminUser(db)
}
