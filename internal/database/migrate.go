package database

import (
	"gorm.io/gorm"

	"github.com/nutrivo/backend/internal/models"
)

// Migrate runs GORM auto-migration for all persisted models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Recipe{},
		&models.RecipeRating{},
	)
}
