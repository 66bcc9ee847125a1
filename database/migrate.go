package database

import (
	"gorm.io/gorm"

	"github.com/pbrudny/financial-decisions-retro/models"
)

// Migrate creates or updates the schema for every entity.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Decision{},
		&models.Assessment{},
		&models.AssessmentItem{},
		&models.Responsibility{},
		&models.SharedConclusion{},
		&models.MetaConclusion{},
	)
}
