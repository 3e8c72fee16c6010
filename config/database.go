package config

import (
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"prompt-manager/models"
)

func InitDB(cfg *Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		zap.L().Fatal("failed to connect to database", zap.Error(err))
	}

	if err := AutoMigrate(db); err != nil {
		zap.L().Fatal("failed to migrate database", zap.Error(err))
	}

	return db
}

// AutoMigrate registers the prompt_tags join model and creates all tables.
// Shared with the test suites, which run it against an in-memory database.
func AutoMigrate(db *gorm.DB) error {
	if err := db.SetupJoinTable(&models.Prompt{}, "Tags", &models.PromptTagLink{}); err != nil {
		return err
	}

	return db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Subcategory{},
		&models.Tag{},
		&models.Prompt{},
		&models.PromptVersion{},
	)
}
