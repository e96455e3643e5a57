package config

import (
	"github.com/unifeed/unifeed/global"
	"github.com/unifeed/unifeed/logger"
	"github.com/unifeed/unifeed/models"
)

// MigrateDB runs database migrations
func MigrateDB() {
	err := global.DB.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.FeedSource{},
		&models.CachedDocument{},
	)
	if err != nil {
		logger.L.Fatalf("Failed to migrate database: %v", err)
	}
	logger.L.Info("Database migration completed successfully")
}
