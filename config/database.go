package config

import (
	"log"

	"article-hub/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB opens the connection and migrates the two relations. The
// email unique index is what turns a concurrent duplicate signup into
// gorm.ErrDuplicatedKey instead of a lost race.
func InitDB(cfg Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Article{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	return db
}
