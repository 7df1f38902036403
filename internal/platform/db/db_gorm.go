// Package db opens the PostgreSQL connection used by the application.
package db

import (
	"log"
	"time"

	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"fanbase_backend/internal/feature/user/domain/entity"
	"fanbase_backend/internal/platform/config"
)

// OpenDB connects to PostgreSQL using the configured connection string,
// retrying until a deadline so the server survives a database that is
// still starting up. Migrations run only when RUN_MIGRATIONS is set.
func OpenDB(cfg *config.Config) *gorm.DB {
	if cfg.DBConnectionString == "" {
		log.Fatal("DB_CONNECTION_STRING is not set")
	}

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(gpostgres.Open(cfg.DBConnectionString), &gorm.Config{
			TranslateError: true,
		})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if cfg.RunMigrations {
		if err := db.AutoMigrate(&entity.User{}); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
