package main

import (
	"gorm.io/gorm"

	"github.com/okan-kantar/portfolio-backend/internal/models"
)

func registerModels() []any {
	return []any{
		&models.PersonalInfo{},
		&models.SiteSettings{},
		&models.Education{},
		&models.Experience{},
		&models.Skill{},
		&models.Project{},
		&models.Certificate{},
		&models.ContactMessage{},
	}
}

func runMigrations(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "pgcrypto"`).Error; err != nil {
		return err
	}

	if err := db.AutoMigrate(registerModels()...); err != nil {
		return err
	}

	// Singleton guard: a partial unique index over a constant expression
	// admits at most one live row regardless of concurrent writers.
	singletonGuards := []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS uniq_personal_infos_singleton ON personal_infos ((1)) WHERE deleted_at IS NULL`,
		`CREATE UNIQUE INDEX IF NOT EXISTS uniq_site_settings_singleton ON site_settings ((1)) WHERE deleted_at IS NULL`,
	}
	for _, stmt := range singletonGuards {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}

	return nil
}
