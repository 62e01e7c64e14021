package db

import (
	"fmt"

	"gorm.io/gorm"

	types "github.com/adminportal/fichas-backend/internal/domain"
)

func AutoMigrateAll(db *gorm.DB) error {
	if err := db.AutoMigrate(

		// Geography
		&types.CCAA{},
		&types.Provincia{},

		// Reference entities
		&types.Portal{},
		&types.Tematica{},

		// Core records + join rows
		&types.Ficha{},
		&types.FichaPortal{},
		&types.FichaTematica{},
	); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}

	// Composite index serving every time-bucketed aggregation.
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_ficha_created_ambito
		ON ficha (created_at, ambito)
		WHERE deleted_at IS NULL
	`).Error; err != nil {
		return fmt.Errorf("create idx_ficha_created_ambito: %w", err)
	}
	return nil
}
