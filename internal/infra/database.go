package infra

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/WynandSouthAfrica/oppworks-procurement/internal/model"
)

// NewDatabase establishes a GORM connection backed by pgx and runs
// AutoMigrate. The schema is additive-only: AutoMigrate adds missing tables
// and columns but never drops or rewrites existing ones.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)

	if err := db.AutoMigrate(
		&model.Supplier{},
		&model.Project{},
		&model.Approver{},
		&model.Purchase{},
		&model.Document{},
	); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}

	return db, nil
}
