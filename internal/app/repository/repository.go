package repository

import (
	"fmt"

	"werkbon/internal/app/ds"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func New(dsn string) (*Repository, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	return &Repository{
		db: db,
	}, nil
}

// NewWithDB wraps an already opened connection.
func NewWithDB(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates or updates all tables.
func (r *Repository) Migrate() error {
	err := r.db.AutoMigrate(
		&ds.User{},
		&ds.Technician{},
		&ds.CatalogItem{},
		&ds.WorkOrder{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

func (r *Repository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
