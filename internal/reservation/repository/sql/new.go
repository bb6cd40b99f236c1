package sql

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/belenfg/restaurant-chatbot/internal/reservation/repository"
	"github.com/belenfg/restaurant-chatbot/pkg/log"
)

// Ordinal collisions from concurrent writers in other processes are retried.
const maxAppendAttempts = 3

type implRepository struct {
	db *gorm.DB
	l  log.Logger
}

var _ repository.Repository = (*implRepository)(nil)

// New opens the database and migrates the schema.
func New(ctx context.Context, driver, dsn string, l log.Logger) (*implRepository, error) {
	gormDB, err := OpenGorm(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open gorm store: %w", err)
	}

	r := &implRepository{db: gormDB, l: l}
	if err := r.migrate(); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	l.Infof(ctx, "sql store ready (driver=%s)", driver)
	return r, nil
}

func (r *implRepository) migrate() error {
	return r.db.AutoMigrate(&reservationRow{}, &customerRow{})
}

func (r *implRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("get sql db: %w", err)
	}
	return sqlDB.Close()
}
