package migration

import (
	coreport "github.com/tobiadeyemi/pocketbudget/internal/domain/port/core"
	"github.com/tobiadeyemi/pocketbudget/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// MigrationManager manages database migrations
type MigrationManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewMigrationManager creates a new migration manager
func NewMigrationManager(db *gorm.DB, logger coreport.Logger) *MigrationManager {
	return &MigrationManager{
		db:     db,
		logger: logger,
	}
}

// MigrateAll performs all migrations
func (m *MigrationManager) MigrateAll() error {
	m.logger.Info("Starting database migrations", nil)

	if err := m.autoMigrateModels(); err != nil {
		m.logger.Error("Failed to auto-migrate models", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if err := m.createIndexes(); err != nil {
		m.logger.Error("Failed to create indexes", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	m.logger.Info("Database migrations completed successfully", nil)
	return nil
}

// autoMigrateModels auto-migrates database models
func (m *MigrationManager) autoMigrateModels() error {
	m.logger.Info("Auto-migrating database models", nil)

	return m.db.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Budget{},
		&model.Transaction{},
	)
}

// createIndexes creates database indexes that AutoMigrate cannot express
func (m *MigrationManager) createIndexes() error {
	m.logger.Info("Creating database indexes", nil)

	// One category per (title, creator) pair backs the idempotent lazy creation
	if err := m.db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_categories_title_creator_unique ON categories (title, creator_id)").Error; err != nil {
		return err
	}

	// Budget aggregation scans transactions by (budget_id, user_id)
	if err := m.db.Exec("CREATE INDEX IF NOT EXISTS idx_transactions_budget_user ON transactions (budget_id, user_id)").Error; err != nil {
		return err
	}

	// Report aggregation scans transactions by (user_id, type, created_at)
	if err := m.db.Exec("CREATE INDEX IF NOT EXISTS idx_transactions_user_type_created ON transactions (user_id, type, created_at)").Error; err != nil {
		return err
	}

	return nil
}
