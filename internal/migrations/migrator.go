package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
)

//go:embed schema/*.sql
var migrationFiles embed.FS

// Migrator применяет миграции схемы таблицы links.
// Запускается один раз при старте приложения, повторный запуск
// на актуальной схеме ничего не меняет.
type Migrator struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewMigrator создает новый экземпляр Migrator
func NewMigrator(db *sql.DB, logger *zap.Logger) *Migrator {
	return &Migrator{
		db:     db,
		logger: logger,
	}
}

// RunUp применяет все недостающие миграции
func (m *Migrator) RunUp() error {
	m.logger.Info("running database migrations")

	migrateInstance, err := m.newInstance()
	if err != nil {
		return err
	}
	defer migrateInstance.Close()

	err = migrateInstance.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if errors.Is(err, migrate.ErrNoChange) {
		m.logger.Info("database schema is up to date")
	} else {
		m.logger.Info("database migrations applied")
	}

	return nil
}

// Version возвращает текущую версию схемы
func (m *Migrator) Version() (uint, bool, error) {
	migrateInstance, err := m.newInstance()
	if err != nil {
		return 0, false, err
	}
	defer migrateInstance.Close()

	return migrateInstance.Version()
}

func (m *Migrator) newInstance() (*migrate.Migrate, error) {
	source, err := iofs.New(migrationFiles, "schema")
	if err != nil {
		return nil, fmt.Errorf("failed to create migration source: %w", err)
	}

	driver, err := postgres.WithInstance(m.db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres driver: %w", err)
	}

	migrateInstance, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}

	return migrateInstance, nil
}
