package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Kranthi2741/tinylink/internal/config"
	"github.com/Kranthi2741/tinylink/internal/config/db"
	"github.com/Kranthi2741/tinylink/internal/handler"
	"github.com/Kranthi2741/tinylink/internal/migrations"
	"github.com/Kranthi2741/tinylink/internal/service"
	"github.com/Kranthi2741/tinylink/internal/store"
)

// initDependencies инициализирует все зависимости приложения
func initDependencies(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*handler.Handler, db.Database, error) {
	storage, dbPool, err := initStorage(ctx, cfg, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	linkService := service.NewLinkService(storage, cfg, logger)
	h := handler.New(linkService, logger)

	return h, dbPool, nil
}

// initStorage создает хранилище на основе конфигурации.
// С заданным DSN подключается к PostgreSQL и применяет миграции,
// без него используется хранилище в памяти.
func initStorage(ctx context.Context, cfg *config.Config, logger *zap.Logger) (store.Store, db.Database, error) {
	if cfg.DatabaseDSN == "" {
		logger.Info("using in-memory storage")
		return store.NewMemoryStore(), nil, nil
	}

	database, err := db.NewConfig(cfg.DatabaseDSN).Connect(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	migrator := migrations.NewMigrator(database.DB(), logger)
	if err := migrator.RunUp(); err != nil {
		database.Close()
		return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("using PostgreSQL storage")

	return store.NewDatabaseStore(database), database, nil
}
