package app

import (
	"context"

	"go.uber.org/zap"

	"github.com/Kranthi2741/tinylink/internal/config"
	"github.com/Kranthi2741/tinylink/internal/config/db"
	"github.com/Kranthi2741/tinylink/internal/handler"
)

// App представляет приложение сервиса коротких ссылок
type App struct {
	config  *config.Config
	logger  *zap.Logger
	handler *handler.Handler
	dbPool  db.Database
}

// New создает новый экземпляр приложения
func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}

	h, dbPool, err := initDependencies(ctx, cfg, logger)
	if err != nil {
		logger.Sync()
		return nil, err
	}

	return &App{
		config:  cfg,
		logger:  logger,
		handler: h,
		dbPool:  dbPool,
	}, nil
}

// Run запускает приложение
func Run() error {
	app, err := New(context.Background())
	if err != nil {
		return err
	}
	defer app.logger.Sync()
	defer app.Close()

	return app.start()
}

// Close освобождает ресурсы приложения
func (a *App) Close() {
	if a.dbPool != nil {
		a.dbPool.Close()
	}
}
