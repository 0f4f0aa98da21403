package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/handlers"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// start запускает HTTP сервер и блокируется до сигнала остановки
func (a *App) start() error {
	router := newRouter(a.handler, a.logger)

	// API вызывается фронтендом с другого origin
	corsRouter := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
		handlers.AllowedMethods([]string{
			http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions,
		}),
	)(router)

	srv := &http.Server{
		Addr:         a.config.ServerAddress.String(),
		Handler:      corsRouter,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	a.logger.Info("server started",
		zap.String("address", a.config.ServerAddress.String()),
		zap.String("base_url", a.config.BaseURL.String()),
	)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-quit:
		a.logger.Info("shutting down server", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	a.logger.Info("server stopped")

	return nil
}
