package app

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Kranthi2741/tinylink/internal/handler"
	"github.com/Kranthi2741/tinylink/internal/middleware"
)

// newRouter создает и настраивает роутер приложения.
// Статические маршруты /healthz и /api имеют приоритет над
// корневым шаблоном редиректа /{code}.
func newRouter(h *handler.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Gzip(logger))

	// Routes
	r.Get("/healthz", h.Healthz)

	r.Route("/api/links", func(r chi.Router) {
		r.Post("/", h.CreateLink)
		r.Get("/", h.ListLinks)
		r.Get("/{code}", h.GetLink)
		r.Delete("/{code}", h.DeleteLink)
	})

	r.Get("/{code}", h.Redirect)

	return r
}
