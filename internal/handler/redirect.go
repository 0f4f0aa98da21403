package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Kranthi2741/tinylink/internal/model"
	"github.com/Kranthi2741/tinylink/internal/service"
)

// Redirect обрабатывает GET /{code}: разрешает код, учитывает переход
// и отвечает временным редиректом. Ответы здесь в виде простого текста,
// так как запрос приходит из адресной строки браузера, а не от фронтенда.
func (h *Handler) Redirect(w http.ResponseWriter, req *http.Request) {
	code := chi.URLParam(req, "code")

	originalURL, err := h.service.ResolveAndTrack(req.Context(), model.Code(code))
	if err != nil {
		if errors.Is(err, service.ErrLinkNotFound) {
			// Удаленные коды не разрешаются: записи больше нет
			http.Error(w, "Short URL not found", http.StatusNotFound)
			return
		}

		h.logger.Error("failed to resolve short code",
			zap.String("code", code),
			zap.Error(err),
		)
		http.Error(w, "Server error", http.StatusInternalServerError)
		return
	}

	// Всегда 302, а не 301: удаление ссылки не должно оставаться
	// закэшированным клиентами и прокси навсегда
	http.Redirect(w, req, originalURL, http.StatusFound)
}
