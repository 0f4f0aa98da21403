package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Kranthi2741/tinylink/internal/model"
	"github.com/Kranthi2741/tinylink/internal/service"
)

// GetLink обрабатывает GET /api/links/{code}: возвращает запись
// для страницы статистики, не увеличивая счетчик переходов
func (h *Handler) GetLink(w http.ResponseWriter, req *http.Request) {
	code := chi.URLParam(req, "code")

	link, err := h.service.GetByCode(req.Context(), model.Code(code))
	if err != nil {
		if errors.Is(err, service.ErrLinkNotFound) {
			h.writeError(w, http.StatusNotFound, "Link not found")
			return
		}

		h.logger.Error("failed to get link info",
			zap.String("code", code),
			zap.Error(err),
		)
		h.writeError(w, http.StatusInternalServerError, "Server error")
		return
	}

	h.writeJSON(w, http.StatusOK, link)
}
