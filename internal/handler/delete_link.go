package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Kranthi2741/tinylink/internal/model"
	"github.com/Kranthi2741/tinylink/internal/service"
)

// DeleteLink обрабатывает DELETE /api/links/{code}.
// Удаление необратимо: код сразу перестает разрешаться
// и может быть переиспользован последующей генерацией.
func (h *Handler) DeleteLink(w http.ResponseWriter, req *http.Request) {
	code := chi.URLParam(req, "code")

	err := h.service.Delete(req.Context(), model.Code(code))
	if err != nil {
		if errors.Is(err, service.ErrLinkNotFound) {
			h.writeError(w, http.StatusNotFound, "Link not found")
			return
		}

		h.logger.Error("failed to delete link",
			zap.String("code", code),
			zap.Error(err),
		)
		h.writeError(w, http.StatusInternalServerError, "Deletion failed")
		return
	}

	h.writeJSON(w, http.StatusOK, MessageResponse{Message: "Deleted successfully"})
}
