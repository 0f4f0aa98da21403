package handler

import (
	"net/http"

	"go.uber.org/zap"
)

// ListLinks обрабатывает GET /api/links?search=&sort=
func (h *Handler) ListLinks(w http.ResponseWriter, req *http.Request) {
	query := req.URL.Query()

	links, err := h.service.List(req.Context(), query.Get("search"), query.Get("sort"))
	if err != nil {
		h.logger.Error("failed to list links", zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, "Failed to fetch links")
		return
	}

	h.writeJSON(w, http.StatusOK, links)
}
