package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/Kranthi2741/tinylink/internal/model"
	"github.com/Kranthi2741/tinylink/internal/service"
)

// CreateLinkRequest представляет тело запроса на создание короткой ссылки
type CreateLinkRequest struct {
	URL        string `json:"url"`
	CustomCode string `json:"customCode"`
}

// CreateLink обрабатывает POST /api/links
func (h *Handler) CreateLink(w http.ResponseWriter, req *http.Request) {
	var request CreateLinkRequest
	if err := json.NewDecoder(req.Body).Decode(&request); err != nil {
		h.logger.Warn("failed to decode create request",
			zap.Error(err),
			zap.String("remote_addr", req.RemoteAddr),
		)
		h.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	link, shortURL, err := h.service.Create(req.Context(), request.URL, request.CustomCode)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyURL):
			h.writeError(w, http.StatusBadRequest, "Destination URL is required")
		case errors.Is(err, service.ErrInvalidURL):
			h.writeError(w, http.StatusBadRequest, "Invalid URL format. Must be http:// or https://")
		case errors.Is(err, service.ErrInvalidCustomCode):
			h.writeError(w, http.StatusBadRequest,
				"Custom code must be 6-8 characters and only letters or numbers (A-Za-z0-9)")
		case errors.Is(err, service.ErrCodeTaken):
			h.writeError(w, http.StatusConflict, "That code is already taken")
		default:
			h.logger.Error("failed to create short link", zap.Error(err))
			h.writeError(w, http.StatusInternalServerError, "Failed to shorten URL")
		}
		return
	}

	h.writeJSON(w, http.StatusCreated, model.CreateLinkResponse{
		ShortURL: shortURL,
		Data:     link,
	})
}
