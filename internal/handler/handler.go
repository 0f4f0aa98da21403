package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/Kranthi2741/tinylink/internal/model"
)

// LinkService определяет операции сервиса ссылок, используемые обработчиками
type LinkService interface {
	Create(ctx context.Context, originalURL, customCode string) (model.Link, string, error)
	ResolveAndTrack(ctx context.Context, code model.Code) (string, error)
	List(ctx context.Context, search, sortValue string) ([]model.Link, error)
	GetByCode(ctx context.Context, code model.Code) (model.Link, error)
	Delete(ctx context.Context, code model.Code) error
}

// Handler обрабатывает HTTP запросы, транслируя ошибки сервиса
// в статусы ответа. Детали внутренних ошибок в ответ не попадают.
type Handler struct {
	service   LinkService
	logger    *zap.Logger
	startedAt time.Time
}

// New создает новый Handler
func New(service LinkService, logger *zap.Logger) *Handler {
	return &Handler{
		service:   service,
		logger:    logger,
		startedAt: time.Now(),
	}
}

// ErrorResponse представляет тело ответа с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse представляет тело ответа с сообщением
type MessageResponse struct {
	Message string `json:"message"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, statusCode int, message string) {
	h.writeJSON(w, statusCode, ErrorResponse{Error: message})
}
