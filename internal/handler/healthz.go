package handler

import (
	"net/http"
	"time"
)

// Version - версия сервиса, отдаваемая в /healthz
const Version = "1.0"

// HealthzResponse представляет тело ответа liveness-проверки
type HealthzResponse struct {
	OK        bool      `json:"ok"`
	Version   string    `json:"version"`
	Uptime    float64   `json:"uptime"`
	Timestamp time.Time `json:"timestamp"`
	Status    string    `json:"status"`
}

// Healthz обрабатывает GET /healthz
func (h *Handler) Healthz(w http.ResponseWriter, req *http.Request) {
	h.writeJSON(w, http.StatusOK, HealthzResponse{
		OK:        true,
		Version:   Version,
		Uptime:    time.Since(h.startedAt).Seconds(),
		Timestamp: time.Now().UTC(),
		Status:    "running",
	})
}
