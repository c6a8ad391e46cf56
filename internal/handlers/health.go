package handlers

import (
	"encoding/json"
	"net/http"
	"sync/atomic"

	"go.uber.org/zap"
)

// HealthHandler обрабатывает health check запросы
type HealthHandler struct {
	ready  atomic.Bool
	logger *zap.Logger
}

// NewHealthHandler создает новый HealthHandler; сервис сразу готов принимать трафик
func NewHealthHandler(logger *zap.Logger) *HealthHandler {
	h := &HealthHandler{logger: logger}
	h.ready.Store(true)
	return h
}

// HealthResponse представляет ответ health check
type HealthResponse struct {
	Status string `json:"status"`
}

// SetReady переключает готовность; при graceful shutdown сервис перестает быть готовым
func (h *HealthHandler) SetReady(ready bool) {
	h.ready.Store(ready)
}

// Health возвращает статус приложения
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(HealthResponse{Status: "ok"}); err != nil {
		h.logger.Error("failed to encode health response", zap.Error(err))
	}
}

// Ready возвращает готовность приложения принимать трафик
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if !h.ready.Load() {
		h.logger.Warn("readiness check failed: shutting down")
		http.Error(w, "Service Unavailable", http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
