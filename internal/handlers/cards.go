package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/avc/cardbrand/internal/domain"
	"github.com/avc/cardbrand/internal/service"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CardsHandler struct {
	cardService  domain.CardService
	maxBodyBytes int64
	logger       *zap.Logger
}

func NewCardsHandler(cardService domain.CardService, maxBodyBytes int64, logger *zap.Logger) *CardsHandler {
	return &CardsHandler{
		cardService:  cardService,
		maxBodyBytes: maxBodyBytes,
		logger:       logger,
	}
}

type batchRequest struct {
	Numbers []string `json:"numbers"`
}

// Check проверяет номер карты, переданный в теле запроса как text/plain
func (h *CardsHandler) Check(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBodyBytes))
	if err != nil {
		h.writeBodyError(w, err)
		return
	}

	h.check(w, r, string(body))
}

// CheckByPath проверяет номер карты из пути запроса
func (h *CardsHandler) CheckByPath(w http.ResponseWriter, r *http.Request) {
	h.check(w, r, chi.URLParam(r, "number"))
}

func (h *CardsHandler) check(w http.ResponseWriter, r *http.Request, number string) {
	result, err := h.cardService.Check(r.Context(), number)
	if err != nil {
		if errors.Is(err, service.ErrEmptyCardNumber) {
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}
		h.logger.Error("failed to check card", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, result)
}

// CheckBatch проверяет список номеров из JSON тела {"numbers": [...]}
func (h *CardsHandler) CheckBatch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, h.maxBodyBytes)).Decode(&req); err != nil {
		h.writeBodyError(w, err)
		return
	}

	results, err := h.cardService.CheckBatch(r.Context(), req.Numbers)
	if err != nil {
		if errors.Is(err, service.ErrEmptyBatch) || errors.Is(err, service.ErrEmptyCardNumber) {
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}
		if errors.Is(err, service.ErrBatchTooLarge) {
			http.Error(w, "Request Entity Too Large", http.StatusRequestEntityTooLarge)
			return
		}
		h.logger.Error("failed to check batch", zap.Error(err), zap.Int("size", len(req.Numbers)))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, results)
}

// Brands возвращает таблицу правил распознавания в порядке применения
func (h *CardsHandler) Brands(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, h.cardService.Brands(r.Context()))
}

func (h *CardsHandler) writeBodyError(w http.ResponseWriter, err error) {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		http.Error(w, "Request Entity Too Large", http.StatusRequestEntityTooLarge)
		return
	}
	http.Error(w, "Bad Request", http.StatusBadRequest)
}

func (h *CardsHandler) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}
