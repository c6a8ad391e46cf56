package app

import (
	"github.com/avc/cardbrand/internal/handlers"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// setupRouter создает и настраивает роутер
func setupRouter(deps *dependencies, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Глобальные middleware
	setupMiddleware(r, logger)

	// Маршруты
	setupRoutes(r, deps)

	return r
}

// setupMiddleware настраивает middleware для роутера
func setupMiddleware(r *chi.Mux, logger *zap.Logger) {
	r.Use(handlers.RequestIDMiddleware())
	r.Use(handlers.LoggingMiddleware(logger))
	r.Use(handlers.RecoveryMiddleware(logger))
	r.Use(middleware.Compress(5))
}

// setupRoutes настраивает маршруты приложения
func setupRoutes(r *chi.Mux, deps *dependencies) {
	// Health check эндпоинты
	r.Get("/health", deps.handlers.health.Health)
	r.Get("/ready", deps.handlers.health.Ready)

	if deps.metrics != nil {
		r.Handle("/metrics", deps.metrics.Handler())
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/brands", deps.handlers.cards.Brands)
		r.Post("/cards/check", deps.handlers.cards.Check)
		r.Post("/cards/check/batch", deps.handlers.cards.CheckBatch)
		r.Get("/cards/{number}", deps.handlers.cards.CheckByPath)
	})
}
