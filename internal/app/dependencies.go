package app

import (
	"github.com/avc/cardbrand/internal/config"
	"github.com/avc/cardbrand/internal/domain"
	"github.com/avc/cardbrand/internal/handlers"
	"github.com/avc/cardbrand/internal/metrics"
	"github.com/avc/cardbrand/internal/service"
	"go.uber.org/zap"
)

// handlerSet содержит все хендлеры приложения
type handlerSet struct {
	cards  *handlers.CardsHandler
	health *handlers.HealthHandler
}

// dependencies содержит все зависимости приложения
type dependencies struct {
	metrics     *metrics.Metrics // nil, если метрики выключены
	cardService domain.CardService
	handlers    *handlerSet
}

// initDependencies создает все зависимости приложения
func initDependencies(cfg *config.Config, logger *zap.Logger) *dependencies {
	var (
		m        *metrics.Metrics
		recorder domain.CheckRecorder = metrics.Nop{}
	)
	if cfg.MetricsEnabled {
		m = metrics.New()
		recorder = m
	}

	// Создание сервисов
	cardService := service.NewCardService(recorder, service.CardServiceConfig{
		MaxBatchSize: cfg.MaxBatchSize,
	}, logger)

	// Создание handlers
	hdlrs := &handlerSet{
		cards:  handlers.NewCardsHandler(cardService, cfg.MaxBodyBytes, logger),
		health: handlers.NewHealthHandler(logger),
	}

	return &dependencies{
		metrics:     m,
		cardService: cardService,
		handlers:    hdlrs,
	}
}
