package app

import (
	"fmt"
	"net/http"

	"github.com/avc/cardbrand/internal/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App представляет приложение
type App struct {
	config *config.Config
	logger *zap.Logger
	deps   *dependencies
	router *chi.Mux
	server *http.Server
}

// NewApp создает новое приложение; args - аргументы командной строки без имени программы
func NewApp(args []string) (*App, error) {
	// Загрузка конфигурации
	cfg, err := config.Load(args)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Инициализация логгера
	logger, err := initLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	return newApp(cfg, logger), nil
}

func newApp(cfg *config.Config, logger *zap.Logger) *App {
	// Инициализация зависимостей
	deps := initDependencies(cfg, logger)

	// Настройка роутера
	router := setupRouter(deps, logger)

	// Создание HTTP сервера
	server := createServer(cfg.RunAddress, router)

	return &App{
		config: cfg,
		logger: logger,
		deps:   deps,
		router: router,
		server: server,
	}
}

// Run запускает приложение
func (a *App) Run() error {
	defer a.logger.Sync()

	// Запуск HTTP сервера и ожидание сигнала завершения
	if err := a.runServer(); err != nil {
		return err
	}

	// Graceful shutdown
	a.shutdown()

	return nil
}
