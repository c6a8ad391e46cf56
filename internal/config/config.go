package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config содержит конфигурацию приложения
type Config struct {
	RunAddress     string // Адрес и порт запуска сервиса
	LogLevel       string // Уровень логирования
	MaxBatchSize   int    // Максимальное число номеров в пакетном запросе
	MaxBodyBytes   int64  // Максимальный размер тела запроса
	MetricsEnabled bool   // Отдавать ли /metrics
}

// Load загружает конфигурацию из .env, переменных окружения и флагов.
// Приоритет: env переменные > флаги > дефолтные значения.
// Файл .env не переопределяет уже заданные переменные окружения.
func Load(args []string, envFiles ...string) (*Config, error) {
	cfg := &Config{
		RunAddress:     ":8080",
		LogLevel:       "info",
		MaxBatchSize:   100,
		MaxBodyBytes:   64 << 10,
		MetricsEnabled: true,
	}

	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	// Отсутствие .env не ошибка
	_ = godotenv.Load(envFiles...)

	fs := flag.NewFlagSet("cardbrand", flag.ContinueOnError)
	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "address and port to run server")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (production for JSON logs)")
	fs.IntVar(&cfg.MaxBatchSize, "b", cfg.MaxBatchSize, "max card numbers per batch request")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	// Переменные окружения имеют приоритет над флагами
	if envRunAddr, ok := os.LookupEnv("RUN_ADDRESS"); ok {
		cfg.RunAddress = envRunAddr
	}

	if envLogLevel, ok := os.LookupEnv("LOG_LEVEL"); ok {
		cfg.LogLevel = envLogLevel
	}

	if envBatch, ok := os.LookupEnv("MAX_BATCH_SIZE"); ok {
		size, err := strconv.Atoi(envBatch)
		if err != nil {
			return nil, fmt.Errorf("invalid MAX_BATCH_SIZE %q: %w", envBatch, err)
		}
		cfg.MaxBatchSize = size
	}

	if envBody, ok := os.LookupEnv("MAX_BODY_BYTES"); ok {
		size, err := strconv.ParseInt(envBody, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid MAX_BODY_BYTES %q: %w", envBody, err)
		}
		cfg.MaxBodyBytes = size
	}

	if envMetrics, ok := os.LookupEnv("METRICS_ENABLED"); ok {
		enabled, err := strconv.ParseBool(envMetrics)
		if err != nil {
			return nil, fmt.Errorf("invalid METRICS_ENABLED %q: %w", envMetrics, err)
		}
		cfg.MetricsEnabled = enabled
	}

	// Валидация
	if cfg.RunAddress == "" {
		return nil, fmt.Errorf("run address is required (use -a flag or RUN_ADDRESS env)")
	}

	if cfg.MaxBatchSize <= 0 {
		return nil, fmt.Errorf("max batch size must be positive, got %d", cfg.MaxBatchSize)
	}

	if cfg.MaxBodyBytes <= 0 {
		return nil, fmt.Errorf("max body bytes must be positive, got %d", cfg.MaxBodyBytes)
	}

	return cfg, nil
}
