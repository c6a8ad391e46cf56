package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/avc/cardbrand/internal/card"
	"github.com/avc/cardbrand/internal/domain"
	"go.uber.org/zap"
)

// CardServiceConfig содержит настройки сервиса проверки
type CardServiceConfig struct {
	MaxBatchSize int
}

// CardService реализует domain.CardService
type CardService struct {
	recorder domain.CheckRecorder
	config   CardServiceConfig
	logger   *zap.Logger
}

// NewCardService создает новый CardService
func NewCardService(recorder domain.CheckRecorder, config CardServiceConfig, logger *zap.Logger) *CardService {
	return &CardService{
		recorder: recorder,
		config:   config,
		logger:   logger,
	}
}

// Check проверяет один номер карты.
// Номер с нецифровыми символами не считается ошибкой: он просто не проходит проверку.
func (s *CardService) Check(ctx context.Context, number string) (*domain.CardCheck, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return nil, ErrEmptyCardNumber
	}

	return s.check(number), nil
}

// CheckBatch проверяет список номеров, сохраняя их порядок
func (s *CardService) CheckBatch(ctx context.Context, numbers []string) ([]*domain.CardCheck, error) {
	if len(numbers) == 0 {
		return nil, ErrEmptyBatch
	}
	if s.config.MaxBatchSize > 0 && len(numbers) > s.config.MaxBatchSize {
		return nil, fmt.Errorf("card service: %d numbers, limit %d: %w", len(numbers), s.config.MaxBatchSize, ErrBatchTooLarge)
	}

	results := make([]*domain.CardCheck, 0, len(numbers))
	for i, number := range numbers {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("card service: batch interrupted at %d: %w", i, err)
		}

		number = strings.TrimSpace(number)
		if number == "" {
			return nil, fmt.Errorf("card service: number at index %d: %w", i, ErrEmptyCardNumber)
		}
		results = append(results, s.check(number))
	}

	s.recorder.RecordBatch(len(results))
	s.logger.Debug("batch checked", zap.Int("size", len(results)))

	return results, nil
}

// Brands возвращает таблицу правил в порядке применения
func (s *CardService) Brands(ctx context.Context) []domain.BrandRule {
	rules := card.Rules()
	out := make([]domain.BrandRule, 0, len(rules))
	for i, r := range rules {
		prefixes := make([]domain.PrefixRange, 0, len(r.Prefixes))
		for _, p := range r.Prefixes {
			prefixes = append(prefixes, domain.PrefixRange{From: p.From, To: p.To})
		}
		out = append(out, domain.BrandRule{
			Position:  i + 1,
			Brand:     r.Brand.String(),
			MinLength: r.MinLength,
			MaxLength: r.MaxLength,
			Prefixes:  prefixes,
		})
	}
	return out
}

func (s *CardService) check(number string) *domain.CardCheck {
	res := card.Check(number)
	s.recorder.RecordCheck(res.Brand.String(), res.Valid)

	// Номер карты в логах не пишем целиком
	s.logger.Debug("card checked",
		zap.String("brand", res.Brand.String()),
		zap.Bool("valid", res.Valid),
		zap.String("last4", lastDigits(res.Normalized, 4)),
	)

	return &domain.CardCheck{
		Number:     res.Number,
		Normalized: res.Normalized,
		Brand:      res.Brand.String(),
		Valid:      res.Valid,
		Line:       res.String(),
	}
}

func lastDigits(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
