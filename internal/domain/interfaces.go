package domain

import "context"

// CardService определяет методы проверки номеров карт
type CardService interface {
	Check(ctx context.Context, number string) (*CardCheck, error)
	CheckBatch(ctx context.Context, numbers []string) ([]*CardCheck, error)
	Brands(ctx context.Context) []BrandRule
}

// CheckRecorder учитывает выполненные проверки (метрики)
type CheckRecorder interface {
	RecordCheck(brand string, valid bool)
	RecordBatch(size int)
}
