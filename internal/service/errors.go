package service

import "github.com/avc/cardbrand/internal/domain"

// Ошибки проверки номеров
var (
	ErrEmptyCardNumber = domain.ErrEmptyCardNumber
	ErrEmptyBatch      = domain.ErrEmptyBatch
	ErrBatchTooLarge   = domain.ErrBatchTooLarge
)
