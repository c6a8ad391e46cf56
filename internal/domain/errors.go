package domain

import "errors"

// Ошибки проверки номеров
var (
	ErrEmptyCardNumber = errors.New("empty card number")
	ErrEmptyBatch      = errors.New("empty batch")
	ErrBatchTooLarge   = errors.New("batch too large")
)
