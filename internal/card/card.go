// Package card определяет бренд карты по префиксу и длине номера
// и проверяет контрольную сумму номера по алгоритму Луна.
//
// Все функции чистые и не возвращают ошибок: некорректный ввод дает
// BrandUnknown и/или невалидный результат проверки.
package card

import (
	"strings"

	"github.com/avc/cardbrand/internal/utils/luhn"
)

// Normalize удаляет из номера все пробелы, остальные символы сохраняются как есть
func Normalize(cardNumber string) string {
	if !strings.Contains(cardNumber, " ") {
		return cardNumber
	}
	return strings.ReplaceAll(cardNumber, " ", "")
}

// ClassifyBrand определяет бренд карты. Если ни одно правило не подошло, возвращает BrandUnknown.
func ClassifyBrand(cardNumber string) Brand {
	digits := Normalize(cardNumber)
	for _, r := range rules {
		if r.Match(digits) {
			return r.Brand
		}
	}
	return BrandUnknown
}

// IsValidLuhn проверяет номер карты по алгоритму Луна
func IsValidLuhn(cardNumber string) bool {
	return luhn.Validate(Normalize(cardNumber))
}

func isDigits(s string) bool {
	return luhn.IsDigits(s)
}
