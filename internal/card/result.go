package card

import "fmt"

// Result объединяет результаты определения бренда и проверки Луна для одного номера
type Result struct {
	Number     string // номер в исходном виде, как его передал вызывающий
	Normalized string
	Brand      Brand
	Valid      bool
}

// Check нормализует номер и выполняет обе проверки
func Check(cardNumber string) Result {
	digits := Normalize(cardNumber)
	return Result{
		Number:     cardNumber,
		Normalized: digits,
		Brand:      ClassifyBrand(digits),
		Valid:      IsValidLuhn(digits),
	}
}

// Classified сообщает, был ли распознан бренд
func (r Result) Classified() bool {
	return r.Brand != BrandUnknown
}

// String форматирует результат в одну строку для вывода
func (r Result) String() string {
	switch {
	case !r.Valid:
		return fmt.Sprintf("Card: %s => Valid: false", r.Number)
	case r.Classified():
		return fmt.Sprintf("Card: %s => Brand: %s | Valid: true", r.Number, r.Brand)
	default:
		return fmt.Sprintf("Card: %s => Brand: unknown | Valid: true", r.Number)
	}
}
