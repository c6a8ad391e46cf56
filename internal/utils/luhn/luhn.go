package luhn

import "strings"

// Validate проверяет номер по алгоритму Луна.
// Пробелы игнорируются; любой другой нецифровой символ делает номер невалидным.
// Пустая строка считается валидной: контрольная сумма равна нулю.
func Validate(number string) bool {
	number = strings.ReplaceAll(number, " ", "")

	if !IsDigits(number) {
		return false
	}

	return Checksum(number)%10 == 0
}

// IsDigits сообщает, состоит ли строка только из цифр 0-9
func IsDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Checksum считает сумму Луна для строки из цифр.
// Проходим с конца: каждая вторая цифра удваивается, из результата больше 9 вычитается 9.
func Checksum(digits string) int {
	sum := 0
	double := false

	for i := len(digits) - 1; i >= 0; i-- {
		n := int(digits[i] - '0')

		if double {
			n *= 2
			if n > 9 {
				n -= 9
			}
		}

		sum += n
		double = !double
	}

	return sum
}
