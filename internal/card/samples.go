package card

// sampleNumbers: первые десять валидны и покрывают все бренды, остальные не проходят проверку Луна
var sampleNumbers = []string{
	"5232 7661 6131 6539", // Mastercard
	"4556 0130 5031 2704", // Visa
	"3717 926525 53960",   // American Express
	"3004 219620 0535",    // Diners Club
	"6011 3545 3984 7215", // Discover
	"2149 9150468 3907",   // EnRoute
	"3566 3656 5462 7832", // JCB
	"86996 1472 21833 1",  // Voyager
	"6062 8299 6943 9003", // HiperCard
	"5079 8669 8887 2569", // Aura

	"1234 5678 9012 3456",
	"4111 1111 1111 1112", // Visa, неверная контрольная цифра
	"5555 5555 5555 4440", // Mastercard, неверная контрольная цифра
	"6011 0009 9013 9425", // Discover, неверная контрольная цифра
	"3000 0000 0000 05",   // Diners Club, неверная контрольная цифра
}

// SampleNumbers возвращает демонстрационный набор номеров в формате с пробелами
func SampleNumbers() []string {
	return append([]string(nil), sampleNumbers...)
}
