package domain

// CardCheck представляет результат проверки одного номера карты
type CardCheck struct {
	Number     string `json:"number"`     // Номер в том виде, в каком его прислали
	Normalized string `json:"normalized"` // Номер без пробелов
	Brand      string `json:"brand"`
	Valid      bool   `json:"valid"`
	Line       string `json:"line"` // Строка для вывода пользователю
}

// PrefixRange представляет диапазон префиксов номера (границы включительно)
type PrefixRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// BrandRule представляет правило распознавания бренда
type BrandRule struct {
	Position  int           `json:"position"` // Порядок применения, начиная с 1
	Brand     string        `json:"brand"`
	MinLength int           `json:"min_length"`
	MaxLength int           `json:"max_length"`
	Prefixes  []PrefixRange `json:"prefixes"`
}
