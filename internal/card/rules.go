package card

// Brand представляет платежную систему (бренд) карты
type Brand string

const (
	BrandMastercard      Brand = "Mastercard"
	BrandVisa            Brand = "Visa"
	BrandAmericanExpress Brand = "American Express"
	BrandDinersClub      Brand = "Diners Club"
	BrandDiscover        Brand = "Discover"
	BrandEnRoute         Brand = "EnRoute"
	BrandJCB             Brand = "JCB"
	BrandVoyager         Brand = "Voyager"
	BrandHiperCard       Brand = "HiperCard"
	BrandAura            Brand = "Aura"

	// BrandUnknown возвращается, если ни одно правило не подошло
	BrandUnknown Brand = "unknown"
)

func (b Brand) String() string {
	return string(b)
}

// PrefixRange задает диапазон префиксов одинаковой длины, границы включительно.
// Для одиночного префикса From == To.
type PrefixRange struct {
	From string
	To   string
}

func (p PrefixRange) contains(digits string) bool {
	if len(digits) < len(p.From) {
		return false
	}
	// Строки из цифр одной длины сравниваются лексикографически как числа
	head := digits[:len(p.From)]
	return head >= p.From && head <= p.To
}

// Rule описывает правило распознавания бренда: допустимую длину номера и префиксы
type Rule struct {
	Brand     Brand
	MinLength int
	MaxLength int
	Prefixes  []PrefixRange
}

// Match проверяет, подходит ли номер (уже без пробелов) под правило целиком
func (r Rule) Match(digits string) bool {
	if len(digits) < r.MinLength || len(digits) > r.MaxLength {
		return false
	}
	if !isDigits(digits) {
		return false
	}
	for _, p := range r.Prefixes {
		if p.contains(digits) {
			return true
		}
	}
	return false
}

func exact(prefix string) PrefixRange {
	return PrefixRange{From: prefix, To: prefix}
}

func span(from, to string) PrefixRange {
	return PrefixRange{From: from, To: to}
}

// Порядок важен: побеждает первое совпавшее правило.
var rules = []Rule{
	{Brand: BrandMastercard, MinLength: 16, MaxLength: 16, Prefixes: []PrefixRange{span("51", "55")}},
	{Brand: BrandVisa, MinLength: 16, MaxLength: 16, Prefixes: []PrefixRange{exact("4")}},
	{Brand: BrandAmericanExpress, MinLength: 15, MaxLength: 15, Prefixes: []PrefixRange{exact("34"), exact("37")}},
	{Brand: BrandDinersClub, MinLength: 14, MaxLength: 14, Prefixes: []PrefixRange{span("300", "305")}},
	{Brand: BrandDiscover, MinLength: 16, MaxLength: 16, Prefixes: []PrefixRange{exact("6011")}},
	// EnRoute: 11 или 12 цифр после префикса, то есть 15-16 всего
	{Brand: BrandEnRoute, MinLength: 15, MaxLength: 16, Prefixes: []PrefixRange{exact("2014"), exact("2149")}},
	{Brand: BrandJCB, MinLength: 16, MaxLength: 16, Prefixes: []PrefixRange{exact("35")}},
	{Brand: BrandVoyager, MinLength: 15, MaxLength: 15, Prefixes: []PrefixRange{exact("8699")}},
	{Brand: BrandHiperCard, MinLength: 16, MaxLength: 16, Prefixes: []PrefixRange{exact("6062")}},
	{Brand: BrandAura, MinLength: 16, MaxLength: 16, Prefixes: []PrefixRange{exact("50")}},
}

// Rules возвращает копию таблицы правил в порядке их применения
func Rules() []Rule {
	out := make([]Rule, len(rules))
	for i, r := range rules {
		r.Prefixes = append([]PrefixRange(nil), r.Prefixes...)
		out[i] = r
	}
	return out
}
