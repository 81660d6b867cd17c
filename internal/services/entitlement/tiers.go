package services

// Названия тарифов.
const (
	TierOneMonth   = "1 Month"
	TierFourMonths = "4 Months"
	TierOneYear    = "1 Year"
)

// Tier описывает тариф премиум-доступа.
type Tier struct {
	Name        string
	Price       int64 // Цена в долларах США
	Description string
	Months      int // Срок тарифа при TierDurationPolicy
}

var tiers = map[string]Tier{
	TierOneMonth: {
		Name:        TierOneMonth,
		Price:       5,
		Description: "Premium access to every unit for one month",
		Months:      1,
	},
	TierFourMonths: {
		Name:        TierFourMonths,
		Price:       10,
		Description: "Premium access to every unit for four months",
		Months:      4,
	},
	TierOneYear: {
		Name:        TierOneYear,
		Price:       15,
		Description: "Premium access to every unit for one year",
		Months:      12,
	},
}

// IsKnown сообщает, существует ли тариф.
func IsKnown(name string) bool {
	_, ok := tiers[name]
	return ok
}

// PriceFor возвращает цену тарифа, для неизвестного тарифа 0.
func PriceFor(name string) int64 {
	return tiers[name].Price
}

// DescriptionFor возвращает описание тарифа, для неизвестного тарифа пустую строку.
func DescriptionFor(name string) string {
	return tiers[name].Description
}
