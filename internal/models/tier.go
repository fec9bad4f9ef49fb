package models

// Tier — код типа абонемента. Хранилище принимает любое значение,
// но за пределами 1..3 оно отображается как Unknown.
type Tier int

const (
	TierBasic    Tier = 1
	TierStandard Tier = 2
	TierPremium  Tier = 3
)

// Valid сообщает, входит ли код в допустимый диапазон.
func (t Tier) Valid() bool {
	return t >= TierBasic && t <= TierPremium
}

// Label возвращает человекочитаемое название абонемента.
func (t Tier) Label() string {
	switch t {
	case TierBasic:
		return "Basic"
	case TierStandard:
		return "Standard"
	case TierPremium:
		return "Premium"
	default:
		return "Unknown"
	}
}
