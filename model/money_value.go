package model

// MoneyValue is a coinage denomination set expressed in gold pieces.
type MoneyValue struct {
	ID       int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	Platinum float64 `gorm:"default:10" json:"platinum"`
	Gold     float64 `gorm:"default:1" json:"gold"`
	Electrum float64 `gorm:"default:0.5" json:"electrum"`
	Silver   float64 `gorm:"default:0.1" json:"silver"`
	Copper   float64 `gorm:"default:0.01" json:"copper"`
}

// MoneyValuePatch is a sparse update; nil fields are left untouched.
type MoneyValuePatch struct {
	Platinum *float64 `json:"platinum"`
	Gold     *float64 `json:"gold"`
	Electrum *float64 `json:"electrum"`
	Silver   *float64 `json:"silver"`
	Copper   *float64 `json:"copper"`
}

func (p MoneyValuePatch) Apply(m *MoneyValue) {
	if p.Platinum != nil {
		m.Platinum = *p.Platinum
	}
	if p.Gold != nil {
		m.Gold = *p.Gold
	}
	if p.Electrum != nil {
		m.Electrum = *p.Electrum
	}
	if p.Silver != nil {
		m.Silver = *p.Silver
	}
	if p.Copper != nil {
		m.Copper = *p.Copper
	}
}
