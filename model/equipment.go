package model

// Equipment is a piece of mundane gear.
type Equipment struct {
	ID              int64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name            string   `gorm:"size:128" json:"name"`
	GoldValue       *float64 `json:"gold_value"`
	Container       bool     `json:"container"`
	Category        string   `gorm:"size:64;default:'Miscellaneous'" json:"category"`
	Rarity          string   `gorm:"size:32;default:'Common'" json:"rarity"`
	NumericModifier *float64 `json:"numeric_modifier"`
	Weight          float64  `json:"weight"`
}

// TableName keeps the uncountable table name.
func (Equipment) TableName() string { return "equipment" }

// EquipmentPatch is a sparse update; nil fields are left untouched.
type EquipmentPatch struct {
	Name            *string  `json:"name"`
	GoldValue       *float64 `json:"gold_value"`
	Container       *bool    `json:"container"`
	Category        *string  `json:"category"`
	Rarity          *string  `json:"rarity"`
	NumericModifier *float64 `json:"numeric_modifier"`
	Weight          *float64 `json:"weight"`
}

func (p EquipmentPatch) Apply(e *Equipment) {
	if p.Name != nil {
		e.Name = *p.Name
	}
	if p.GoldValue != nil {
		e.GoldValue = p.GoldValue
	}
	if p.Container != nil {
		e.Container = *p.Container
	}
	if p.Category != nil {
		e.Category = *p.Category
	}
	if p.Rarity != nil {
		e.Rarity = *p.Rarity
	}
	if p.NumericModifier != nil {
		e.NumericModifier = p.NumericModifier
	}
	if p.Weight != nil {
		e.Weight = *p.Weight
	}
}
