package model

// Weapon is a purchasable weapon entry.
type Weapon struct {
	ID                int64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name              string   `gorm:"size:128" json:"name"`
	Category          string   `gorm:"size:32;default:'Simple'" json:"category"`
	Type              string   `gorm:"size:32;default:'Melee'" json:"type"`
	DamageDice        string   `gorm:"size:16;default:'1d4'" json:"damage_dice"`
	DamageType        string   `gorm:"size:32;default:'Bludgeoning'" json:"damage_type"`
	Material          *string  `gorm:"size:64" json:"material"`
	Range             *float64 `json:"range"`
	Reach             *float64 `json:"reach"`
	SpecialProperties *string  `gorm:"size:255" json:"special_properties"`
	Weight            float64  `gorm:"default:1" json:"weight"`
	NumericModifier   *float64 `json:"numeric_modifier"`
	GoldValue         *float64 `json:"gold_value"`
}

// WeaponPatch is a sparse update; nil fields are left untouched.
type WeaponPatch struct {
	Name              *string  `json:"name"`
	Category          *string  `json:"category"`
	Type              *string  `json:"type"`
	DamageDice        *string  `json:"damage_dice"`
	DamageType        *string  `json:"damage_type"`
	Material          *string  `json:"material"`
	Range             *float64 `json:"range"`
	Reach             *float64 `json:"reach"`
	SpecialProperties *string  `json:"special_properties"`
	Weight            *float64 `json:"weight"`
	NumericModifier   *float64 `json:"numeric_modifier"`
	GoldValue         *float64 `json:"gold_value"`
}

func (p WeaponPatch) Apply(w *Weapon) {
	if p.Name != nil {
		w.Name = *p.Name
	}
	if p.Category != nil {
		w.Category = *p.Category
	}
	if p.Type != nil {
		w.Type = *p.Type
	}
	if p.DamageDice != nil {
		w.DamageDice = *p.DamageDice
	}
	if p.DamageType != nil {
		w.DamageType = *p.DamageType
	}
	if p.Material != nil {
		w.Material = p.Material
	}
	if p.Range != nil {
		w.Range = p.Range
	}
	if p.Reach != nil {
		w.Reach = p.Reach
	}
	if p.SpecialProperties != nil {
		w.SpecialProperties = p.SpecialProperties
	}
	if p.Weight != nil {
		w.Weight = *p.Weight
	}
	if p.NumericModifier != nil {
		w.NumericModifier = p.NumericModifier
	}
	if p.GoldValue != nil {
		w.GoldValue = p.GoldValue
	}
}
