package model

// Armor is a purchasable armor entry.
// MaxDexBonus of 999 means "unlimited".
type Armor struct {
	ID                 int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name               string  `gorm:"size:128" json:"name"`
	Category           string  `gorm:"size:32;default:'Light'" json:"category"`
	Material           *string `gorm:"size:64" json:"material"`
	Cost               float64 `json:"cost"`
	ArmorBonus         float64 `json:"armor_bonus"`
	MaxDexBonus        float64 `gorm:"default:999" json:"max_dex_bonus"`
	ArmorCheckPenalty  float64 `json:"armor_check_penalty"`
	ArcaneSpellFailure float64 `json:"arcane_spell_failure"`
	MaxSpeed           float64 `gorm:"default:30" json:"max_speed"`
	Weight             float64 `json:"weight"`
}

// TableName keeps the uncountable table name.
func (Armor) TableName() string { return "armor" }

// ArmorPatch is a sparse update; nil fields are left untouched.
type ArmorPatch struct {
	Name               *string  `json:"name"`
	Category           *string  `json:"category"`
	Material           *string  `json:"material"`
	Cost               *float64 `json:"cost"`
	ArmorBonus         *float64 `json:"armor_bonus"`
	MaxDexBonus        *float64 `json:"max_dex_bonus"`
	ArmorCheckPenalty  *float64 `json:"armor_check_penalty"`
	ArcaneSpellFailure *float64 `json:"arcane_spell_failure"`
	MaxSpeed           *float64 `json:"max_speed"`
	Weight             *float64 `json:"weight"`
}

func (p ArmorPatch) Apply(a *Armor) {
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.Category != nil {
		a.Category = *p.Category
	}
	if p.Material != nil {
		a.Material = p.Material
	}
	if p.Cost != nil {
		a.Cost = *p.Cost
	}
	if p.ArmorBonus != nil {
		a.ArmorBonus = *p.ArmorBonus
	}
	if p.MaxDexBonus != nil {
		a.MaxDexBonus = *p.MaxDexBonus
	}
	if p.ArmorCheckPenalty != nil {
		a.ArmorCheckPenalty = *p.ArmorCheckPenalty
	}
	if p.ArcaneSpellFailure != nil {
		a.ArcaneSpellFailure = *p.ArcaneSpellFailure
	}
	if p.MaxSpeed != nil {
		a.MaxSpeed = *p.MaxSpeed
	}
	if p.Weight != nil {
		a.Weight = *p.Weight
	}
}
