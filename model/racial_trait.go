package model

// RacialTrait is an innate racial feature.
type RacialTrait struct {
	ID              int64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Category        string   `gorm:"size:64;default:'General'" json:"category"`
	Description     string   `gorm:"type:text" json:"description"`
	NumericModifier *float64 `json:"numeric_modifier"`
}

// RacialTraitPatch is a sparse update; nil fields are left untouched.
type RacialTraitPatch struct {
	Category        *string  `json:"category"`
	Description     *string  `json:"description"`
	NumericModifier *float64 `json:"numeric_modifier"`
}

func (p RacialTraitPatch) Apply(rt *RacialTrait) {
	if p.Category != nil {
		rt.Category = *p.Category
	}
	if p.Description != nil {
		rt.Description = *p.Description
	}
	if p.NumericModifier != nil {
		rt.NumericModifier = p.NumericModifier
	}
}
