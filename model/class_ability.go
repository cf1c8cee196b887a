package model

// ClassAbility is a class feature granted at a given level.
type ClassAbility struct {
	ID               int64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name             string   `gorm:"size:128" json:"name"`
	Description      string   `gorm:"type:text" json:"description"`
	LevelRequirement int      `json:"level_requirement"`
	NumericModifier  *float64 `json:"numeric_modifier"`
	Category         string   `gorm:"size:64" json:"category"`
}

// ClassAbilityPatch is a sparse update; nil fields are left untouched.
type ClassAbilityPatch struct {
	Name             *string  `json:"name"`
	Description      *string  `json:"description"`
	LevelRequirement *int     `json:"level_requirement"`
	NumericModifier  *float64 `json:"numeric_modifier"`
	Category         *string  `json:"category"`
}

func (p ClassAbilityPatch) Apply(ca *ClassAbility) {
	if p.Name != nil {
		ca.Name = *p.Name
	}
	if p.Description != nil {
		ca.Description = *p.Description
	}
	if p.LevelRequirement != nil {
		ca.LevelRequirement = *p.LevelRequirement
	}
	if p.NumericModifier != nil {
		ca.NumericModifier = p.NumericModifier
	}
	if p.Category != nil {
		ca.Category = *p.Category
	}
}
