package model

// Feat is a selectable character feat.
type Feat struct {
	ID               int64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name             string   `gorm:"size:128" json:"name"`
	Description      string   `gorm:"type:text" json:"description"`
	NumericModifier  *float64 `json:"numeric_modifier"`
	LevelRequirement int      `gorm:"default:1" json:"level_requirement"`
	Category         string   `gorm:"size:64;default:'General'" json:"category"`
}

// FeatPatch is a sparse update; nil fields are left untouched.
type FeatPatch struct {
	Name             *string  `json:"name"`
	Description      *string  `json:"description"`
	NumericModifier  *float64 `json:"numeric_modifier"`
	LevelRequirement *int     `json:"level_requirement"`
	Category         *string  `json:"category"`
}

func (p FeatPatch) Apply(f *Feat) {
	if p.Name != nil {
		f.Name = *p.Name
	}
	if p.Description != nil {
		f.Description = *p.Description
	}
	if p.NumericModifier != nil {
		f.NumericModifier = p.NumericModifier
	}
	if p.LevelRequirement != nil {
		f.LevelRequirement = *p.LevelRequirement
	}
	if p.Category != nil {
		f.Category = *p.Category
	}
}
