package model

import "gorm.io/datatypes"

// Race is a playable race. StatModifiers maps a stat abbreviation to its
// racial adjustment, e.g. {"DEX": 2, "CON": -2}.
type Race struct {
	ID                int64                              `gorm:"primaryKey;autoIncrement" json:"id"`
	Name              string                             `gorm:"size:64" json:"name"`
	StatModifiers     datatypes.JSONType[map[string]int] `json:"stat_modifiers"`
	SizeCategory      string                             `gorm:"size:32;default:'Medium'" json:"size_category"`
	StartingLanguages datatypes.JSONType[[]string]       `json:"starting_languages"`
}

// RacePatch is a sparse update; nil fields are left untouched.
type RacePatch struct {
	Name              *string                             `json:"name"`
	StatModifiers     *datatypes.JSONType[map[string]int] `json:"stat_modifiers"`
	SizeCategory      *string                             `json:"size_category"`
	StartingLanguages *datatypes.JSONType[[]string]       `json:"starting_languages"`
}

func (p RacePatch) Apply(r *Race) {
	if p.Name != nil {
		r.Name = *p.Name
	}
	if p.StatModifiers != nil {
		r.StatModifiers = *p.StatModifiers
	}
	if p.SizeCategory != nil {
		r.SizeCategory = *p.SizeCategory
	}
	if p.StartingLanguages != nil {
		r.StartingLanguages = *p.StartingLanguages
	}
}
