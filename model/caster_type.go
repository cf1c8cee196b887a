package model

import "gorm.io/datatypes"

// SpellTable maps a class level (as a string key, "1".."20") to the spell
// counts per spell level at that class level.
type SpellTable = map[string][]int

// CasterType describes how a class casts spells.
type CasterType struct {
	ID              int64                          `gorm:"primaryKey;autoIncrement" json:"id"`
	Name            string                         `gorm:"size:64" json:"name"`
	FocusType       string                         `gorm:"size:32;default:'None'" json:"focus_type"`       // Divine, Arcane
	CastingType     string                         `gorm:"column:caster_type;size:32;default:'None'" json:"caster_type"` // Spontaneous, Prepared
	PreparationType string                         `gorm:"size:32;default:'None'" json:"preparation_type"` // Daily, At-will
	SpellsPerDay    datatypes.JSONType[SpellTable] `json:"spells_per_day"`
	SpellsKnown     datatypes.JSONType[SpellTable] `json:"spells_known"`
}

// CasterTypePatch is a sparse update; nil fields are left untouched.
type CasterTypePatch struct {
	Name            *string                         `json:"name"`
	FocusType       *string                         `json:"focus_type"`
	CastingType     *string                         `json:"caster_type"`
	PreparationType *string                         `json:"preparation_type"`
	SpellsPerDay    *datatypes.JSONType[SpellTable] `json:"spells_per_day"`
	SpellsKnown     *datatypes.JSONType[SpellTable] `json:"spells_known"`
}

func (p CasterTypePatch) Apply(ct *CasterType) {
	if p.Name != nil {
		ct.Name = *p.Name
	}
	if p.FocusType != nil {
		ct.FocusType = *p.FocusType
	}
	if p.CastingType != nil {
		ct.CastingType = *p.CastingType
	}
	if p.PreparationType != nil {
		ct.PreparationType = *p.PreparationType
	}
	if p.SpellsPerDay != nil {
		ct.SpellsPerDay = *p.SpellsPerDay
	}
	if p.SpellsKnown != nil {
		ct.SpellsKnown = *p.SpellsKnown
	}
}
