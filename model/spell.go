package model

import "gorm.io/datatypes"

// Spell is a castable spell. ClassLists names the classes whose spell
// lists include it.
type Spell struct {
	ID                int64                        `gorm:"primaryKey;autoIncrement" json:"id"`
	Name              string                       `gorm:"size:128" json:"name"`
	SpellLevel        int                          `json:"spell_level"`
	ClassLists        datatypes.JSONType[[]string] `json:"class_lists"`
	MaterialComponent *string                      `gorm:"size:255" json:"material_component"`
	SomaticComponent  *string                      `gorm:"size:255" json:"somatic_component"`
	VerbalComponent   *string                      `gorm:"size:255" json:"verbal_component"`
	School            string                       `gorm:"size:32;default:'Universal'" json:"school"`
	Description       string                       `gorm:"type:text" json:"description"`
	AllowsSave        bool                         `json:"allows_save"`
}

// SpellPatch is a sparse update; nil fields are left untouched.
type SpellPatch struct {
	Name              *string                       `json:"name"`
	SpellLevel        *int                          `json:"spell_level"`
	ClassLists        *datatypes.JSONType[[]string] `json:"class_lists"`
	MaterialComponent *string                       `json:"material_component"`
	SomaticComponent  *string                       `json:"somatic_component"`
	VerbalComponent   *string                       `json:"verbal_component"`
	School            *string                       `json:"school"`
	Description       *string                       `json:"description"`
	AllowsSave        *bool                         `json:"allows_save"`
}

func (p SpellPatch) Apply(s *Spell) {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.SpellLevel != nil {
		s.SpellLevel = *p.SpellLevel
	}
	if p.ClassLists != nil {
		s.ClassLists = *p.ClassLists
	}
	if p.MaterialComponent != nil {
		s.MaterialComponent = p.MaterialComponent
	}
	if p.SomaticComponent != nil {
		s.SomaticComponent = p.SomaticComponent
	}
	if p.VerbalComponent != nil {
		s.VerbalComponent = p.VerbalComponent
	}
	if p.School != nil {
		s.School = *p.School
	}
	if p.Description != nil {
		s.Description = *p.Description
	}
	if p.AllowsSave != nil {
		s.AllowsSave = *p.AllowsSave
	}
}
