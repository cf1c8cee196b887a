package model

import "gorm.io/datatypes"

// CharacterClass is a playable class (Fighter, Wizard, ...).
// Progression fields index into the BAB / saving throw progression tables.
type CharacterClass struct {
	ID              int64                        `gorm:"primaryKey;autoIncrement" json:"id"`
	Name            string                       `gorm:"size:64;default:'No Name Found'" json:"name"`
	HitDie          int                          `gorm:"default:6" json:"hit_die"`
	BABProgression  int                          `gorm:"column:bab_progression" json:"bab_progression"`
	FortProgression int                          `json:"fort_progression"`
	RefProgression  int                          `json:"ref_progression"`
	WillProgression int                          `json:"will_progression"`
	SkillPoints     int                          `gorm:"default:2" json:"skill_points"`
	ClassSkills     datatypes.JSONType[[]string] `json:"class_skills"`
	Proficiencies   datatypes.JSONType[[]string] `json:"proficiencies"`
	CasterTypeID    *int64                       `json:"caster_type_id"`
}

// CharacterClassPatch is a sparse update; nil fields are left untouched.
type CharacterClassPatch struct {
	Name            *string                       `json:"name"`
	HitDie          *int                          `json:"hit_die"`
	BABProgression  *int                          `json:"bab_progression"`
	FortProgression *int                          `json:"fort_progression"`
	RefProgression  *int                          `json:"ref_progression"`
	WillProgression *int                          `json:"will_progression"`
	SkillPoints     *int                          `json:"skill_points"`
	ClassSkills     *datatypes.JSONType[[]string] `json:"class_skills"`
	Proficiencies   *datatypes.JSONType[[]string] `json:"proficiencies"`
	CasterTypeID    *int64                        `json:"caster_type_id"`
}

func (p CharacterClassPatch) Apply(cc *CharacterClass) {
	if p.Name != nil {
		cc.Name = *p.Name
	}
	if p.HitDie != nil {
		cc.HitDie = *p.HitDie
	}
	if p.BABProgression != nil {
		cc.BABProgression = *p.BABProgression
	}
	if p.FortProgression != nil {
		cc.FortProgression = *p.FortProgression
	}
	if p.RefProgression != nil {
		cc.RefProgression = *p.RefProgression
	}
	if p.WillProgression != nil {
		cc.WillProgression = *p.WillProgression
	}
	if p.SkillPoints != nil {
		cc.SkillPoints = *p.SkillPoints
	}
	if p.ClassSkills != nil {
		cc.ClassSkills = *p.ClassSkills
	}
	if p.Proficiencies != nil {
		cc.Proficiencies = *p.Proficiencies
	}
	if p.CasterTypeID != nil {
		cc.CasterTypeID = p.CasterTypeID
	}
}
