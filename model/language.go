package model

import "gorm.io/datatypes"

// Language is a spoken/written language and the races it is native to.
type Language struct {
	ID             int64                        `gorm:"primaryKey;autoIncrement" json:"id"`
	Name           string                       `gorm:"size:64" json:"name"`
	LearnedByRaces datatypes.JSONType[[]string] `json:"learned_by_races"`
}

// LanguagePatch is a sparse update; nil fields are left untouched.
type LanguagePatch struct {
	Name           *string                       `json:"name"`
	LearnedByRaces *datatypes.JSONType[[]string] `json:"learned_by_races"`
}

func (p LanguagePatch) Apply(l *Language) {
	if p.Name != nil {
		l.Name = *p.Name
	}
	if p.LearnedByRaces != nil {
		l.LearnedByRaces = *p.LearnedByRaces
	}
}
