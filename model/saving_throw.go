package model

// SavingThrowProgression holds the good/poor save bonuses at one level.
type SavingThrowProgression struct {
	ID       int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	Level    *int  `gorm:"index" json:"level"`
	GoodSave *int  `json:"good_save"`
	PoorSave *int  `json:"poor_save"`
}

// SavingThrowProgressionPatch is a sparse update; nil fields are left untouched.
type SavingThrowProgressionPatch struct {
	Level    *int `json:"level"`
	GoodSave *int `json:"good_save"`
	PoorSave *int `json:"poor_save"`
}

func (p SavingThrowProgressionPatch) Apply(s *SavingThrowProgression) {
	if p.Level != nil {
		s.Level = p.Level
	}
	if p.GoodSave != nil {
		s.GoodSave = p.GoodSave
	}
	if p.PoorSave != nil {
		s.PoorSave = p.PoorSave
	}
}
