package model

// Stat is one of the six ability scores.
type Stat struct {
	ID           int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string `gorm:"size:32" json:"name"`
	Abbreviation string `gorm:"size:8" json:"abbreviation"`
}

// StatPatch is a sparse update; nil fields are left untouched.
type StatPatch struct {
	Name         *string `json:"name"`
	Abbreviation *string `json:"abbreviation"`
}

func (p StatPatch) Apply(s *Stat) {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Abbreviation != nil {
		s.Abbreviation = *p.Abbreviation
	}
}
