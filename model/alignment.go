package model

// Alignment is one of the moral/ethical alignments (e.g. Lawful Good).
type Alignment struct {
	ID           int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string `gorm:"size:64" json:"name"`
	Abbreviation string `gorm:"size:8" json:"abbreviation"`
}

// AlignmentPatch is a sparse update; nil fields are left untouched.
type AlignmentPatch struct {
	Name         *string `json:"name"`
	Abbreviation *string `json:"abbreviation"`
}

func (p AlignmentPatch) Apply(a *Alignment) {
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.Abbreviation != nil {
		a.Abbreviation = *p.Abbreviation
	}
}
