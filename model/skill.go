package model

// Skill references the stat that modifies its checks.
type Skill struct {
	ID              int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name            string `gorm:"size:64" json:"name"`
	ModifyingStatID *int64 `json:"modifying_stat_id"`
	Untrained       bool   `json:"untrained"`
}

// SkillPatch is a sparse update; nil fields are left untouched.
type SkillPatch struct {
	Name            *string `json:"name"`
	ModifyingStatID *int64  `json:"modifying_stat_id"`
	Untrained       *bool   `json:"untrained"`
}

func (p SkillPatch) Apply(s *Skill) {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.ModifyingStatID != nil {
		s.ModifyingStatID = p.ModifyingStatID
	}
	if p.Untrained != nil {
		s.Untrained = *p.Untrained
	}
}
