package model

// BABProgression holds the base attack bonus values at one character level
// for each of the three progression tracks.
type BABProgression struct {
	ID     int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	Level  int   `gorm:"default:1" json:"level"`
	High   int   `gorm:"default:1" json:"high"`
	Medium int   `json:"medium"`
	Low    int   `json:"low"`
}

func (BABProgression) TableName() string { return "bab_progressions" }

// BABProgressionPatch is a sparse update; nil fields are left untouched.
type BABProgressionPatch struct {
	Level  *int `json:"level"`
	High   *int `json:"high"`
	Medium *int `json:"medium"`
	Low    *int `json:"low"`
}

func (p BABProgressionPatch) Apply(b *BABProgression) {
	if p.Level != nil {
		b.Level = *p.Level
	}
	if p.High != nil {
		b.High = *p.High
	}
	if p.Medium != nil {
		b.Medium = *p.Medium
	}
	if p.Low != nil {
		b.Low = *p.Low
	}
}
