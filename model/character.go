package model

import "time"

// Character is a player-built character. OwnerID is the subject claim of
// the token that created it; it is stamped server-side and never taken
// from request bodies. Reference foreign keys may dangle if the
// referenced row is deleted.
type Character struct {
	ID               int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name             string    `gorm:"size:64;not null" json:"name"`
	Level            int       `gorm:"default:1" json:"level"`
	OwnerID          string    `gorm:"index:idx_character_owner;size:64;not null" json:"owner_id"`
	CharacterClassID *int64    `json:"character_class_id"`
	RaceID           *int64    `json:"race_id"`
	AlignmentID      *int64    `json:"alignment_id"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// CharacterPatch is a sparse update. Ownership is not patchable.
type CharacterPatch struct {
	Name             *string `json:"name"`
	Level            *int    `json:"level"`
	CharacterClassID *int64  `json:"character_class_id"`
	RaceID           *int64  `json:"race_id"`
	AlignmentID      *int64  `json:"alignment_id"`
}

func (p CharacterPatch) Apply(ch *Character) {
	if p.Name != nil {
		ch.Name = *p.Name
	}
	if p.Level != nil {
		ch.Level = *p.Level
	}
	if p.CharacterClassID != nil {
		ch.CharacterClassID = p.CharacterClassID
	}
	if p.RaceID != nil {
		ch.RaceID = p.RaceID
	}
	if p.AlignmentID != nil {
		ch.AlignmentID = p.AlignmentID
	}
}
