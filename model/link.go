package model

// Link tables joining a Character to reference entities. The composite
// (character_id, related_id) pair is the primary key; there are no
// surrogate link ids. Rows live and die independently of the referenced
// reference rows, but deleting a Character removes its link rows.

// CharacterFeat marks a feat as taken by a character.
type CharacterFeat struct {
	CharacterID int64 `gorm:"primaryKey;autoIncrement:false" json:"character_id"`
	FeatID      int64 `gorm:"primaryKey;autoIncrement:false" json:"feat_id"`
}

func (CharacterFeat) TableName() string { return "character_feats" }

// LinkKey returns the composite key (character id, related id).
func (l CharacterFeat) LinkKey() (int64, int64) { return l.CharacterID, l.FeatID }

// CharacterSpell marks a spell as known by a character.
type CharacterSpell struct {
	CharacterID int64 `gorm:"primaryKey;autoIncrement:false" json:"character_id"`
	SpellID     int64 `gorm:"primaryKey;autoIncrement:false" json:"spell_id"`
}

func (CharacterSpell) TableName() string { return "character_spells" }

func (l CharacterSpell) LinkKey() (int64, int64) { return l.CharacterID, l.SpellID }

// CharacterStat stores a character's rolled value for one stat.
type CharacterStat struct {
	CharacterID int64 `gorm:"primaryKey;autoIncrement:false" json:"character_id"`
	StatID      int64 `gorm:"primaryKey;autoIncrement:false" json:"stat_id"`
	Value       int   `json:"value"`
}

func (CharacterStat) TableName() string { return "character_stats" }

func (l CharacterStat) LinkKey() (int64, int64) { return l.CharacterID, l.StatID }

// CharacterStatPatch is a sparse update of the link payload.
type CharacterStatPatch struct {
	Value *int `json:"value"`
}

func (p CharacterStatPatch) Apply(l *CharacterStat) {
	if p.Value != nil {
		l.Value = *p.Value
	}
}

// CharacterSkill stores the ranks a character has put into one skill.
type CharacterSkill struct {
	CharacterID int64 `gorm:"primaryKey;autoIncrement:false" json:"character_id"`
	SkillID     int64 `gorm:"primaryKey;autoIncrement:false" json:"skill_id"`
	Ranks       int   `json:"ranks"`
}

func (CharacterSkill) TableName() string { return "character_skills" }

func (l CharacterSkill) LinkKey() (int64, int64) { return l.CharacterID, l.SkillID }

// CharacterSkillPatch is a sparse update of the link payload.
type CharacterSkillPatch struct {
	Ranks *int `json:"ranks"`
}

func (p CharacterSkillPatch) Apply(l *CharacterSkill) {
	if p.Ranks != nil {
		l.Ranks = *p.Ranks
	}
}

// CharacterWeapon stores how many of one weapon a character carries.
type CharacterWeapon struct {
	CharacterID int64 `gorm:"primaryKey;autoIncrement:false" json:"character_id"`
	WeaponID    int64 `gorm:"primaryKey;autoIncrement:false" json:"weapon_id"`
	Quantity    int   `gorm:"default:1" json:"quantity"`
}

func (CharacterWeapon) TableName() string { return "character_weapons" }

func (l CharacterWeapon) LinkKey() (int64, int64) { return l.CharacterID, l.WeaponID }

// CharacterWeaponPatch is a sparse update of the link payload.
type CharacterWeaponPatch struct {
	Quantity *int `json:"quantity"`
}

func (p CharacterWeaponPatch) Apply(l *CharacterWeapon) {
	if p.Quantity != nil {
		l.Quantity = *p.Quantity
	}
}

// CharacterArmor stores owned armor and whether it is worn.
type CharacterArmor struct {
	CharacterID int64 `gorm:"primaryKey;autoIncrement:false" json:"character_id"`
	ArmorID     int64 `gorm:"primaryKey;autoIncrement:false" json:"armor_id"`
	Equipped    bool  `json:"equipped"`
}

func (CharacterArmor) TableName() string { return "character_armor" }

func (l CharacterArmor) LinkKey() (int64, int64) { return l.CharacterID, l.ArmorID }

// CharacterArmorPatch is a sparse update of the link payload.
type CharacterArmorPatch struct {
	Equipped *bool `json:"equipped"`
}

func (p CharacterArmorPatch) Apply(l *CharacterArmor) {
	if p.Equipped != nil {
		l.Equipped = *p.Equipped
	}
}

// CharacterEquipment is a character's inventory of one equipment item.
type CharacterEquipment struct {
	CharacterID int64 `gorm:"primaryKey;autoIncrement:false" json:"character_id"`
	EquipmentID int64 `gorm:"primaryKey;autoIncrement:false" json:"equipment_id"`
	Quantity    int   `gorm:"default:1" json:"quantity"`
}

func (CharacterEquipment) TableName() string { return "character_equipment" }

func (l CharacterEquipment) LinkKey() (int64, int64) { return l.CharacterID, l.EquipmentID }

// CharacterEquipmentPatch is a sparse update of the link payload.
type CharacterEquipmentPatch struct {
	Quantity *int `json:"quantity"`
}

func (p CharacterEquipmentPatch) Apply(l *CharacterEquipment) {
	if p.Quantity != nil {
		l.Quantity = *p.Quantity
	}
}

// CharacterMoney stores how many coins of one denomination a character holds.
type CharacterMoney struct {
	CharacterID  int64 `gorm:"primaryKey;autoIncrement:false" json:"character_id"`
	MoneyValueID int64 `gorm:"primaryKey;autoIncrement:false" json:"money_value_id"`
	Quantity     int   `json:"quantity"`
}

func (CharacterMoney) TableName() string { return "character_money" }

func (l CharacterMoney) LinkKey() (int64, int64) { return l.CharacterID, l.MoneyValueID }

// CharacterMoneyPatch is a sparse update of the link payload.
type CharacterMoneyPatch struct {
	Quantity *int `json:"quantity"`
}

func (p CharacterMoneyPatch) Apply(l *CharacterMoney) {
	if p.Quantity != nil {
		l.Quantity = *p.Quantity
	}
}

// linkTables lists every link model; used by the character delete cascade.
var linkTables = []interface{}{
	&CharacterFeat{},
	&CharacterSpell{},
	&CharacterStat{},
	&CharacterSkill{},
	&CharacterWeapon{},
	&CharacterArmor{},
	&CharacterEquipment{},
	&CharacterMoney{},
}

// LinkTables returns one zero value of each link model.
func LinkTables() []interface{} { return linkTables }
