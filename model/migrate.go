package model

import "gorm.io/gorm"

// allModels lists every model to be auto-migrated.
var allModels = []interface{}{
	&Alignment{},
	&Armor{},
	&BABProgression{},
	&CasterType{},
	&CharacterClass{},
	&ClassAbility{},
	&Equipment{},
	&Feat{},
	&Language{},
	&MoneyValue{},
	&Race{},
	&RacialTrait{},
	&SavingThrowProgression{},
	&Skill{},
	&Spell{},
	&Stat{},
	&Weapon{},
	&Character{},
	&CharacterFeat{},
	&CharacterSpell{},
	&CharacterStat{},
	&CharacterSkill{},
	&CharacterWeapon{},
	&CharacterArmor{},
	&CharacterEquipment{},
	&CharacterMoney{},
}

// AutoMigrate creates or updates all tables in the given database.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(allModels...)
}
