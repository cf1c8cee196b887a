package rest

import (
	"github.com/gin-gonic/gin"
	"github.com/rowanvale/charforge/cache"
	"github.com/rowanvale/charforge/config"
	mw "github.com/rowanvale/charforge/middleware"
	"github.com/rowanvale/charforge/model"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type crudRoutes interface {
	Create(*gin.Context)
	List(*gin.Context)
	Get(*gin.Context)
	Update(*gin.Context)
	Delete(*gin.Context)
}

type linkRoutes interface {
	Create(*gin.Context)
	List(*gin.Context)
	Update(*gin.Context)
	Delete(*gin.Context)
}

func mount(r *gin.Engine, slug string, h crudRoutes) {
	g := r.Group("/" + slug)
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

func mountLink(r *gin.Engine, slug string, h linkRoutes, withUpdate bool) {
	g := r.Group("/" + slug)
	g.POST("", h.Create)
	g.GET("/:character_id", h.List)
	if withUpdate {
		g.PUT("/:character_id/:related_id", h.Update)
	}
	g.DELETE("/:character_id/:related_id", h.Delete)
}

// Register wires every route onto the engine.
func Register(r *gin.Engine, db *gorm.DB, c cache.Cache, cfg *config.Config, logger *zap.Logger) {
	// Reference entities. Writes are open; these tables are curated
	// rulebook data, not user data.
	mount(r, "alignments", NewResource[model.Alignment, model.AlignmentPatch](db, "Alignment"))
	mount(r, "armor", NewResource[model.Armor, model.ArmorPatch](db, "Armor"))
	mount(r, "bab_progressions", NewResource[model.BABProgression, model.BABProgressionPatch](db, "BAB Progression"))
	mount(r, "caster_types", NewResource[model.CasterType, model.CasterTypePatch](db, "Caster Type"))
	mount(r, "character_classes", NewResource[model.CharacterClass, model.CharacterClassPatch](db, "Character Class"))
	mount(r, "class_abilities", NewResource[model.ClassAbility, model.ClassAbilityPatch](db, "Class Ability"))
	mount(r, "equipment", NewResource[model.Equipment, model.EquipmentPatch](db, "Equipment"))
	mount(r, "feats", NewResource[model.Feat, model.FeatPatch](db, "Feat"))
	mount(r, "languages", NewResource[model.Language, model.LanguagePatch](db, "Language"))
	mount(r, "money_values", NewResource[model.MoneyValue, model.MoneyValuePatch](db, "Money Value"))
	mount(r, "races", NewResource[model.Race, model.RacePatch](db, "Race"))
	mount(r, "racial_traits", NewResource[model.RacialTrait, model.RacialTraitPatch](db, "Racial Trait"))
	mount(r, "saving_throw_progressions", NewResource[model.SavingThrowProgression, model.SavingThrowProgressionPatch](db, "Saving Throw Progression"))
	mount(r, "skills", NewResource[model.Skill, model.SkillPatch](db, "Skill"))
	mount(r, "spells", NewResource[model.Spell, model.SpellPatch](db, "Spell"))
	mount(r, "stats", NewResource[model.Stat, model.StatPatch](db, "Stat"))
	mount(r, "weapons", NewResource[model.Weapon, model.WeaponPatch](db, "Weapon"))

	// Characters. Reads of a single character are open; everything
	// else requires a valid token.
	auth := mw.Auth(cfg.Auth)
	ch := NewCharacterHandler(db)
	chars := r.Group("/characters")
	chars.POST("", auth, ch.Create)
	chars.GET("", auth, ch.List)
	chars.GET("/:id", ch.Get)
	chars.PUT("/:id", auth, ch.Update)
	chars.DELETE("/:id", auth, ch.Delete)

	// Character link tables. Feats and spells carry no payload, so
	// they have no update route.
	mountLink(r, "character_feats", NewLinkResource[model.CharacterFeat, model.Feat, noPayload[model.CharacterFeat]](
		db, "Character Feat", "Feat", "character_feats", "feats", "feat_id"), false)
	mountLink(r, "character_spells", NewLinkResource[model.CharacterSpell, model.Spell, noPayload[model.CharacterSpell]](
		db, "Character Spell", "Spell", "character_spells", "spells", "spell_id"), false)
	mountLink(r, "character_stats", NewLinkResource[model.CharacterStat, model.Stat, model.CharacterStatPatch](
		db, "Character Stat", "Stat", "character_stats", "stats", "stat_id"), true)
	mountLink(r, "character_skills", NewLinkResource[model.CharacterSkill, model.Skill, model.CharacterSkillPatch](
		db, "Character Skill", "Skill", "character_skills", "skills", "skill_id"), true)
	mountLink(r, "character_weapons", NewLinkResource[model.CharacterWeapon, model.Weapon, model.CharacterWeaponPatch](
		db, "Character Weapon", "Weapon", "character_weapons", "weapons", "weapon_id"), true)
	mountLink(r, "character_armor", NewLinkResource[model.CharacterArmor, model.Armor, model.CharacterArmorPatch](
		db, "Character Armor", "Armor", "character_armor", "armor", "armor_id"), true)
	mountLink(r, "character_equipment", NewLinkResource[model.CharacterEquipment, model.Equipment, model.CharacterEquipmentPatch](
		db, "Character Equipment", "Equipment", "character_equipment", "equipment", "equipment_id"), true)
	mountLink(r, "character_money", NewLinkResource[model.CharacterMoney, model.MoneyValue, model.CharacterMoneyPatch](
		db, "Character Money", "Money Value", "character_money", "money_values", "money_value_id"), true)

	// Aggregated picker lists for the builder UI.
	creation := NewCreationHandler(db, c, cfg.Cache.BundleTTL, logger)
	r.GET("/character_creation", creation.Bundle)

	// Operator surface, keyed separately from user auth.
	admin := r.Group("/admin", AdminAuth(cfg.Server.AdminKey))
	admin.GET("/characters", NewAdminHandler(db).ListCharacters)
}
