package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rowanvale/charforge/model"
	"gorm.io/gorm"
)

// linkModel is implemented by every character link row.
type linkModel interface {
	LinkKey() (characterID, relatedID int64)
}

// noPayload satisfies the patch parameter for link tables whose composite
// key is the whole row; such links get no update route.
type noPayload[L any] struct{}

func (noPayload[L]) Apply(*L) {}

var (
	errCharacterMissing = errors.New("character missing")
	errRelatedMissing   = errors.New("related entity missing")
)

// LinkResource handles one character link table. L is the link row model,
// R the related reference entity, P the payload patch type. The composite
// (character_id, related_id) pair is the only row identifier.
type LinkResource[L linkModel, R any, P Patch[L]] struct {
	db        *gorm.DB
	name      string // "Character Feat", for client-facing messages
	relName   string // "Feat"
	linkTable string
	relTable  string
	relCol    string // link-table column naming the related row
}

// NewLinkResource creates the handler for one link table.
func NewLinkResource[L linkModel, R any, P Patch[L]](
	db *gorm.DB, name, relName, linkTable, relTable, relCol string,
) *LinkResource[L, R, P] {
	return &LinkResource[L, R, P]{
		db:        db,
		name:      name,
		relName:   relName,
		linkTable: linkTable,
		relTable:  relTable,
		relCol:    relCol,
	}
}

// Create handles POST /character_{relation}. Both referenced rows must
// exist; the checks and the insert share one transaction so a row is
// never persisted against a missing reference.
func (r *LinkResource[L, R, P]) Create(c *gin.Context) {
	var row L
	if err := c.ShouldBindJSON(&row); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	charID, relID := row.LinkKey()
	if charID <= 0 || relID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "character_id and " + r.relCol + " are required"})
		return
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var char model.Character
		if err := tx.Select("id").First(&char, charID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errCharacterMissing
			}
			return err
		}
		var ids []int64
		if err := tx.Table(r.relTable).Where("id = ?", relID).Limit(1).Pluck("id", &ids).Error; err != nil {
			return err
		}
		if len(ids) == 0 {
			return errRelatedMissing
		}
		return tx.Create(&row).Error
	})
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, row)
	case errors.Is(err, errCharacterMissing):
		c.JSON(http.StatusNotFound, gin.H{"detail": "Character not found"})
	case errors.Is(err, errRelatedMissing):
		c.JSON(http.StatusNotFound, gin.H{"detail": r.relName + " not found"})
	case isUniqueViolation(err):
		c.JSON(http.StatusBadRequest, gin.H{"detail": r.name + " link already exists"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal error"})
	}
}

// List handles GET /character_{relation}/:character_id and returns the
// related entities joined through the link table, in insertion order.
func (r *LinkResource[L, R, P]) List(c *gin.Context) {
	charID, ok := parseID(c, "character_id")
	if !ok {
		return
	}
	var char model.Character
	if err := r.db.Select("id").First(&char, charID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Character not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal error"})
		}
		return
	}

	out := make([]R, 0)
	err := r.db.Table(r.relTable).
		Select(r.relTable+".*").
		Joins("JOIN "+r.linkTable+" ON "+r.linkTable+"."+r.relCol+" = "+r.relTable+".id").
		Where(r.linkTable+".character_id = ?", charID).
		Find(&out).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal error"})
		return
	}
	c.JSON(http.StatusOK, out)
}

// Update handles PUT /character_{relation}/:character_id/:related_id for
// link tables that carry a payload (ranks, quantity, equipped flag, ...).
func (r *LinkResource[L, R, P]) Update(c *gin.Context) {
	charID, ok := parseID(c, "character_id")
	if !ok {
		return
	}
	relID, ok := parseID(c, "related_id")
	if !ok {
		return
	}
	var p P
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	var row L
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("character_id = ? AND "+r.relCol+" = ?", charID, relID).First(&row).Error; err != nil {
			return err
		}
		p.Apply(&row)
		return tx.Save(&row).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": r.name + " link not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal error"})
		}
		return
	}
	c.JSON(http.StatusOK, row)
}

// Delete handles DELETE /character_{relation}/:character_id/:related_id.
func (r *LinkResource[L, R, P]) Delete(c *gin.Context) {
	charID, ok := parseID(c, "character_id")
	if !ok {
		return
	}
	relID, ok := parseID(c, "related_id")
	if !ok {
		return
	}
	var row L
	result := r.db.Where("character_id = ? AND "+r.relCol+" = ?", charID, relID).Delete(&row)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal error"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"detail": r.name + " link not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": r.name + " link deleted successfully"})
}
