package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	mw "github.com/rowanvale/charforge/middleware"
	"github.com/rowanvale/charforge/model"
	"gorm.io/gorm"
)

var errNotOwner = errors.New("caller does not own character")

// CharacterHandler handles the authenticated character lifecycle.
type CharacterHandler struct {
	db *gorm.DB
}

// NewCharacterHandler creates a new CharacterHandler.
func NewCharacterHandler(db *gorm.DB) *CharacterHandler {
	return &CharacterHandler{db: db}
}

type createCharacterRequest struct {
	Name             string `json:"name" binding:"required,min=1,max=64"`
	Level            int    `json:"level"`
	CharacterClassID *int64 `json:"character_class_id"`
	RaceID           *int64 `json:"race_id"`
	AlignmentID      *int64 `json:"alignment_id"`
}

// Create handles POST /characters. The owner is always the token
// subject; an owner_id in the body is ignored.
func (h *CharacterHandler) Create(c *gin.Context) {
	owner := mw.GetSubject(c)

	var req createCharacterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	level := req.Level
	if level <= 0 {
		level = 1
	}

	char := &model.Character{
		Name:             req.Name,
		Level:            level,
		OwnerID:          owner,
		CharacterClassID: req.CharacterClassID,
		RaceID:           req.RaceID,
		AlignmentID:      req.AlignmentID,
	}
	if err := h.db.Create(char).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal error"})
		return
	}
	c.JSON(http.StatusCreated, char)
}

// Get handles GET /characters/:id. Reads are open to any caller.
func (h *CharacterHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var char model.Character
	if err := h.db.First(&char, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Character not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal error"})
		}
		return
	}
	c.JSON(http.StatusOK, char)
}

// List handles GET /characters and returns only the caller's characters.
func (h *CharacterHandler) List(c *gin.Context) {
	owner := mw.GetSubject(c)
	chars := make([]model.Character, 0)
	if err := h.db.Where("owner_id = ?", owner).Find(&chars).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal error"})
		return
	}
	c.JSON(http.StatusOK, chars)
}

// Update handles PUT /characters/:id. Only the stored owner may mutate;
// the check and the write share one transaction.
func (h *CharacterHandler) Update(c *gin.Context) {
	owner := mw.GetSubject(c)
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var p model.CharacterPatch
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	var char model.Character
	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&char, id).Error; err != nil {
			return err
		}
		if char.OwnerID != owner {
			return errNotOwner
		}
		p.Apply(&char)
		return tx.Save(&char).Error
	})
	switch {
	case err == nil:
		c.JSON(http.StatusOK, char)
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": "Character not found"})
	case errors.Is(err, errNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"detail": "Not authorized to modify this character"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal error"})
	}
}

// Delete handles DELETE /characters/:id. The character's link rows are
// removed in the same transaction so no orphaned joins remain.
func (h *CharacterHandler) Delete(c *gin.Context) {
	owner := mw.GetSubject(c)
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		var char model.Character
		if err := tx.First(&char, id).Error; err != nil {
			return err
		}
		if char.OwnerID != owner {
			return errNotOwner
		}
		for _, link := range model.LinkTables() {
			if err := tx.Where("character_id = ?", id).Delete(link).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&model.Character{}, id).Error
	})
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"message": "Character deleted successfully"})
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"detail": "Character not found"})
	case errors.Is(err, errNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"detail": "Not authorized to modify this character"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal error"})
	}
}
