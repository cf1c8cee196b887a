package rest

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rowanvale/charforge/model"
	"gorm.io/gorm"
)

// AdminAuth gates the admin group behind a shared key. When no key is
// configured the group is disabled rather than left open.
func AdminAuth(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if key == "" {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"detail": "Admin interface disabled"})
			return
		}
		got := c.GetHeader("X-Admin-Key")
		if subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1 {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"detail": "Invalid admin key"})
			return
		}
		c.Next()
	}
}

// AdminHandler exposes cross-owner views for operators.
type AdminHandler struct {
	db *gorm.DB
}

func NewAdminHandler(db *gorm.DB) *AdminHandler {
	return &AdminHandler{db: db}
}

// ListCharacters returns every character regardless of owner.
func (h *AdminHandler) ListCharacters(c *gin.Context) {
	chars := make([]model.Character, 0)
	if err := h.db.Find(&chars).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal error"})
		return
	}
	c.JSON(http.StatusOK, chars)
}
