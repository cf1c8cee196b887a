package rest

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Patch applies a sparse update to a record. Implementations name
// exactly the updatable fields of their entity; nil fields are skipped.
type Patch[T any] interface {
	Apply(*T)
}

// Resource is the CRUD handler for one reference entity. T is the gorm
// model, P its patch type. The name appears in client-facing messages,
// e.g. "Armor not found".
type Resource[T any, P Patch[T]] struct {
	db   *gorm.DB
	name string
}

// NewResource creates a Resource for one entity.
func NewResource[T any, P Patch[T]](db *gorm.DB, name string) *Resource[T, P] {
	return &Resource[T, P]{db: db, name: name}
}

// Create handles POST /{entity}.
func (r *Resource[T, P]) Create(c *gin.Context) {
	rec := new(T)
	if err := c.ShouldBindJSON(rec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	if err := r.db.Create(rec).Error; err != nil {
		if isUniqueViolation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"detail": r.name + " already exists"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal error"})
		}
		return
	}
	c.JSON(http.StatusCreated, rec)
}

// List handles GET /{entity}. An empty table yields an empty list.
func (r *Resource[T, P]) List(c *gin.Context) {
	out := make([]T, 0)
	if err := r.db.Find(&out).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal error"})
		return
	}
	c.JSON(http.StatusOK, out)
}

// Get handles GET /{entity}/:id.
func (r *Resource[T, P]) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	rec := new(T)
	if err := r.db.First(rec, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": r.name + " not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal error"})
		}
		return
	}
	c.JSON(http.StatusOK, rec)
}

// Update handles PUT /{entity}/:id. Only fields present in the body are
// changed; the read-apply-write runs in one transaction and the response
// is the persisted row.
func (r *Resource[T, P]) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var p P
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	rec := new(T)
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(rec, id).Error; err != nil {
			return err
		}
		p.Apply(rec)
		return tx.Save(rec).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": r.name + " not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal error"})
		}
		return
	}
	c.JSON(http.StatusOK, rec)
}

// Delete handles DELETE /{entity}/:id.
func (r *Resource[T, P]) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	result := r.db.Delete(new(T), id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal error"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"detail": r.name + " not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": r.name + " deleted successfully"})
}

func parseID(c *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid id"})
		return 0, false
	}
	return id, true
}

// isUniqueViolation detects duplicate-key errors from common database drivers.
func isUniqueViolation(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique") ||
		strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "already exists")
}
