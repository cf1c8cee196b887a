package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rowanvale/charforge/cache"
	"github.com/rowanvale/charforge/model"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const bundleCacheKey = "creation_bundle"

// CreationHandler serves the character creation bundle: every reference
// list a builder UI needs to render its pickers, fetched in one call.
type CreationHandler struct {
	db     *gorm.DB
	cache  cache.Cache
	ttl    time.Duration
	logger *zap.Logger
}

func NewCreationHandler(db *gorm.DB, c cache.Cache, ttl time.Duration, logger *zap.Logger) *CreationHandler {
	return &CreationHandler{db: db, cache: c, ttl: ttl, logger: logger}
}

type creationBundle struct {
	Classes    []model.CharacterClass `json:"classes"`
	Races      []model.Race           `json:"races"`
	Stats      []model.Stat           `json:"stats"`
	Skills     []model.Skill          `json:"skills"`
	Feats      []model.Feat           `json:"feats"`
	Alignments []model.Alignment      `json:"alignments"`
}

// Bundle handles GET /character_creation. Responses are cached for a
// short TTL; cache failures degrade to a plain database read.
func (h *CreationHandler) Bundle(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if cached, err := h.cache.Get(ctx, bundleCacheKey); err == nil {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(cached))
		return
	}

	bundle := creationBundle{
		Classes:    make([]model.CharacterClass, 0),
		Races:      make([]model.Race, 0),
		Stats:      make([]model.Stat, 0),
		Skills:     make([]model.Skill, 0),
		Feats:      make([]model.Feat, 0),
		Alignments: make([]model.Alignment, 0),
	}
	for _, dest := range []interface{}{
		&bundle.Classes, &bundle.Races, &bundle.Stats,
		&bundle.Skills, &bundle.Feats, &bundle.Alignments,
	} {
		if err := h.db.Find(dest).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal error"})
			return
		}
	}

	body, err := json.Marshal(bundle)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal error"})
		return
	}
	if err := h.cache.Set(ctx, bundleCacheKey, string(body), h.ttl); err != nil {
		h.logger.Warn("cache creation bundle", zap.Error(err))
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}
