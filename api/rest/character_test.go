package rest_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	mw "github.com/rowanvale/charforge/middleware"
	"github.com/rowanvale/charforge/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bearer(token string) []string {
	return []string{"Authorization", "Bearer " + token}
}

func TestCharacterCreateRequiresToken(t *testing.T) {
	r, _ := newTestRouter(t)

	w := postJSON(r, "/characters", map[string]interface{}{"name": "Lyra"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Not authenticated", decode(t, w)["detail"])
}

func TestCharacterExpiredToken(t *testing.T) {
	r, _ := newTestRouter(t)

	tok, err := mw.GenerateToken("user-1", testSecret, testAudience, -time.Minute)
	require.NoError(t, err)

	w := postJSON(r, "/characters", map[string]interface{}{"name": "Lyra"}, bearer(tok)...)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Token has expired", decode(t, w)["detail"])
}

func TestCharacterGarbageToken(t *testing.T) {
	r, _ := newTestRouter(t)

	w := postJSON(r, "/characters", map[string]interface{}{"name": "Lyra"},
		"Authorization", "Bearer not-a-jwt")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid token", decode(t, w)["detail"])
}

func TestCharacterWrongSecretToken(t *testing.T) {
	r, _ := newTestRouter(t)

	tok, err := mw.GenerateToken("user-1", "other-secret", testAudience, time.Hour)
	require.NoError(t, err)

	w := postJSON(r, "/characters", map[string]interface{}{"name": "Lyra"}, bearer(tok)...)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid token", decode(t, w)["detail"])
}

func TestCharacterOwnerStampedFromToken(t *testing.T) {
	r, _ := newTestRouter(t)
	tok := tokenFor(t, "user-1")

	// The owner_id in the body must be ignored.
	w := postJSON(r, "/characters", map[string]interface{}{
		"name": "Lyra", "owner_id": "somebody-else",
	}, bearer(tok)...)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	got := decode(t, w)
	assert.Equal(t, "user-1", got["owner_id"])
	assert.Equal(t, float64(1), got["level"])
}

func TestCharacterGetIsOpen(t *testing.T) {
	r, _ := newTestRouter(t)
	tok := tokenFor(t, "user-1")

	w := postJSON(r, "/characters", map[string]interface{}{"name": "Lyra"}, bearer(tok)...)
	require.Equal(t, http.StatusCreated, w.Code)
	id := int64(decode(t, w)["id"].(float64))

	// No token at all.
	w = getReq(r, fmt.Sprintf("/characters/%d", id))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Lyra", decode(t, w)["name"])
}

func TestCharacterListScopedToOwner(t *testing.T) {
	r, _ := newTestRouter(t)
	tokA := tokenFor(t, "user-a")
	tokB := tokenFor(t, "user-b")

	for _, name := range []string{"Alpha", "Beta"} {
		w := postJSON(r, "/characters", map[string]interface{}{"name": name}, bearer(tokA)...)
		require.Equal(t, http.StatusCreated, w.Code)
	}
	w := postJSON(r, "/characters", map[string]interface{}{"name": "Gamma"}, bearer(tokB)...)
	require.Equal(t, http.StatusCreated, w.Code)

	w = getReq(r, "/characters", bearer(tokA)...)
	require.Equal(t, http.StatusOK, w.Code)
	list := decodeList(t, w)
	require.Len(t, list, 2)
	for _, ch := range list {
		assert.Equal(t, "user-a", ch["owner_id"])
	}
}

func TestCharacterUpdateByOwner(t *testing.T) {
	r, _ := newTestRouter(t)
	tok := tokenFor(t, "user-1")

	w := postJSON(r, "/characters", map[string]interface{}{"name": "Lyra"}, bearer(tok)...)
	require.Equal(t, http.StatusCreated, w.Code)
	id := int64(decode(t, w)["id"].(float64))

	w = putJSON(r, fmt.Sprintf("/characters/%d", id), map[string]interface{}{"level": 3}, bearer(tok)...)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	got := decode(t, w)
	assert.Equal(t, float64(3), got["level"])
	assert.Equal(t, "Lyra", got["name"])
}

func TestCharacterUpdateByNonOwnerForbidden(t *testing.T) {
	r, db := newTestRouter(t)
	owner := tokenFor(t, "user-a")
	intruder := tokenFor(t, "user-b")

	w := postJSON(r, "/characters", map[string]interface{}{"name": "Lyra"}, bearer(owner)...)
	require.Equal(t, http.StatusCreated, w.Code)
	id := int64(decode(t, w)["id"].(float64))

	w = putJSON(r, fmt.Sprintf("/characters/%d", id), map[string]interface{}{"name": "Stolen"}, bearer(intruder)...)
	require.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Not authorized to modify this character", decode(t, w)["detail"])

	// The record is untouched.
	var ch model.Character
	require.NoError(t, db.First(&ch, id).Error)
	assert.Equal(t, "Lyra", ch.Name)
}

func TestCharacterDeleteByNonOwnerForbidden(t *testing.T) {
	r, db := newTestRouter(t)
	owner := tokenFor(t, "user-a")
	intruder := tokenFor(t, "user-b")

	w := postJSON(r, "/characters", map[string]interface{}{"name": "Lyra"}, bearer(owner)...)
	require.Equal(t, http.StatusCreated, w.Code)
	id := int64(decode(t, w)["id"].(float64))

	w = deleteReq(r, fmt.Sprintf("/characters/%d", id), bearer(intruder)...)
	require.Equal(t, http.StatusForbidden, w.Code)

	var count int64
	require.NoError(t, db.Model(&model.Character{}).Where("id = ?", id).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCharacterDeleteCascadesLinks(t *testing.T) {
	r, db := newTestRouter(t)
	tok := tokenFor(t, "user-1")

	w := postJSON(r, "/stats", map[string]interface{}{"name": "Dexterity", "abbreviation": "DEX"})
	require.Equal(t, http.StatusCreated, w.Code)
	statID := int64(decode(t, w)["id"].(float64))

	w = postJSON(r, "/characters", map[string]interface{}{"name": "Lyra"}, bearer(tok)...)
	require.Equal(t, http.StatusCreated, w.Code)
	charID := int64(decode(t, w)["id"].(float64))

	w = postJSON(r, "/character_stats", map[string]interface{}{
		"character_id": charID, "stat_id": statID, "value": 16,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = deleteReq(r, fmt.Sprintf("/characters/%d", charID), bearer(tok)...)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Character deleted successfully", decode(t, w)["message"])

	var count int64
	require.NoError(t, db.Model(&model.CharacterStat{}).Where("character_id = ?", charID).Count(&count).Error)
	assert.Zero(t, count)

	// The referenced stat itself survives.
	w = getReq(r, fmt.Sprintf("/stats/%d", statID))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCharacterDeleteMissing(t *testing.T) {
	r, _ := newTestRouter(t)
	tok := tokenFor(t, "user-1")

	w := deleteReq(r, "/characters/404", bearer(tok)...)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Character not found", decode(t, w)["detail"])
}
