package rest_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedCharacterAndStat creates one character and one stat and returns
// both ids.
func seedCharacterAndStat(t *testing.T, r *gin.Engine) (charID, statID int64) {
	t.Helper()
	tok := tokenFor(t, "link-user")

	w := postJSON(r, "/characters", map[string]interface{}{"name": "Lyra"}, bearer(tok)...)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	charID = int64(decode(t, w)["id"].(float64))

	w = postJSON(r, "/stats", map[string]interface{}{"name": "Dexterity", "abbreviation": "DEX"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	statID = int64(decode(t, w)["id"].(float64))
	return charID, statID
}

func TestLinkCreateAndList(t *testing.T) {
	r, _ := newTestRouter(t)
	charID, statID := seedCharacterAndStat(t, r)

	w := postJSON(r, "/character_stats", map[string]interface{}{
		"character_id": charID, "stat_id": statID, "value": 16,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	got := decode(t, w)
	assert.Equal(t, float64(16), got["value"])

	// Listing returns the joined stat rows, not the link rows.
	w = getReq(r, fmt.Sprintf("/character_stats/%d", charID))
	require.Equal(t, http.StatusOK, w.Code)
	list := decodeList(t, w)
	require.Len(t, list, 1)
	assert.Equal(t, "Dexterity", list[0]["name"])
}

func TestLinkCreateMissingCharacter(t *testing.T) {
	r, _ := newTestRouter(t)
	_, statID := seedCharacterAndStat(t, r)

	w := postJSON(r, "/character_stats", map[string]interface{}{
		"character_id": 9999, "stat_id": statID, "value": 10,
	})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Character not found", decode(t, w)["detail"])
}

func TestLinkCreateMissingRelated(t *testing.T) {
	r, _ := newTestRouter(t)
	charID, _ := seedCharacterAndStat(t, r)

	w := postJSON(r, "/character_stats", map[string]interface{}{
		"character_id": charID, "stat_id": 9999, "value": 10,
	})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Stat not found", decode(t, w)["detail"])
}

func TestLinkCreateDuplicate(t *testing.T) {
	r, _ := newTestRouter(t)
	charID, statID := seedCharacterAndStat(t, r)

	body := map[string]interface{}{"character_id": charID, "stat_id": statID, "value": 12}
	w := postJSON(r, "/character_stats", body)
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(r, "/character_stats", body)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Character Stat link already exists", decode(t, w)["detail"])
}

func TestLinkCreateMissingKeys(t *testing.T) {
	r, _ := newTestRouter(t)

	w := postJSON(r, "/character_stats", map[string]interface{}{"value": 12})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLinkListMissingCharacter(t *testing.T) {
	r, _ := newTestRouter(t)

	w := getReq(r, "/character_feats/1234")
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Character not found", decode(t, w)["detail"])
}

func TestLinkUpdatePayload(t *testing.T) {
	r, _ := newTestRouter(t)
	charID, statID := seedCharacterAndStat(t, r)

	w := postJSON(r, "/character_stats", map[string]interface{}{
		"character_id": charID, "stat_id": statID, "value": 12,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = putJSON(r, fmt.Sprintf("/character_stats/%d/%d", charID, statID),
		map[string]interface{}{"value": 18})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	got := decode(t, w)
	assert.Equal(t, float64(18), got["value"])
	assert.Equal(t, float64(charID), got["character_id"])
}

func TestLinkUpdateMissing(t *testing.T) {
	r, _ := newTestRouter(t)
	charID, statID := seedCharacterAndStat(t, r)

	w := putJSON(r, fmt.Sprintf("/character_stats/%d/%d", charID, statID),
		map[string]interface{}{"value": 18})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Character Stat link not found", decode(t, w)["detail"])
}

func TestLinkDelete(t *testing.T) {
	r, _ := newTestRouter(t)
	charID, statID := seedCharacterAndStat(t, r)

	w := postJSON(r, "/character_stats", map[string]interface{}{
		"character_id": charID, "stat_id": statID, "value": 12,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = deleteReq(r, fmt.Sprintf("/character_stats/%d/%d", charID, statID))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Character Stat link deleted successfully", decode(t, w)["message"])

	w = deleteReq(r, fmt.Sprintf("/character_stats/%d/%d", charID, statID))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFeatLinkHasNoUpdateRoute(t *testing.T) {
	r, _ := newTestRouter(t)
	charID, _ := seedCharacterAndStat(t, r)

	w := postJSON(r, "/feats", map[string]interface{}{"name": "Dodge"})
	require.Equal(t, http.StatusCreated, w.Code)
	featID := int64(decode(t, w)["id"].(float64))

	w = postJSON(r, "/character_feats", map[string]interface{}{
		"character_id": charID, "feat_id": featID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Payload-less links expose no PUT.
	w = putJSON(r, fmt.Sprintf("/character_feats/%d/%d", charID, featID), map[string]interface{}{})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEquipmentLinkDefaultsQuantity(t *testing.T) {
	r, _ := newTestRouter(t)
	charID, _ := seedCharacterAndStat(t, r)

	w := postJSON(r, "/equipment", map[string]interface{}{"name": "Rope (50 ft)"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	eqID := int64(decode(t, w)["id"].(float64))

	w = postJSON(r, "/character_equipment", map[string]interface{}{
		"character_id": charID, "equipment_id": eqID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}
