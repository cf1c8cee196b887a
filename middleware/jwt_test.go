package middleware

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret   = "test-jwt-secret-32bytes-padded!!"
	testAudience = "authenticated"
)

func TestGenerateToken_Valid(t *testing.T) {
	tok, err := GenerateToken("user-42", testSecret, testAudience, time.Hour)
	require.NoError(t, err)
	assert.NotEmpty(t, tok)
}

func TestParseToken_Valid(t *testing.T) {
	tok, err := GenerateToken("user-99", testSecret, testAudience, time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(tok, testSecret, testAudience)
	require.NoError(t, err)
	assert.Equal(t, "user-99", claims.Subject)
}

func TestParseToken_WrongSecret(t *testing.T) {
	tok, err := GenerateToken("user-1", testSecret, testAudience, time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(tok, "wrong-secret", testAudience)
	assert.Error(t, err)
}

func TestParseToken_WrongAudience(t *testing.T) {
	tok, err := GenerateToken("user-1", testSecret, "some-other-service", time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(tok, testSecret, testAudience)
	assert.Error(t, err)
}

func TestParseToken_Expired(t *testing.T) {
	tok, err := GenerateToken("user-1", testSecret, testAudience, -time.Second)
	require.NoError(t, err)

	_, err = ParseToken(tok, testSecret, testAudience)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestParseToken_Malformed(t *testing.T) {
	_, err := ParseToken("not.a.jwt", testSecret, testAudience)
	assert.Error(t, err)
}

func TestParseToken_Empty(t *testing.T) {
	_, err := ParseToken("", testSecret, testAudience)
	assert.Error(t, err)
}

func TestParseToken_EmptySubject(t *testing.T) {
	tok, err := GenerateToken("", testSecret, testAudience, time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(tok, testSecret, testAudience)
	assert.Error(t, err)
}

func TestGenerateToken_DifferentSubjects(t *testing.T) {
	t1, _ := GenerateToken("user-1", testSecret, testAudience, time.Hour)
	t2, _ := GenerateToken("user-2", testSecret, testAudience, time.Hour)
	assert.NotEqual(t, t1, t2)

	c1, _ := ParseToken(t1, testSecret, testAudience)
	c2, _ := ParseToken(t2, testSecret, testAudience)
	assert.Equal(t, "user-1", c1.Subject)
	assert.Equal(t, "user-2", c2.Subject)
}
