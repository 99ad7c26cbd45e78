package session

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/finboard/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse_Success(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")

	now := time.Now()
	tok, err := GenerateToken("user-123", "ama", secret, time.Hour, now)
	require.NoError(t, err)

	claims, err := ParseToken(tok, secret, now)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "ama", claims.Username())
	require.NotNil(t, claims.ExpiresAt)
}

func TestGenerateToken_ZeroTTLNeverExpires(t *testing.T) {
	t.Parallel()

	secret := []byte("k")
	issued := time.Now().Add(-24 * 365 * time.Hour)
	tok, err := GenerateToken("u1", "ama", secret, 0, issued)
	require.NoError(t, err)

	claims, err := ParseToken(tok, secret, issued.Add(10*365*24*time.Hour))
	require.NoError(t, err)
	assert.Nil(t, claims.ExpiresAt)
}

func TestParseToken_ExpiryFollowsGivenClock(t *testing.T) {
	t.Parallel()

	// Issued in the future so the wall clock alone would accept it.
	issued := time.Now().Add(24 * time.Hour)
	secret := []byte("secret")
	tok, err := GenerateToken("u1", "ama", secret, time.Minute, issued)
	require.NoError(t, err)

	_, err = ParseToken(tok, secret, issued.Add(30*time.Second))
	require.NoError(t, err)

	_, err = ParseToken(tok, secret, issued.Add(2*time.Hour))
	require.ErrorIs(t, err, common.ErrTokenExpired)
}

func TestParseToken_WrongSecret(t *testing.T) {
	t.Parallel()

	now := time.Now()
	tok, err := GenerateToken("u2", "kofi", []byte("right-secret"), time.Hour, now)
	require.NoError(t, err)

	_, err = ParseToken(tok, []byte("wrong-secret"), now)
	require.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestParseToken_MalformedString(t *testing.T) {
	t.Parallel()

	_, err := ParseToken("not.a.jwt", []byte("k"), time.Now())
	require.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestParseToken_RejectsOtherAlgorithms(t *testing.T) {
	t.Parallel()

	secret := []byte("k")
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS512, Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "ama"},
	}).SignedString(secret)
	require.NoError(t, err)

	_, err = ParseToken(tok, secret, time.Now())
	require.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestParseToken_MissingSubject(t *testing.T) {
	t.Parallel()

	secret := []byte("k")
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{UserID: "u1"}).SignedString(secret)
	require.NoError(t, err)

	_, err = ParseToken(tok, secret, time.Now())
	require.ErrorIs(t, err, common.ErrInvalidToken)
}
