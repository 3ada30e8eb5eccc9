package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/constructco-site-backend/models"
)

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse", hash)

	assert.True(t, CheckPassword(hash, "correct horse"))
	assert.False(t, CheckPassword(hash, "wrong horse"))
	assert.False(t, CheckPassword("not-a-bcrypt-hash", "correct horse"))

	_, err = HashPassword("short")
	assert.Error(t, err)
}

func newTestTokens(t *testing.T) *Tokens {
	t.Helper()
	tokens, err := NewTokens(Settings{SecretKey: "test-secret", TokenExpiryMinutes: 60, Issuer: "test"})
	require.NoError(t, err)
	return tokens
}

func TestTokenIssueAndValidate(t *testing.T) {
	tokens := newTestTokens(t)
	profile := &models.Profile{ID: uuid.New(), Email: "admin@example.com", IsAdmin: true}

	signed, err := tokens.Issue(profile)
	require.NoError(t, err)

	id, err := tokens.Validate(signed)
	require.NoError(t, err)
	assert.Equal(t, profile.ID, id.ProfileID)
	assert.Equal(t, "admin@example.com", id.Email)
	assert.True(t, id.IsAdmin)
}

func TestTokenExpired(t *testing.T) {
	tokens := newTestTokens(t)
	issuedAt := time.Now().Add(-2 * time.Hour)
	tokens.now = func() time.Time { return issuedAt }

	signed, err := tokens.Issue(&models.Profile{ID: uuid.New(), Email: "a@example.com"})
	require.NoError(t, err)

	tokens.now = time.Now
	_, err = tokens.Validate(signed)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestTokenRejectsTamperingAndOtherKeys(t *testing.T) {
	tokens := newTestTokens(t)
	signed, err := tokens.Issue(&models.Profile{ID: uuid.New(), Email: "a@example.com"})
	require.NoError(t, err)

	other, err := NewTokens(Settings{SecretKey: "another-secret"})
	require.NoError(t, err)
	_, err = other.Validate(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = tokens.Validate(signed + "x")
	assert.ErrorIs(t, err, ErrInvalidToken)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{Email: "a@example.com"})
	raw, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = tokens.Validate(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewTokensRequiresSecret(t *testing.T) {
	_, err := NewTokens(Settings{})
	assert.Error(t, err)
}

func TestIdentityContext(t *testing.T) {
	_, ok := FromContext(context.Background())
	assert.False(t, ok)

	want := Identity{ProfileID: uuid.New(), Email: "a@example.com"}
	got, ok := FromContext(WithIdentity(context.Background(), want))
	require.True(t, ok)
	assert.Equal(t, want, got)
}
