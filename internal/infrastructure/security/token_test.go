package security

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portfolio/contact-api/internal/core/domain"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

var testUser = &domain.User{ID: "65f0c0ffee", Username: "ab", Role: domain.RoleUser}

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc := NewJWTService("secret")

	token, issued, err := svc.Issue(testUser)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, TokenTTL, issued.ExpiresAt.Sub(issued.IssuedAt))

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "65f0c0ffee", claims.UserID)
	assert.Equal(t, "ab", claims.Username)
	assert.Equal(t, domain.RoleUser, claims.Role)
}

func TestJWTService_ExpiredTokenIsExpiredNotInvalid(t *testing.T) {
	issuedAt := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	svc := NewJWTService("secret")
	svc.now = fixedClock(issuedAt)

	token, _, err := svc.Issue(testUser)
	require.NoError(t, err)

	for _, age := range []time.Duration{TokenTTL + time.Second, 2 * TokenTTL, 30 * 24 * time.Hour} {
		svc.now = fixedClock(issuedAt.Add(age))
		_, err := svc.Verify(token)
		assert.ErrorIs(t, err, domain.ErrTokenExpired, "age %s", age)
		assert.NotErrorIs(t, err, domain.ErrTokenInvalid, "age %s", age)
	}
}

func TestJWTService_StillValidJustBeforeExpiry(t *testing.T) {
	issuedAt := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	svc := NewJWTService("secret")
	svc.now = fixedClock(issuedAt)

	token, _, err := svc.Issue(testUser)
	require.NoError(t, err)

	svc.now = fixedClock(issuedAt.Add(TokenTTL - time.Second))
	_, err = svc.Verify(token)
	assert.NoError(t, err)
}

func TestJWTService_WrongSecret(t *testing.T) {
	token, _, err := NewJWTService("right").Issue(testUser)
	require.NoError(t, err)

	_, err = NewJWTService("wrong").Verify(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestJWTService_ExpiredAndForgedIsInvalid(t *testing.T) {
	issuer := NewJWTService("right")
	issuer.now = fixedClock(time.Now().Add(-3 * time.Hour))
	token, _, err := issuer.Issue(testUser)
	require.NoError(t, err)

	_, err = NewJWTService("wrong").Verify(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestJWTService_Garbage(t *testing.T) {
	_, err := NewJWTService("secret").Verify("not-a-token")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestJWTService_RejectsOtherAlgorithms(t *testing.T) {
	claims := jwt.MapClaims{
		"sub":  "x",
		"role": "admin",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = NewJWTService("secret").Verify(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestJWTService_RejectsTokenWithoutExpiry(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "x",
		"role": "admin",
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = NewJWTService("secret").Verify(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestJWTService_RejectsUnknownRole(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "x",
		"role": "root",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = NewJWTService("secret").Verify(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}
