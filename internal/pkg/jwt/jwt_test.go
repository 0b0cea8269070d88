package jwt

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := New("test-secret", time.Hour)

	token, err := svc.GenerateToken(42, "admin")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "paradise-api", claims.Issuer)
}

func TestExpiredTokenRejected(t *testing.T) {
	svc := New("test-secret", -time.Minute)

	token, err := svc.GenerateToken(42, "admin")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestWrongSecretRejected(t *testing.T) {
	issuing := New("secret-a", time.Hour)
	verifying := New("secret-b", time.Hour)

	token, err := issuing.GenerateToken(42, "admin")
	require.NoError(t, err)

	_, err = verifying.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestForeignIssuerRejected(t *testing.T) {
	svc := New("test-secret", time.Hour)

	foreign := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, Claims{
		UserID: 42,
		Role:   "admin",
		RegisteredClaims: jwtlib.RegisteredClaims{
			Issuer:    "someone-else",
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	token, err := foreign.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestUnsignedTokenRejected(t *testing.T) {
	svc := New("test-secret", time.Hour)

	unsigned := jwtlib.NewWithClaims(jwtlib.SigningMethodNone, Claims{
		UserID: 42,
		Role:   "admin",
		RegisteredClaims: jwtlib.RegisteredClaims{
			Issuer:    "paradise-api",
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	token, err := unsigned.SignedString(jwtlib.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
