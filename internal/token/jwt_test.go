package token

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/lynossweets/storefront-server/internal/model"
)

func TestJWT_Roundtrip(t *testing.T) {
	j := NewJWT("secret")
	user := model.AuthUser{ID: 42, Email: "admin@lynossweets.com", Role: model.RoleAdmin}

	tokenString, err := j.Issue(user)
	require.NoError(t, err)

	claims, err := j.Parse(tokenString)
	require.NoError(t, err)
	require.Equal(t, int64(42), claims.UserID)
	require.Equal(t, "admin@lynossweets.com", claims.Email)
	require.Equal(t, model.RoleAdmin, claims.Role)
}

func TestJWT_WrongSecret(t *testing.T) {
	issuer := NewJWT("secret")
	verifier := NewJWT("another secret")

	tokenString, err := issuer.Issue(model.AuthUser{ID: 1, Email: "a@b.c", Role: model.RoleAdmin})
	require.NoError(t, err)

	_, err = verifier.Parse(tokenString)
	require.ErrorIs(t, err, model.ErrInvalidToken)
}

func TestJWT_Tampered(t *testing.T) {
	j := NewJWT("secret")

	tokenString, err := j.Issue(model.AuthUser{ID: 1, Email: "a@b.c", Role: model.RoleAdmin})
	require.NoError(t, err)

	// Flip one byte in the payload segment.
	raw := []byte(tokenString)
	mid := len(raw) / 2
	if raw[mid] == 'A' {
		raw[mid] = 'B'
	} else {
		raw[mid] = 'A'
	}

	_, err = j.Parse(string(raw))
	require.ErrorIs(t, err, model.ErrInvalidToken)
}

func TestJWT_Expired(t *testing.T) {
	j := &JWT{secretKey: "secret"}
	now := time.Now()
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now.Add(-8 * 24 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-24 * time.Hour)),
		},
		UserID: 1,
		Email:  "a@b.c",
		Role:   model.RoleAdmin,
	})
	tokenString, err := expired.SignedString([]byte(j.secretKey))
	require.NoError(t, err)

	_, err = j.Parse(tokenString)
	require.ErrorIs(t, err, model.ErrInvalidToken)
}

func TestJWT_WrongSigningMethod(t *testing.T) {
	j := &JWT{secretKey: "secret"}

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		UserID: 1,
	})
	tokenString, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = j.Parse(tokenString)
	require.ErrorIs(t, err, model.ErrInvalidToken)
}

func TestJWT_Malformed(t *testing.T) {
	j := NewJWT("secret")

	for _, tokenString := range []string{"", "garbage", "a.b", "a.b.c"} {
		_, err := j.Parse(tokenString)
		require.True(t, errors.Is(err, model.ErrInvalidToken), "token %q", tokenString)
	}
}
