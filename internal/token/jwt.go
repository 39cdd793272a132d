package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/lynossweets/storefront-server/internal/model"
)

// Claims represents session token claims with embedded identity.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64      `json:"user_id"`
	Email  string     `json:"email"`
	Role   model.Role `json:"role"`
}

// JWT implements TokenManager backed by symmetric HMAC.
type JWT struct {
	secretKey string
}

// NewJWT creates a new JWT token manager with the provided secret key.
func NewJWT(secretKey string) model.TokenManager {
	return &JWT{secretKey: secretKey}
}

// sessionTTL is how long an issued token stays cryptographically valid.
// Account deactivation and role changes still take effect immediately
// because every request re-reads the user row.
const sessionTTL = 7 * 24 * time.Hour

// Issue creates a signed session token for the user.
func (j *JWT) Issue(user model.AuthUser) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionTTL)),
		},
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	})

	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// Parse validates a session token and extracts its claims. Signature
// mismatch, malformed structure and expiry all collapse into
// model.ErrInvalidToken so that callers cannot tell them apart.
func (j *JWT) Parse(tokenString string) (model.SessionClaims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, model.ErrInvalidToken
		}
		return []byte(j.secretKey), nil
	})
	if err != nil || !token.Valid {
		return model.SessionClaims{}, model.ErrInvalidToken
	}

	return model.SessionClaims{
		UserID: claims.UserID,
		Email:  claims.Email,
		Role:   claims.Role,
	}, nil
}
