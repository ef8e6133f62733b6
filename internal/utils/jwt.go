package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the identity and role payload embedded in session tokens.
// Roles are trusted as of issuance time; a role change or account deletion
// is not reflected until the token expires and the user logs in again.
type Claims struct {
	UserID     uuid.UUID
	Email      string
	IsAdmin    bool
	IsBusiness bool
}

type jwtCustomClaims struct {
	UserID     string `json:"user_id"`
	Email      string `json:"email"`
	IsAdmin    bool   `json:"is_admin"`
	IsBusiness bool   `json:"is_business"`
	jwt.RegisteredClaims
}

// GenerateToken creates a signed JWT carrying the user's identity and role flags.
func GenerateToken(secret string, claims Claims, ttl time.Duration) (string, error) {
	payload := &jwtCustomClaims{
		UserID:     claims.UserID.String(),
		Email:      claims.Email,
		IsAdmin:    claims.IsAdmin,
		IsBusiness: claims.IsBusiness,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claims.UserID.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, payload)
	return token.SignedString([]byte(secret))
}

// ParseToken validates signature and expiry and returns the embedded claims.
func ParseToken(secret, tokenString string) (Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwtCustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return Claims{}, err
	}

	payload, ok := token.Claims.(*jwtCustomClaims)
	if !ok || !token.Valid {
		return Claims{}, jwt.ErrTokenInvalidClaims
	}

	userID, err := uuid.Parse(payload.UserID)
	if err != nil {
		return Claims{}, jwt.ErrTokenInvalidClaims
	}

	return Claims{
		UserID:     userID,
		Email:      payload.Email,
		IsAdmin:    payload.IsAdmin,
		IsBusiness: payload.IsBusiness,
	}, nil
}
