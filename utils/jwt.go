package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the role the token was issued for. AdminID is set only for
// admin tokens; kitchen and developer logins are shared credentials with no
// per-user identity.
type Claims struct {
	AdminID uint   `json:"adminId,omitempty"`
	Role    string `json:"role"`
	jwt.RegisteredClaims
}

func GenerateToken(adminID uint, role string, secret string, ttl time.Duration) (string, error) {
	claims := &Claims{
		AdminID: adminID,
		Role:    role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
