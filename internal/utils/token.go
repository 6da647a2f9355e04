package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL - срок жизни токена доступа.
const TokenTTL = 3 * 24 * time.Hour

// CreateToken выпускает подписанный JWT для пользователя с указанной ролью.
func CreateToken(userId, role, secret string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  userId,
		"role": role,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(TokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
