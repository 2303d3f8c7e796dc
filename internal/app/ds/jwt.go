package ds

import (
	"github.com/golang-jwt/jwt"
)

type JWTClaims struct {
	jwt.StandardClaims
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}
