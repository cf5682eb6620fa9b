package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims identifica o cliente autenticado por token
type Claims struct {
	Client string `json:"client"`
	jwt.RegisteredClaims
}
