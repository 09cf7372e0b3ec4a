package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims do token emitido externamente; o subject é o ID do usuário
type Claims struct {
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

func (c *Claims) UserID() string {
	return c.Subject
}
