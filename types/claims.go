package types

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims represents the JWT claims carried by a session token.
// A token binds to the user's id plus whichever of email/phone the
// account was created with.
type Claims struct {
	UserID int64  `json:"id"`
	Email  string `json:"email,omitempty"`
	Phone  string `json:"phone,omitempty"`
	jwt.RegisteredClaims
}
