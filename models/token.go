package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token wraps an admin JWT used by the platform to call the artifact
// endpoints.
//
// SignedString holds the compact serialized form (header.payload.signature)
// ready to be sent in the Authorization header. Subject is the parsed "sub"
// claim and names the caller (e.g. "platform").
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	SignedString string `json:"-"`

	Subject string `json:"-"`
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
