package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTypeBearer is the token type label returned with every session token.
const TokenTypeBearer = "bearer"

// Token is a signed session token.
//
// It embeds [jwt.Token] for claim inspection. SignedString holds the compact
// header.payload.signature form that is handed to the caller.
type Token struct {
	// Token is the underlying JWT. Excluded from JSON serialization because
	// only the compact string form is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// Subject is the "sub" claim: the authenticated user's handle.
	Subject string `json:"-"`

	// ExpiresAt is the absolute expiry taken from the "exp" claim.
	ExpiresAt time.Time `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}

// AuthenticationResponse is returned by a successful login.
type AuthenticationResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
