package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token wraps the signed session JWT.
//
// The token is opaque to the client. Its "jti" claim carries the session ID
// the server looks up on every request, and "exp" bounds the absolute
// lifetime of the session regardless of activity.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides access to the standard JWT claim set.
	jwt.RegisteredClaims

	// SignedString is the compact JWS form transmitted as the bearer value.
	SignedString string `json:"-"`

	// SessionID is a parsed copy of the "jti" claim.
	SessionID string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
