package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the identity payload carried inside every issued token.
//
// It embeds [jwt.RegisteredClaims] for the standard claim set: the user ID is
// stored in "sub", and "iss", "iat" and "exp" are always populated by the
// issuer. Username is a private claim.
type Claims struct {
	jwt.RegisteredClaims

	// Username is the login of the token owner at the moment of issuance.
	Username string `json:"username"`
}

// UserID returns the subject claim, which holds the ID of the token owner.
func (c Claims) UserID() string {
	return c.Subject
}

// Token wraps a signed JWT together with the claims it was built from.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers or
// response bodies.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// Claims are the decoded (or freshly issued) identity claims.
	Claims Claims `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
