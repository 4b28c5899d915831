package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token wraps a JWT session token of a dashboard operator.
//
// It embeds [jwt.Token] for signing and parsing and [jwt.RegisteredClaims]
// for access to the standard claim set. AdminID caches the parsed "sub" claim.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// AdminID is the operator identifier extracted from the "sub" claim.
	AdminID uuid.UUID `json:"-"`

	// Login is the operator login, carried in the "name" claim.
	Login string `json:"name,omitempty"`
}

// GetAdminID parses the "sub" claim as a UUID.
func (t *Token) GetAdminID() (uuid.UUID, error) {
	subject, err := t.GetSubject()
	if err != nil {
		return uuid.Nil, fmt.Errorf("error extracting AdminID from token: %w", err)
	}

	adminID, err := uuid.Parse(subject)
	if err != nil {
		return uuid.Nil, fmt.Errorf("error converting AdminID from token to uuid: %w", err)
	}

	return adminID, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
