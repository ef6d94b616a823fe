// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload of an issued token. It carries the owner identity
// under "id" and the standard registered claims (only "iat" is set; tokens
// never expire).
type Claims struct {
	ID string `json:"id"`

	jwt.RegisteredClaims
}

// Token wraps a signed bearer token together with the identity it asserts.
type Token struct {
	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"token"`

	// UserID is the identity decoded from the "id" claim.
	// Excluded from JSON serialization.
	UserID string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
