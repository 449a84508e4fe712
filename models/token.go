// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the claim set carried by every access token.
//
// Only "username" and "exp" are populated; the remaining registered claims
// are left empty so the wire format stays {"username": ..., "exp": ...}.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Token wraps a signed access token together with its decoded claims.
type Token struct {
	// Token is the underlying JWT object. It is nil for tokens that were
	// only received as strings and not yet parsed.
	*jwt.Token `json:"-"`

	// Claims holds the decoded claim set.
	Claims Claims `json:"-"`

	// SignedString is the compact JWS form (header.payload.signature).
	SignedString string `json:"-"`
}

// String returns the compact serialized token.
func (t *Token) String() string {
	return t.SignedString
}
