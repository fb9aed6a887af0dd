// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is display-only information decoded from a session token.
type Claims struct {
	Subject   string
	ExpiresAt *time.Time
}

// DecodeClaims reads the subject and expiry of a JWT without verifying its
// signature. The token is opaque to the rest of the client; this is only used
// to show who is signed in. ok is false when the token is not a JWT.
func DecodeClaims(token string) (Claims, bool) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return Claims{}, false
	}

	var c Claims
	if sub, err := parsed.Claims.GetSubject(); err == nil {
		c.Subject = sub
	}
	if exp, err := parsed.Claims.GetExpirationTime(); err == nil && exp != nil {
		t := exp.Time
		c.ExpiresAt = &t
	}
	return c, true
}
