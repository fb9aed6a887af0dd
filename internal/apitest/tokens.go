// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package apitest

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const tokenTTL = time.Hour

var errRevoked = errors.New("token has been revoked")

func (s *Server) issueTokenLocked(username string) string {
	now := s.now()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		ID:        time.Now().Format(time.RFC3339Nano),
	}).SignedString([]byte(signingKey))
	if err != nil {
		panic(err)
	}
	return token
}

func (s *Server) parseTokenLocked(raw string) (string, error) {
	if s.revoked[raw] {
		return "", errRevoked
	}

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		return []byte(signingKey), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil {
		return "", err
	}
	if _, ok := s.users[claims.Subject]; !ok {
		return "", errors.New("user not found")
	}
	return claims.Subject, nil
}
