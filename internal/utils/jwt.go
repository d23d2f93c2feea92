// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gowarden Authors

// Package utils holds small helpers shared across layers: JWT issuance and
// verification, entity id generation, and context keys.
package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/clevercastle/gowarden/models"
	"github.com/golang-jwt/jwt/v5"
)

// PrincipalClaims are the claims carried by every access token: the
// registered set plus the vault identity claims.
type PrincipalClaims struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// GeneratePrincipalToken issues a signed HMAC-SHA256 access token for the
// given principal with issuer, expiry, and the id/email claims.
//
// Returns an error when issuer, signKey, or the principal id is empty, or
// when tokenDuration is zero.
func GeneratePrincipalToken(issuer string, principal models.Principal, tokenDuration time.Duration, signKey string) (string, error) {
	if issuer == "" || signKey == "" || principal.ID == "" || tokenDuration == 0 {
		return "", errors.New("invalid params for generating access token")
	}

	now := time.Now()
	claims := &PrincipalClaims{
		ID:    principal.ID,
		Email: principal.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   principal.ID,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error signing access token: %w", err)
	}

	return signed, nil
}

// ParsePrincipalToken verifies signature, issuer, and expiry of a raw token
// string and returns the embedded principal.
//
// A token with an empty "id" claim is rejected here, before any service
// code runs.
func ParsePrincipalToken(tokenString, signKey, issuer string) (models.Principal, error) {
	claims := &PrincipalClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, jwt.WithIssuer(issuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.Principal{}, fmt.Errorf("error validating access token: %w", err)
	}

	if claims.ID == "" {
		return models.Principal{}, errors.New("access token carries no id claim")
	}

	return models.Principal{ID: claims.ID, Email: claims.Email}, nil
}

// ParseBearerToken extracts the raw token from an Authorization header value
// of the form "Bearer <token>".
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
