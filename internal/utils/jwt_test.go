// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gowarden Authors

package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clevercastle/gowarden/models"
)

const (
	testSignKey = "test-sign-key"
	testIssuer  = "gowarden-test"
)

func TestGeneratePrincipalToken_RoundTrip(t *testing.T) {
	principal := models.Principal{ID: "user-1", Email: "alice@example.com"}

	token, err := GeneratePrincipalToken(testIssuer, principal, time.Hour, testSignKey)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := ParsePrincipalToken(token, testSignKey, testIssuer)
	require.NoError(t, err)
	assert.Equal(t, principal, parsed)
}

func TestGeneratePrincipalToken_RejectsInvalidParams(t *testing.T) {
	principal := models.Principal{ID: "user-1"}

	_, err := GeneratePrincipalToken("", principal, time.Hour, testSignKey)
	assert.Error(t, err)

	_, err = GeneratePrincipalToken(testIssuer, principal, time.Hour, "")
	assert.Error(t, err)

	_, err = GeneratePrincipalToken(testIssuer, models.Principal{}, time.Hour, testSignKey)
	assert.Error(t, err)

	_, err = GeneratePrincipalToken(testIssuer, principal, 0, testSignKey)
	assert.Error(t, err)
}

func TestParsePrincipalToken_RejectsWrongKeyAndIssuer(t *testing.T) {
	principal := models.Principal{ID: "user-1", Email: "alice@example.com"}
	token, err := GeneratePrincipalToken(testIssuer, principal, time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ParsePrincipalToken(token, "other-key", testIssuer)
	assert.Error(t, err)

	_, err = ParsePrincipalToken(token, testSignKey, "other-issuer")
	assert.Error(t, err)
}

func TestParsePrincipalToken_RejectsExpiredToken(t *testing.T) {
	principal := models.Principal{ID: "user-1"}
	token, err := GeneratePrincipalToken(testIssuer, principal, -time.Minute, testSignKey)
	require.NoError(t, err)

	_, err = ParsePrincipalToken(token, testSignKey, testIssuer)
	assert.Error(t, err)
}

func TestParseBearerToken(t *testing.T) {
	token, err := ParseBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = ParseBearerToken("")
	assert.Error(t, err)

	_, err = ParseBearerToken("Bearer")
	assert.Error(t, err)

	_, err = ParseBearerToken("Bearer ")
	assert.Error(t, err)
}
