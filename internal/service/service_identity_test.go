// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gowarden Authors

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clevercastle/gowarden/internal/logger"
	"github.com/clevercastle/gowarden/internal/utils"
	"github.com/clevercastle/gowarden/models"
)

func connectRequest() *models.ConnectRequest {
	return &models.ConnectRequest{
		GrantType: "password",
		Username:  "alice@example.com",
		Password:  "proof",
		Scope:     "api offline_access",
	}
}

func TestIdentityService_Connect_UnsupportedGrant(t *testing.T) {
	svc := NewIdentityService(newTestRepos().repositories(), testConfig(), logger.Nop())

	for _, grant := range []string{"refresh_token", "client_credentials", ""} {
		req := connectRequest()
		req.GrantType = grant
		_, err := svc.Connect(context.Background(), req)
		assert.ErrorIs(t, err, ErrValidation, "grant type %q", grant)
	}
}

func TestIdentityService_Connect_WrongScope(t *testing.T) {
	svc := NewIdentityService(newTestRepos().repositories(), testConfig(), logger.Nop())

	req := connectRequest()
	req.Scope = "api"
	_, err := svc.Connect(context.Background(), req)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestIdentityService_Connect_UnknownUser(t *testing.T) {
	svc := NewIdentityService(newTestRepos().repositories(), testConfig(), logger.Nop())

	_, err := svc.Connect(context.Background(), connectRequest())
	assert.ErrorIs(t, err, ErrAuthentication)
}

func TestIdentityService_Connect_WrongPassword(t *testing.T) {
	repos := newTestRepos()
	repos.users.findByEmailFunc = func(_ context.Context, _ string) (*models.User, error) {
		return testUser("other-proof"), nil
	}
	svc := NewIdentityService(repos.repositories(), testConfig(), logger.Nop())

	_, err := svc.Connect(context.Background(), connectRequest())
	assert.ErrorIs(t, err, ErrAuthentication)
}

func TestIdentityService_Connect_DisabledAccount(t *testing.T) {
	user := testUser("proof")
	user.Enabled = false

	repos := newTestRepos()
	repos.users.findByEmailFunc = func(_ context.Context, _ string) (*models.User, error) {
		return user, nil
	}
	svc := NewIdentityService(repos.repositories(), testConfig(), logger.Nop())

	_, err := svc.Connect(context.Background(), connectRequest())
	assert.ErrorIs(t, err, ErrAuthentication)
}

func TestIdentityService_Connect_Success(t *testing.T) {
	cfg := testConfig()
	repos := newTestRepos()
	repos.users.findByEmailFunc = func(_ context.Context, email string) (*models.User, error) {
		assert.Equal(t, "alice@example.com", email)
		return testUser("proof"), nil
	}
	svc := NewIdentityService(repos.repositories(), cfg, logger.Nop())

	resp, err := svc.Connect(context.Background(), connectRequest())
	require.NoError(t, err)

	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, int64(3600), resp.ExpiresIn)
	assert.Equal(t, "api offline_access", resp.Scope)
	assert.Equal(t, "encrypted-vault-key", resp.Key)
	assert.True(t, resp.UnofficialServer)

	principal, err := utils.ParsePrincipalToken(resp.AccessToken, cfg.App.TokenSignKey, cfg.App.TokenIssuer)
	require.NoError(t, err)
	assert.Equal(t, "user-1", principal.ID)
	assert.Equal(t, "alice@example.com", principal.Email)
}
