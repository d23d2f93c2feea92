// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gowarden Authors

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clevercastle/gowarden/internal/config"
	"github.com/clevercastle/gowarden/internal/crypto"
	"github.com/clevercastle/gowarden/internal/logger"
	"github.com/clevercastle/gowarden/models"
)

const testIterations = 5000

func testConfig() *config.StructuredConfig {
	cfg := &config.StructuredConfig{}
	cfg.App.TokenSignKey = "test-sign-key"
	cfg.App.TokenIssuer = "gowarden-test"
	cfg.App.TokenDuration = time.Hour
	cfg.App.KdfType = models.KdfTypePBKDF2SHA256
	cfg.App.KdfIterations = testIterations
	return cfg
}

func testUser(password string) *models.User {
	salt := "test-salt"
	return &models.User{
		ID:                 "user-1",
		SK:                 "user-1",
		Email:              "alice@example.com",
		Salt:               salt,
		MasterPasswordHash: crypto.HashPassword(password, salt, testIterations),
		Kdf:                models.KdfTypePBKDF2SHA256,
		KdfIterations:      testIterations,
		Key:                "encrypted-vault-key",
		SecurityStamp:      "stamp-1",
		Enabled:            true,
	}
}

// ─────────────────────────────── prelogin ───────────────────────────────

func TestAccountService_PreLogin_UnknownEmailGetsDefaults(t *testing.T) {
	repos := newTestRepos()
	svc := NewAccountService(repos.repositories(), testConfig(), logger.Nop())

	resp, err := svc.PreLogin(context.Background(), &models.PreLoginRequest{Email: "nobody@example.com"})
	require.NoError(t, err)
	assert.Equal(t, models.KdfTypePBKDF2SHA256, resp.Kdf)
	assert.Equal(t, testIterations, resp.KdfIterations)
}

func TestAccountService_PreLogin_KnownEmailGetsStoredParameters(t *testing.T) {
	user := testUser("proof")
	user.KdfIterations = 123456

	repos := newTestRepos()
	repos.users.findByEmailFunc = func(_ context.Context, email string) (*models.User, error) {
		assert.Equal(t, "alice@example.com", email)
		return user, nil
	}
	svc := NewAccountService(repos.repositories(), testConfig(), logger.Nop())

	resp, err := svc.PreLogin(context.Background(), &models.PreLoginRequest{Email: "Alice@Example.com"})
	require.NoError(t, err)
	assert.Equal(t, 123456, resp.KdfIterations)
}

// ─────────────────────────────── register ───────────────────────────────

func TestAccountService_Register_DuplicateEmail(t *testing.T) {
	repos := newTestRepos()
	repos.users.findByEmailFunc = func(_ context.Context, _ string) (*models.User, error) {
		return testUser("proof"), nil
	}
	svc := NewAccountService(repos.repositories(), testConfig(), logger.Nop())

	err := svc.Register(context.Background(), &models.RegisterRequest{
		Email:              "alice@example.com",
		MasterPasswordHash: "client-hash",
	})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestAccountService_Register_DomainNotAllowed(t *testing.T) {
	cfg := testConfig()
	cfg.App.SignupDomains = []string{"corp.example"}

	repos := newTestRepos()
	svc := NewAccountService(repos.repositories(), cfg, logger.Nop())

	err := svc.Register(context.Background(), &models.RegisterRequest{
		Email:              "alice@elsewhere.example",
		MasterPasswordHash: "client-hash",
	})
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestAccountService_Register_HashesServerSide(t *testing.T) {
	var saved *models.User
	repos := newTestRepos()
	repos.users.saveFunc = func(_ context.Context, user *models.User) error {
		saved = user
		return nil
	}
	svc := NewAccountService(repos.repositories(), testConfig(), logger.Nop())

	err := svc.Register(context.Background(), &models.RegisterRequest{
		Email:              "  Alice@Example.COM ",
		MasterPasswordHash: "client-hash",
		Key:                "encrypted-vault-key",
	})
	require.NoError(t, err)
	require.NotNil(t, saved)

	assert.Equal(t, "alice@example.com", saved.Email)
	assert.True(t, saved.Enabled)
	assert.NotEmpty(t, saved.Salt)
	assert.NotEmpty(t, saved.SecurityStamp)

	// The client-side hash must never be stored verbatim, but must verify.
	assert.NotEqual(t, "client-hash", saved.MasterPasswordHash)
	assert.True(t, crypto.VerifyPassword("client-hash", saved.Salt, saved.MasterPasswordHash, saved.KdfIterations))
}

// ─────────────────────────────── profile ───────────────────────────────

func TestAccountService_Profile_DropsDanglingMembership(t *testing.T) {
	repos := newTestRepos()
	repos.users.findByIDFunc = func(_ context.Context, _ string) (*models.User, error) {
		return testUser("proof"), nil
	}
	repos.memberships.listConfirmedByUserFunc = func(_ context.Context, _ string) ([]models.Membership, error) {
		return []models.Membership{
			{UserID: "user-1", OrganizationID: "org-1", Status: models.MembershipStatusConfirmed},
			{UserID: "user-1", OrganizationID: "org-gone", Status: models.MembershipStatusConfirmed},
		}, nil
	}
	repos.organizations.listByIDsFunc = func(_ context.Context, _ []string) ([]models.Organization, error) {
		return []models.Organization{{ID: "org-1", Name: "acme"}}, nil
	}
	svc := NewAccountService(repos.repositories(), testConfig(), logger.Nop())

	profile, err := svc.Profile(context.Background(), models.Principal{ID: "user-1"})
	require.NoError(t, err)
	require.Len(t, profile.Organizations, 1)
	assert.Equal(t, "org-1", profile.Organizations[0].ID)
}

// ─────────────────────────────── kdf rotation ───────────────────────────────

func TestAccountService_UpdateKdf_WrongPassword(t *testing.T) {
	repos := newTestRepos()
	repos.users.findByIDFunc = func(_ context.Context, _ string) (*models.User, error) {
		return testUser("correct-proof"), nil
	}
	repos.users.saveFunc = func(_ context.Context, _ *models.User) error {
		t.Fatal("a failed verification must not write")
		return nil
	}
	svc := NewAccountService(repos.repositories(), testConfig(), logger.Nop())

	err := svc.UpdateKdf(context.Background(), models.Principal{ID: "user-1"}, &models.KdfRequest{
		MasterPasswordHash:    "wrong-proof",
		NewMasterPasswordHash: "new-proof",
		Key:                   "new-key",
		KdfIterations:         testIterations,
	})
	assert.ErrorIs(t, err, ErrAuthentication)
}

// Two racing rotations both verify against the same stored state; the
// second write simply overwrites the first.
func TestAccountService_UpdateKdf_LastWriteWins(t *testing.T) {
	original := testUser("old-proof")

	var writes []*models.User
	repos := newTestRepos()
	repos.users.findByIDFunc = func(_ context.Context, _ string) (*models.User, error) {
		clone := *original
		return &clone, nil
	}
	repos.users.saveFunc = func(_ context.Context, user *models.User) error {
		writes = append(writes, user)
		return nil
	}
	svc := NewAccountService(repos.repositories(), testConfig(), logger.Nop())

	principal := models.Principal{ID: "user-1"}
	for _, newProof := range []string{"new-proof-a", "new-proof-b"} {
		err := svc.UpdateKdf(context.Background(), principal, &models.KdfRequest{
			MasterPasswordHash:    "old-proof",
			NewMasterPasswordHash: newProof,
			Key:                   "rotated-key",
			Kdf:                   models.KdfTypePBKDF2SHA256,
			KdfIterations:         testIterations,
		})
		require.NoError(t, err)
	}

	require.Len(t, writes, 2)
	last := writes[1]
	assert.True(t, crypto.VerifyPassword("new-proof-b", last.Salt, last.MasterPasswordHash, last.KdfIterations))
	assert.False(t, crypto.VerifyPassword("new-proof-a", last.Salt, last.MasterPasswordHash, last.KdfIterations))
	assert.NotEqual(t, original.SecurityStamp, last.SecurityStamp)
}
