// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gowarden Authors

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clevercastle/gowarden/internal/logger"
	"github.com/clevercastle/gowarden/models"
)

func TestSyncService_Sync_UnknownAccount(t *testing.T) {
	svc := NewSyncService(newTestRepos().repositories(), logger.Nop())

	_, err := svc.Sync(context.Background(), models.Principal{ID: "user-missing"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSyncService_Sync_AggregatesAllSections(t *testing.T) {
	repos := newTestRepos()
	repos.users.findByIDFunc = func(_ context.Context, _ string) (*models.User, error) {
		return testUser("proof"), nil
	}
	repos.memberships.listConfirmedByUserFunc = func(_ context.Context, _ string) ([]models.Membership, error) {
		return []models.Membership{{
			UserID:         "user-1",
			OrganizationID: "org-1",
			Status:         models.MembershipStatusConfirmed,
			AccessAll:      true,
		}}, nil
	}
	repos.organizations.listByIDsFunc = func(_ context.Context, _ []string) ([]models.Organization, error) {
		return []models.Organization{{ID: "org-1", Name: "acme"}}, nil
	}
	repos.folders.listByUserFunc = func(_ context.Context, _ string) ([]models.Folder, error) {
		return []models.Folder{{ID: "folder-1", UserID: "user-1", Name: "work"}}, nil
	}
	repos.ciphers.listByOwnerFunc = func(_ context.Context, ownerID string) ([]models.Cipher, error) {
		switch ownerID {
		case "user-1":
			return []models.Cipher{*storedLoginCipher("user-1", "")}, nil
		case "org-1":
			shared := storedLoginCipher("", "org-1")
			shared.ID = "cipher-2"
			return []models.Cipher{*shared}, nil
		default:
			return nil, nil
		}
	}
	repos.collections.listByOrganizationFunc = func(_ context.Context, _ string) ([]models.Collection, error) {
		return []models.Collection{{ID: "collection-1", OrganizationID: "org-1", Name: "default"}}, nil
	}
	svc := NewSyncService(repos.repositories(), logger.Nop())

	resp, err := svc.Sync(context.Background(), models.Principal{ID: "user-1"})
	require.NoError(t, err)

	assert.Equal(t, "sync", resp.Object)
	assert.Equal(t, "user-1", resp.Profile.ID)
	require.Len(t, resp.Profile.Organizations, 1)
	assert.Equal(t, "org-1", resp.Profile.Organizations[0].ID)

	require.Len(t, resp.Folders, 1)
	require.Len(t, resp.Collections, 1)
	require.Len(t, resp.Ciphers, 2)

	ids := []string{resp.Ciphers[0].ID, resp.Ciphers[1].ID}
	assert.ElementsMatch(t, []string{"cipher-1", "cipher-2"}, ids)
}

func TestSyncService_Sync_GrantedCollectionsIncluded(t *testing.T) {
	repos := newTestRepos()
	repos.users.findByIDFunc = func(_ context.Context, _ string) (*models.User, error) {
		return testUser("proof"), nil
	}
	repos.memberships.listConfirmedByUserFunc = func(_ context.Context, _ string) ([]models.Membership, error) {
		// Member without access-all: collections come from grants only.
		return []models.Membership{{
			UserID:         "user-1",
			OrganizationID: "org-1",
			Status:         models.MembershipStatusConfirmed,
		}}, nil
	}
	repos.organizations.listByIDsFunc = func(_ context.Context, _ []string) ([]models.Organization, error) {
		return []models.Organization{{ID: "org-1", Name: "acme"}}, nil
	}
	repos.userCollections.listByUserFunc = func(_ context.Context, _ string) ([]models.UserCollection, error) {
		return []models.UserCollection{{UserID: "user-1", CollectionID: "collection-1"}}, nil
	}
	repos.collections.listByIDsFunc = func(_ context.Context, ids []string) ([]models.Collection, error) {
		assert.Equal(t, []string{"collection-1"}, ids)
		return []models.Collection{{ID: "collection-1", OrganizationID: "org-1"}}, nil
	}
	svc := NewSyncService(repos.repositories(), logger.Nop())

	resp, err := svc.Sync(context.Background(), models.Principal{ID: "user-1"})
	require.NoError(t, err)
	require.Len(t, resp.Collections, 1)
	assert.Equal(t, "collection-1", resp.Collections[0].ID)
}
