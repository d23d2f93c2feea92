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

func confirmedMembership(role models.MembershipRole, accessAll bool) *models.Membership {
	return &models.Membership{
		UserID:         "user-1",
		OrganizationID: "org-1",
		Role:           role,
		Status:         models.MembershipStatusConfirmed,
		AccessAll:      accessAll,
	}
}

func TestOrganizationService_Create_WritesAllThreeRows(t *testing.T) {
	var organization *models.Organization
	var membership *models.Membership
	var collection *models.Collection

	repos := newTestRepos()
	repos.organizations.saveFunc = func(_ context.Context, o *models.Organization) error {
		organization = o
		return nil
	}
	repos.memberships.saveFunc = func(_ context.Context, m *models.Membership) error {
		membership = m
		return nil
	}
	repos.collections.saveFunc = func(_ context.Context, c *models.Collection) error {
		collection = c
		return nil
	}
	svc := NewOrganizationService(repos.repositories(), logger.Nop())

	resp, err := svc.Create(context.Background(), models.Principal{ID: "user-1"}, &models.OrganizationCreateRequest{
		Name:           "acme",
		BillingEmail:   "billing@acme.example",
		CollectionName: "default",
		Key:            "org-key-for-user-1",
	})
	require.NoError(t, err)

	require.NotNil(t, organization)
	require.NotNil(t, membership)
	require.NotNil(t, collection)

	assert.Equal(t, organization.ID, membership.OrganizationID)
	assert.Equal(t, organization.ID, collection.OrganizationID)
	assert.Equal(t, "user-1", membership.UserID)
	assert.Equal(t, models.MembershipRoleOwner, membership.Role)
	assert.Equal(t, models.MembershipStatusConfirmed, membership.Status)
	assert.True(t, membership.AccessAll)
	assert.Equal(t, "org-key-for-user-1", membership.Key)
	assert.Equal(t, "default", collection.Name)

	assert.Equal(t, organization.ID, resp.ID)
	assert.Equal(t, models.MembershipRoleOwner, resp.Type)
}

func TestOrganizationService_Update_RequiresAdministrativeRole(t *testing.T) {
	repos := newTestRepos()
	repos.memberships.findConfirmedFunc = func(_ context.Context, _, _ string) (*models.Membership, error) {
		return confirmedMembership(models.MembershipRoleUser, false), nil
	}
	svc := NewOrganizationService(repos.repositories(), logger.Nop())

	_, err := svc.Update(context.Background(), models.Principal{ID: "user-1"}, "org-1", &models.OrganizationUpdateRequest{Name: "renamed"})
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestOrganizationService_Get_NonMemberRefused(t *testing.T) {
	svc := NewOrganizationService(newTestRepos().repositories(), logger.Nop())

	_, err := svc.Get(context.Background(), models.Principal{ID: "user-1"}, "org-1")
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestOrganizationService_CreateCollection_AdminOnly(t *testing.T) {
	var saved *models.Collection
	repos := newTestRepos()
	repos.memberships.findConfirmedFunc = func(_ context.Context, _, _ string) (*models.Membership, error) {
		return confirmedMembership(models.MembershipRoleAdmin, false), nil
	}
	repos.collections.saveFunc = func(_ context.Context, c *models.Collection) error {
		saved = c
		return nil
	}
	svc := NewOrganizationService(repos.repositories(), logger.Nop())

	resp, err := svc.CreateCollection(context.Background(), models.Principal{ID: "user-1"}, "org-1", &models.CollectionRequest{Name: "engineering"})
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "org-1", saved.OrganizationID)
	assert.Equal(t, "collection", resp.Object)
}

func TestOrganizationService_ListUserCollections_UnionsAndDeduplicates(t *testing.T) {
	repos := newTestRepos()
	repos.memberships.listConfirmedByUserFunc = func(_ context.Context, _ string) ([]models.Membership, error) {
		return []models.Membership{*confirmedMembership(models.MembershipRoleUser, true)}, nil
	}
	repos.collections.listByOrganizationFunc = func(_ context.Context, organizationID string) ([]models.Collection, error) {
		return []models.Collection{
			{ID: "collection-1", OrganizationID: organizationID},
			{ID: "collection-2", OrganizationID: organizationID},
		}, nil
	}
	repos.userCollections.listByUserFunc = func(_ context.Context, _ string) ([]models.UserCollection, error) {
		// collection-2 is also explicitly granted; it must not double up.
		return []models.UserCollection{
			{UserID: "user-1", CollectionID: "collection-2"},
			{UserID: "user-1", CollectionID: "collection-3"},
		}, nil
	}
	repos.collections.listByIDsFunc = func(_ context.Context, ids []string) ([]models.Collection, error) {
		assert.Equal(t, []string{"collection-3"}, ids)
		return []models.Collection{{ID: "collection-3", OrganizationID: "org-2"}}, nil
	}
	svc := NewOrganizationService(repos.repositories(), logger.Nop())

	collections, err := svc.ListUserCollections(context.Background(), models.Principal{ID: "user-1"})
	require.NoError(t, err)

	ids := make([]string, 0, len(collections))
	for _, c := range collections {
		ids = append(ids, c.ID)
	}
	assert.ElementsMatch(t, []string{"collection-1", "collection-2", "collection-3"}, ids)
}

func TestOrganizationService_ListMembers_DropsDanglingAccount(t *testing.T) {
	repos := newTestRepos()
	repos.memberships.findConfirmedFunc = func(_ context.Context, _, _ string) (*models.Membership, error) {
		return confirmedMembership(models.MembershipRoleOwner, true), nil
	}
	repos.memberships.listByOrganizationFunc = func(_ context.Context, _ string) ([]models.Membership, error) {
		return []models.Membership{
			{UserID: "user-1", OrganizationID: "org-1", Status: models.MembershipStatusConfirmed},
			{UserID: "user-gone", OrganizationID: "org-1", Status: models.MembershipStatusConfirmed},
		}, nil
	}
	repos.users.listByIDsFunc = func(_ context.Context, _ []string) ([]models.User, error) {
		return []models.User{{ID: "user-1", Email: "alice@example.com"}}, nil
	}
	svc := NewOrganizationService(repos.repositories(), logger.Nop())

	members, err := svc.ListMembers(context.Background(), models.Principal{ID: "user-1"}, "org-1")
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "alice@example.com", members[0].Email)
}
