// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gowarden Authors

package store

import (
	"context"

	"github.com/clevercastle/gowarden/models"
)

// UserRepository persists vault accounts. Lookups scoped by id or by the
// unique email index.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	ListByIDs(ctx context.Context, ids []string) ([]models.User, error)
	Save(ctx context.Context, user *models.User) error
}

// CipherRepository persists vault items. Every access names the owning
// partition (user or organization), so cross-tenant reads are impossible
// at this layer.
type CipherRepository interface {
	FindByID(ctx context.Context, ownerID, id string) (*models.Cipher, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.Cipher, error)
	Save(ctx context.Context, cipher *models.Cipher) error
	Delete(ctx context.Context, ownerID, id string) error
}

// FolderRepository persists per-user folders, partitioned by user id.
type FolderRepository interface {
	FindByID(ctx context.Context, userID, id string) (*models.Folder, error)
	ListByUser(ctx context.Context, userID string) ([]models.Folder, error)
	Save(ctx context.Context, folder *models.Folder) error
	Delete(ctx context.Context, userID, id string) error
}

// OrganizationRepository persists organizations.
type OrganizationRepository interface {
	FindByID(ctx context.Context, id string) (*models.Organization, error)
	ListByIDs(ctx context.Context, ids []string) ([]models.Organization, error)
	Save(ctx context.Context, organization *models.Organization) error
}

// MembershipRepository persists the user-to-organization join rows.
type MembershipRepository interface {
	// FindConfirmed resolves the confirmed membership of userID in
	// organizationID, nil when there is none. More than one confirmed row
	// for the pair is reported as ErrDuplicateMembership.
	FindConfirmed(ctx context.Context, userID, organizationID string) (*models.Membership, error)
	ListConfirmedByUser(ctx context.Context, userID string) ([]models.Membership, error)
	ListByOrganization(ctx context.Context, organizationID string) ([]models.Membership, error)
	Save(ctx context.Context, membership *models.Membership) error
}

// CollectionRepository persists organization collections.
type CollectionRepository interface {
	FindByID(ctx context.Context, id string) (*models.Collection, error)
	ListByOrganization(ctx context.Context, organizationID string) ([]models.Collection, error)
	ListByIDs(ctx context.Context, ids []string) ([]models.Collection, error)
	Save(ctx context.Context, collection *models.Collection) error
}

// CollectionCipherRepository persists the cipher-to-collection link rows.
type CollectionCipherRepository interface {
	ListByCipher(ctx context.Context, cipherID string) ([]models.CollectionCipher, error)
	// Replace swaps the full link set of cipherID for collectionIDs:
	// stale links are removed, missing ones written. Replace with an empty
	// list unlinks the cipher everywhere.
	Replace(ctx context.Context, cipherID string, collectionIDs []string) error
}

// UserCollectionRepository persists per-user collection grants.
type UserCollectionRepository interface {
	ListByUser(ctx context.Context, userID string) ([]models.UserCollection, error)
	Save(ctx context.Context, grant *models.UserCollection) error
}
