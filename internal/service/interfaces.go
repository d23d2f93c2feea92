// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gowarden Authors

package service

import (
	"context"

	"github.com/clevercastle/gowarden/models"
)

// AccountService manages vault accounts and their KDF parameters.
type AccountService interface {
	// PreLogin returns the KDF parameters for email. Unknown emails receive
	// the system defaults so account existence is not revealed.
	PreLogin(ctx context.Context, req *models.PreLoginRequest) (*models.PreLoginResponse, error)
	Register(ctx context.Context, req *models.RegisterRequest) error
	Profile(ctx context.Context, principal models.Principal) (*models.ProfileResponse, error)
	// UpdateKdf rotates the KDF parameters and the vault key after
	// re-verifying the current master password.
	UpdateKdf(ctx context.Context, principal models.Principal, req *models.KdfRequest) error
}

// IdentityService exchanges credentials for bearer tokens.
type IdentityService interface {
	Connect(ctx context.Context, req *models.ConnectRequest) (*models.LoginResponse, error)
}

// CipherService manages vault items across user and organization
// partitions.
type CipherService interface {
	Create(ctx context.Context, principal models.Principal, req *models.CipherRequest) (*models.CipherResponse, error)
	// CreateShared creates a cipher directly under organization ownership,
	// linked to at least one collection.
	CreateShared(ctx context.Context, principal models.Principal, req *models.CipherShareRequest) (*models.CipherResponse, error)
	Get(ctx context.Context, principal models.Principal, id string) (*models.CipherResponse, error)
	Update(ctx context.Context, principal models.Principal, id string, req *models.CipherRequest) (*models.CipherResponse, error)
	// Share moves a personal cipher to organization ownership.
	Share(ctx context.Context, principal models.Principal, id string, req *models.CipherShareRequest) (*models.CipherResponse, error)
	Delete(ctx context.Context, principal models.Principal, id string) error
	DeleteMany(ctx context.Context, principal models.Principal, req *models.CipherBulkDeleteRequest) error
	Import(ctx context.Context, principal models.Principal, req *models.ImportCiphersRequest) error
	// Purge removes every personal cipher and folder after re-verifying the
	// master password. Organization data is untouched.
	Purge(ctx context.Context, principal models.Principal, req *models.SensitiveActionRequest) error
	UpdateCollections(ctx context.Context, principal models.Principal, id string, req *models.CipherCollectionsRequest) error
	ListOrganizationDetails(ctx context.Context, principal models.Principal, organizationID string) ([]models.CipherResponse, error)
}

// FolderService manages per-user folders.
type FolderService interface {
	Create(ctx context.Context, principal models.Principal, req *models.FolderRequest) (*models.FolderResponse, error)
	Update(ctx context.Context, principal models.Principal, id string, req *models.FolderRequest) (*models.FolderResponse, error)
	Delete(ctx context.Context, principal models.Principal, id string) error
	List(ctx context.Context, principal models.Principal) ([]models.FolderResponse, error)
}

// OrganizationService manages organizations, memberships and collections.
type OrganizationService interface {
	Create(ctx context.Context, principal models.Principal, req *models.OrganizationCreateRequest) (*models.ProfileOrganizationResponse, error)
	Get(ctx context.Context, principal models.Principal, id string) (*models.ProfileOrganizationResponse, error)
	Update(ctx context.Context, principal models.Principal, id string, req *models.OrganizationUpdateRequest) (*models.ProfileOrganizationResponse, error)
	CreateCollection(ctx context.Context, principal models.Principal, organizationID string, req *models.CollectionRequest) (*models.CollectionResponse, error)
	ListCollections(ctx context.Context, principal models.Principal, organizationID string) ([]models.CollectionResponse, error)
	// ListUserCollections returns every collection the principal can see:
	// the union of access-all memberships and explicit grants.
	ListUserCollections(ctx context.Context, principal models.Principal) ([]models.CollectionResponse, error)
	ListMembers(ctx context.Context, principal models.Principal, organizationID string) ([]models.OrganizationMemberResponse, error)
}

// SyncService assembles the full vault snapshot of one principal.
type SyncService interface {
	Sync(ctx context.Context, principal models.Principal) (*models.SyncResponse, error)
}
