// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gowarden Authors

package http

import (
	"context"

	"github.com/clevercastle/gowarden/internal/service"
	"github.com/clevercastle/gowarden/models"
)

// Function-field fakes for the service interfaces. Only the funcs a test
// sets are callable; the rest panic loudly if reached.

type fakeAccountService struct {
	preLoginFunc  func(ctx context.Context, req *models.PreLoginRequest) (*models.PreLoginResponse, error)
	registerFunc  func(ctx context.Context, req *models.RegisterRequest) error
	profileFunc   func(ctx context.Context, principal models.Principal) (*models.ProfileResponse, error)
	updateKdfFunc func(ctx context.Context, principal models.Principal, req *models.KdfRequest) error
}

func (f *fakeAccountService) PreLogin(ctx context.Context, req *models.PreLoginRequest) (*models.PreLoginResponse, error) {
	return f.preLoginFunc(ctx, req)
}

func (f *fakeAccountService) Register(ctx context.Context, req *models.RegisterRequest) error {
	return f.registerFunc(ctx, req)
}

func (f *fakeAccountService) Profile(ctx context.Context, principal models.Principal) (*models.ProfileResponse, error) {
	return f.profileFunc(ctx, principal)
}

func (f *fakeAccountService) UpdateKdf(ctx context.Context, principal models.Principal, req *models.KdfRequest) error {
	return f.updateKdfFunc(ctx, principal, req)
}

type fakeIdentityService struct {
	connectFunc func(ctx context.Context, req *models.ConnectRequest) (*models.LoginResponse, error)
}

func (f *fakeIdentityService) Connect(ctx context.Context, req *models.ConnectRequest) (*models.LoginResponse, error) {
	return f.connectFunc(ctx, req)
}

type fakeCipherService struct {
	createFunc            func(ctx context.Context, principal models.Principal, req *models.CipherRequest) (*models.CipherResponse, error)
	createSharedFunc      func(ctx context.Context, principal models.Principal, req *models.CipherShareRequest) (*models.CipherResponse, error)
	getFunc               func(ctx context.Context, principal models.Principal, id string) (*models.CipherResponse, error)
	updateFunc            func(ctx context.Context, principal models.Principal, id string, req *models.CipherRequest) (*models.CipherResponse, error)
	shareFunc             func(ctx context.Context, principal models.Principal, id string, req *models.CipherShareRequest) (*models.CipherResponse, error)
	deleteFunc            func(ctx context.Context, principal models.Principal, id string) error
	deleteManyFunc        func(ctx context.Context, principal models.Principal, req *models.CipherBulkDeleteRequest) error
	importFunc            func(ctx context.Context, principal models.Principal, req *models.ImportCiphersRequest) error
	purgeFunc             func(ctx context.Context, principal models.Principal, req *models.SensitiveActionRequest) error
	updateCollectionsFunc func(ctx context.Context, principal models.Principal, id string, req *models.CipherCollectionsRequest) error
	listOrgDetailsFunc    func(ctx context.Context, principal models.Principal, organizationID string) ([]models.CipherResponse, error)
}

func (f *fakeCipherService) Create(ctx context.Context, principal models.Principal, req *models.CipherRequest) (*models.CipherResponse, error) {
	return f.createFunc(ctx, principal, req)
}

func (f *fakeCipherService) CreateShared(ctx context.Context, principal models.Principal, req *models.CipherShareRequest) (*models.CipherResponse, error) {
	return f.createSharedFunc(ctx, principal, req)
}

func (f *fakeCipherService) Get(ctx context.Context, principal models.Principal, id string) (*models.CipherResponse, error) {
	return f.getFunc(ctx, principal, id)
}

func (f *fakeCipherService) Update(ctx context.Context, principal models.Principal, id string, req *models.CipherRequest) (*models.CipherResponse, error) {
	return f.updateFunc(ctx, principal, id, req)
}

func (f *fakeCipherService) Share(ctx context.Context, principal models.Principal, id string, req *models.CipherShareRequest) (*models.CipherResponse, error) {
	return f.shareFunc(ctx, principal, id, req)
}

func (f *fakeCipherService) Delete(ctx context.Context, principal models.Principal, id string) error {
	return f.deleteFunc(ctx, principal, id)
}

func (f *fakeCipherService) DeleteMany(ctx context.Context, principal models.Principal, req *models.CipherBulkDeleteRequest) error {
	return f.deleteManyFunc(ctx, principal, req)
}

func (f *fakeCipherService) Import(ctx context.Context, principal models.Principal, req *models.ImportCiphersRequest) error {
	return f.importFunc(ctx, principal, req)
}

func (f *fakeCipherService) Purge(ctx context.Context, principal models.Principal, req *models.SensitiveActionRequest) error {
	return f.purgeFunc(ctx, principal, req)
}

func (f *fakeCipherService) UpdateCollections(ctx context.Context, principal models.Principal, id string, req *models.CipherCollectionsRequest) error {
	return f.updateCollectionsFunc(ctx, principal, id, req)
}

func (f *fakeCipherService) ListOrganizationDetails(ctx context.Context, principal models.Principal, organizationID string) ([]models.CipherResponse, error) {
	return f.listOrgDetailsFunc(ctx, principal, organizationID)
}

type fakeFolderService struct {
	createFunc func(ctx context.Context, principal models.Principal, req *models.FolderRequest) (*models.FolderResponse, error)
	updateFunc func(ctx context.Context, principal models.Principal, id string, req *models.FolderRequest) (*models.FolderResponse, error)
	deleteFunc func(ctx context.Context, principal models.Principal, id string) error
	listFunc   func(ctx context.Context, principal models.Principal) ([]models.FolderResponse, error)
}

func (f *fakeFolderService) Create(ctx context.Context, principal models.Principal, req *models.FolderRequest) (*models.FolderResponse, error) {
	return f.createFunc(ctx, principal, req)
}

func (f *fakeFolderService) Update(ctx context.Context, principal models.Principal, id string, req *models.FolderRequest) (*models.FolderResponse, error) {
	return f.updateFunc(ctx, principal, id, req)
}

func (f *fakeFolderService) Delete(ctx context.Context, principal models.Principal, id string) error {
	return f.deleteFunc(ctx, principal, id)
}

func (f *fakeFolderService) List(ctx context.Context, principal models.Principal) ([]models.FolderResponse, error) {
	return f.listFunc(ctx, principal)
}

type fakeOrganizationService struct {
	createFunc              func(ctx context.Context, principal models.Principal, req *models.OrganizationCreateRequest) (*models.ProfileOrganizationResponse, error)
	getFunc                 func(ctx context.Context, principal models.Principal, id string) (*models.ProfileOrganizationResponse, error)
	updateFunc              func(ctx context.Context, principal models.Principal, id string, req *models.OrganizationUpdateRequest) (*models.ProfileOrganizationResponse, error)
	createCollectionFunc    func(ctx context.Context, principal models.Principal, organizationID string, req *models.CollectionRequest) (*models.CollectionResponse, error)
	listCollectionsFunc     func(ctx context.Context, principal models.Principal, organizationID string) ([]models.CollectionResponse, error)
	listUserCollectionsFunc func(ctx context.Context, principal models.Principal) ([]models.CollectionResponse, error)
	listMembersFunc         func(ctx context.Context, principal models.Principal, organizationID string) ([]models.OrganizationMemberResponse, error)
}

func (f *fakeOrganizationService) Create(ctx context.Context, principal models.Principal, req *models.OrganizationCreateRequest) (*models.ProfileOrganizationResponse, error) {
	return f.createFunc(ctx, principal, req)
}

func (f *fakeOrganizationService) Get(ctx context.Context, principal models.Principal, id string) (*models.ProfileOrganizationResponse, error) {
	return f.getFunc(ctx, principal, id)
}

func (f *fakeOrganizationService) Update(ctx context.Context, principal models.Principal, id string, req *models.OrganizationUpdateRequest) (*models.ProfileOrganizationResponse, error) {
	return f.updateFunc(ctx, principal, id, req)
}

func (f *fakeOrganizationService) CreateCollection(ctx context.Context, principal models.Principal, organizationID string, req *models.CollectionRequest) (*models.CollectionResponse, error) {
	return f.createCollectionFunc(ctx, principal, organizationID, req)
}

func (f *fakeOrganizationService) ListCollections(ctx context.Context, principal models.Principal, organizationID string) ([]models.CollectionResponse, error) {
	return f.listCollectionsFunc(ctx, principal, organizationID)
}

func (f *fakeOrganizationService) ListUserCollections(ctx context.Context, principal models.Principal) ([]models.CollectionResponse, error) {
	return f.listUserCollectionsFunc(ctx, principal)
}

func (f *fakeOrganizationService) ListMembers(ctx context.Context, principal models.Principal, organizationID string) ([]models.OrganizationMemberResponse, error) {
	return f.listMembersFunc(ctx, principal, organizationID)
}

type fakeSyncService struct {
	syncFunc func(ctx context.Context, principal models.Principal) (*models.SyncResponse, error)
}

func (f *fakeSyncService) Sync(ctx context.Context, principal models.Principal) (*models.SyncResponse, error) {
	return f.syncFunc(ctx, principal)
}

func newTestServices() *service.Services {
	return &service.Services{
		Account:       &fakeAccountService{},
		Identity:      &fakeIdentityService{},
		Ciphers:       &fakeCipherService{},
		Folders:       &fakeFolderService{},
		Organizations: &fakeOrganizationService{},
		Sync:          &fakeSyncService{},
	}
}
