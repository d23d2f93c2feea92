// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gowarden Authors

package service

import (
	"context"

	"github.com/clevercastle/gowarden/internal/store"
	"github.com/clevercastle/gowarden/models"
)

// Function-field fakes for every repository. A nil field behaves as an
// empty store, so tests only wire what they exercise.

type fakeUserRepo struct {
	findByIDFunc    func(ctx context.Context, id string) (*models.User, error)
	findByEmailFunc func(ctx context.Context, email string) (*models.User, error)
	listByIDsFunc   func(ctx context.Context, ids []string) ([]models.User, error)
	saveFunc        func(ctx context.Context, user *models.User) error
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id string) (*models.User, error) {
	if f.findByIDFunc == nil {
		return nil, nil
	}
	return f.findByIDFunc(ctx, id)
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.findByEmailFunc == nil {
		return nil, nil
	}
	return f.findByEmailFunc(ctx, email)
}

func (f *fakeUserRepo) ListByIDs(ctx context.Context, ids []string) ([]models.User, error) {
	if f.listByIDsFunc == nil {
		return nil, nil
	}
	return f.listByIDsFunc(ctx, ids)
}

func (f *fakeUserRepo) Save(ctx context.Context, user *models.User) error {
	if f.saveFunc == nil {
		return nil
	}
	return f.saveFunc(ctx, user)
}

type fakeCipherRepo struct {
	findByIDFunc    func(ctx context.Context, ownerID, id string) (*models.Cipher, error)
	listByOwnerFunc func(ctx context.Context, ownerID string) ([]models.Cipher, error)
	saveFunc        func(ctx context.Context, cipher *models.Cipher) error
	deleteFunc      func(ctx context.Context, ownerID, id string) error
}

func (f *fakeCipherRepo) FindByID(ctx context.Context, ownerID, id string) (*models.Cipher, error) {
	if f.findByIDFunc == nil {
		return nil, nil
	}
	return f.findByIDFunc(ctx, ownerID, id)
}

func (f *fakeCipherRepo) ListByOwner(ctx context.Context, ownerID string) ([]models.Cipher, error) {
	if f.listByOwnerFunc == nil {
		return nil, nil
	}
	return f.listByOwnerFunc(ctx, ownerID)
}

// Save derives the partition key from the owner fields the way the real
// repository does, so assertions on saved ciphers see the stored shape.
func (f *fakeCipherRepo) Save(ctx context.Context, cipher *models.Cipher) error {
	owner, err := cipher.Owner()
	if err != nil {
		return err
	}
	cipher.OwnerID = owner

	if f.saveFunc == nil {
		return nil
	}
	return f.saveFunc(ctx, cipher)
}

func (f *fakeCipherRepo) Delete(ctx context.Context, ownerID, id string) error {
	if f.deleteFunc == nil {
		return nil
	}
	return f.deleteFunc(ctx, ownerID, id)
}

type fakeFolderRepo struct {
	findByIDFunc   func(ctx context.Context, userID, id string) (*models.Folder, error)
	listByUserFunc func(ctx context.Context, userID string) ([]models.Folder, error)
	saveFunc       func(ctx context.Context, folder *models.Folder) error
	deleteFunc     func(ctx context.Context, userID, id string) error
}

func (f *fakeFolderRepo) FindByID(ctx context.Context, userID, id string) (*models.Folder, error) {
	if f.findByIDFunc == nil {
		return nil, nil
	}
	return f.findByIDFunc(ctx, userID, id)
}

func (f *fakeFolderRepo) ListByUser(ctx context.Context, userID string) ([]models.Folder, error) {
	if f.listByUserFunc == nil {
		return nil, nil
	}
	return f.listByUserFunc(ctx, userID)
}

func (f *fakeFolderRepo) Save(ctx context.Context, folder *models.Folder) error {
	if f.saveFunc == nil {
		return nil
	}
	return f.saveFunc(ctx, folder)
}

func (f *fakeFolderRepo) Delete(ctx context.Context, userID, id string) error {
	if f.deleteFunc == nil {
		return nil
	}
	return f.deleteFunc(ctx, userID, id)
}

type fakeOrganizationRepo struct {
	findByIDFunc  func(ctx context.Context, id string) (*models.Organization, error)
	listByIDsFunc func(ctx context.Context, ids []string) ([]models.Organization, error)
	saveFunc      func(ctx context.Context, organization *models.Organization) error
}

func (f *fakeOrganizationRepo) FindByID(ctx context.Context, id string) (*models.Organization, error) {
	if f.findByIDFunc == nil {
		return nil, nil
	}
	return f.findByIDFunc(ctx, id)
}

func (f *fakeOrganizationRepo) ListByIDs(ctx context.Context, ids []string) ([]models.Organization, error) {
	if f.listByIDsFunc == nil {
		return nil, nil
	}
	return f.listByIDsFunc(ctx, ids)
}

func (f *fakeOrganizationRepo) Save(ctx context.Context, organization *models.Organization) error {
	if f.saveFunc == nil {
		return nil
	}
	return f.saveFunc(ctx, organization)
}

type fakeMembershipRepo struct {
	findConfirmedFunc       func(ctx context.Context, userID, organizationID string) (*models.Membership, error)
	listConfirmedByUserFunc func(ctx context.Context, userID string) ([]models.Membership, error)
	listByOrganizationFunc  func(ctx context.Context, organizationID string) ([]models.Membership, error)
	saveFunc                func(ctx context.Context, membership *models.Membership) error
}

func (f *fakeMembershipRepo) FindConfirmed(ctx context.Context, userID, organizationID string) (*models.Membership, error) {
	if f.findConfirmedFunc == nil {
		return nil, nil
	}
	return f.findConfirmedFunc(ctx, userID, organizationID)
}

func (f *fakeMembershipRepo) ListConfirmedByUser(ctx context.Context, userID string) ([]models.Membership, error) {
	if f.listConfirmedByUserFunc == nil {
		return nil, nil
	}
	return f.listConfirmedByUserFunc(ctx, userID)
}

func (f *fakeMembershipRepo) ListByOrganization(ctx context.Context, organizationID string) ([]models.Membership, error) {
	if f.listByOrganizationFunc == nil {
		return nil, nil
	}
	return f.listByOrganizationFunc(ctx, organizationID)
}

func (f *fakeMembershipRepo) Save(ctx context.Context, membership *models.Membership) error {
	if f.saveFunc == nil {
		return nil
	}
	return f.saveFunc(ctx, membership)
}

type fakeCollectionRepo struct {
	findByIDFunc           func(ctx context.Context, id string) (*models.Collection, error)
	listByOrganizationFunc func(ctx context.Context, organizationID string) ([]models.Collection, error)
	listByIDsFunc          func(ctx context.Context, ids []string) ([]models.Collection, error)
	saveFunc               func(ctx context.Context, collection *models.Collection) error
}

func (f *fakeCollectionRepo) FindByID(ctx context.Context, id string) (*models.Collection, error) {
	if f.findByIDFunc == nil {
		return nil, nil
	}
	return f.findByIDFunc(ctx, id)
}

func (f *fakeCollectionRepo) ListByOrganization(ctx context.Context, organizationID string) ([]models.Collection, error) {
	if f.listByOrganizationFunc == nil {
		return nil, nil
	}
	return f.listByOrganizationFunc(ctx, organizationID)
}

func (f *fakeCollectionRepo) ListByIDs(ctx context.Context, ids []string) ([]models.Collection, error) {
	if f.listByIDsFunc == nil {
		return nil, nil
	}
	return f.listByIDsFunc(ctx, ids)
}

func (f *fakeCollectionRepo) Save(ctx context.Context, collection *models.Collection) error {
	if f.saveFunc == nil {
		return nil
	}
	return f.saveFunc(ctx, collection)
}

type fakeCollectionCipherRepo struct {
	listByCipherFunc func(ctx context.Context, cipherID string) ([]models.CollectionCipher, error)
	replaceFunc      func(ctx context.Context, cipherID string, collectionIDs []string) error
}

func (f *fakeCollectionCipherRepo) ListByCipher(ctx context.Context, cipherID string) ([]models.CollectionCipher, error) {
	if f.listByCipherFunc == nil {
		return nil, nil
	}
	return f.listByCipherFunc(ctx, cipherID)
}

func (f *fakeCollectionCipherRepo) Replace(ctx context.Context, cipherID string, collectionIDs []string) error {
	if f.replaceFunc == nil {
		return nil
	}
	return f.replaceFunc(ctx, cipherID, collectionIDs)
}

type fakeUserCollectionRepo struct {
	listByUserFunc func(ctx context.Context, userID string) ([]models.UserCollection, error)
	saveFunc       func(ctx context.Context, grant *models.UserCollection) error
}

func (f *fakeUserCollectionRepo) ListByUser(ctx context.Context, userID string) ([]models.UserCollection, error) {
	if f.listByUserFunc == nil {
		return nil, nil
	}
	return f.listByUserFunc(ctx, userID)
}

func (f *fakeUserCollectionRepo) Save(ctx context.Context, grant *models.UserCollection) error {
	if f.saveFunc == nil {
		return nil
	}
	return f.saveFunc(ctx, grant)
}

// testRepos bundles one fake of each repository behind a ready
// *store.Repositories.
type testRepos struct {
	users             *fakeUserRepo
	ciphers           *fakeCipherRepo
	folders           *fakeFolderRepo
	organizations     *fakeOrganizationRepo
	memberships       *fakeMembershipRepo
	collections       *fakeCollectionRepo
	collectionCiphers *fakeCollectionCipherRepo
	userCollections   *fakeUserCollectionRepo
}

func newTestRepos() *testRepos {
	return &testRepos{
		users:             &fakeUserRepo{},
		ciphers:           &fakeCipherRepo{},
		folders:           &fakeFolderRepo{},
		organizations:     &fakeOrganizationRepo{},
		memberships:       &fakeMembershipRepo{},
		collections:       &fakeCollectionRepo{},
		collectionCiphers: &fakeCollectionCipherRepo{},
		userCollections:   &fakeUserCollectionRepo{},
	}
}

func (t *testRepos) repositories() *store.Repositories {
	return &store.Repositories{
		Users:             t.users,
		Ciphers:           t.ciphers,
		Folders:           t.folders,
		Organizations:     t.organizations,
		Memberships:       t.memberships,
		Collections:       t.collections,
		CollectionCiphers: t.collectionCiphers,
		UserCollections:   t.userCollections,
	}
}
