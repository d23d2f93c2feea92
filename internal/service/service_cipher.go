// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gowarden Authors

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/clevercastle/gowarden/internal/crypto"
	"github.com/clevercastle/gowarden/internal/logger"
	"github.com/clevercastle/gowarden/internal/store"
	"github.com/clevercastle/gowarden/internal/utils"
	"github.com/clevercastle/gowarden/models"
)

type cipherService struct {
	repos *store.Repositories
	log   *logger.Logger
}

// NewCipherService returns the CipherService over repos.
func NewCipherService(repos *store.Repositories, log *logger.Logger) CipherService {
	log.Debug().Msg("cipher service created")
	return &cipherService{repos: repos, log: log}
}

func (s *cipherService) Create(ctx context.Context, principal models.Principal, req *models.CipherRequest) (*models.CipherResponse, error) {
	if req.OrganizationID != "" {
		return nil, fmt.Errorf("%w: organization ciphers are created through the shared create operation", ErrValidation)
	}
	if err := s.checkFolder(ctx, principal, req.FolderID); err != nil {
		return nil, err
	}

	cipher, err := s.newCipher(principal, req)
	if err != nil {
		return nil, err
	}
	cipher.OwnerUserID = principal.ID

	if err := s.repos.Ciphers.Save(ctx, cipher); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}
	return s.toResponse(cipher)
}

func (s *cipherService) CreateShared(ctx context.Context, principal models.Principal, req *models.CipherShareRequest) (*models.CipherResponse, error) {
	organizationID := req.Cipher.OrganizationID
	if organizationID == "" {
		return nil, fmt.Errorf("%w: organization id is required", ErrValidation)
	}
	if len(req.CollectionIDs) == 0 {
		return nil, fmt.Errorf("%w: at least one collection id is required", ErrValidation)
	}
	if err := s.checkMembership(ctx, principal, organizationID); err != nil {
		return nil, err
	}
	if err := s.checkCollections(ctx, organizationID, req.CollectionIDs); err != nil {
		return nil, err
	}

	cipher, err := s.newCipher(principal, &req.Cipher)
	if err != nil {
		return nil, err
	}
	cipher.OwnerOrganizationID = organizationID

	if err := s.repos.Ciphers.Save(ctx, cipher); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}
	if err := s.repos.CollectionCiphers.Replace(ctx, cipher.ID, req.CollectionIDs); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}
	return s.toResponse(cipher)
}

func (s *cipherService) Get(ctx context.Context, principal models.Principal, id string) (*models.CipherResponse, error) {
	cipher, _, err := s.findVisible(ctx, principal, id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(cipher)
}

// Update overwrites the mutable attributes of a visible cipher. For an
// organization cipher the organization id in the request must agree with
// the stored owner; moving a cipher between owners goes through Share. On a
// personal cipher a request organization id is ignored. Stored password
// history is dropped on overwrite because the client resubmits it when it
// wants it kept.
func (s *cipherService) Update(ctx context.Context, principal models.Principal, id string, req *models.CipherRequest) (*models.CipherResponse, error) {
	cipher, _, err := s.findVisible(ctx, principal, id)
	if err != nil {
		return nil, err
	}
	if cipher.OwnerOrganizationID != "" && req.OrganizationID != cipher.OwnerOrganizationID {
		return nil, ErrOrganizationMismatch
	}
	if cipher.OwnerUserID != "" {
		if err := s.checkFolder(ctx, principal, req.FolderID); err != nil {
			return nil, err
		}
	}

	if err := s.applyRequest(cipher, req); err != nil {
		return nil, err
	}

	if err := s.repos.Ciphers.Save(ctx, cipher); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}
	return s.toResponse(cipher)
}

// Share moves a personal cipher to organization ownership: the item is
// written under the organization partition, linked to the requested
// collections, and only then removed from the user partition. A crash
// between the writes leaves the cipher readable under both owners until the
// share is retried.
func (s *cipherService) Share(ctx context.Context, principal models.Principal, id string, req *models.CipherShareRequest) (*models.CipherResponse, error) {
	organizationID := req.Cipher.OrganizationID
	if organizationID == "" {
		return nil, fmt.Errorf("%w: organization id is required", ErrValidation)
	}
	if len(req.CollectionIDs) == 0 {
		return nil, fmt.Errorf("%w: at least one collection id is required", ErrValidation)
	}

	cipher, err := s.repos.Ciphers.FindByID(ctx, principal.ID, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}
	if cipher == nil {
		return nil, fmt.Errorf("%w: cipher %q", ErrNotFound, id)
	}

	if err := s.checkMembership(ctx, principal, organizationID); err != nil {
		return nil, err
	}
	if err := s.checkCollections(ctx, organizationID, req.CollectionIDs); err != nil {
		return nil, err
	}

	if err := s.applyRequest(cipher, &req.Cipher); err != nil {
		return nil, err
	}
	cipher.OwnerUserID = ""
	cipher.OwnerOrganizationID = organizationID
	cipher.FolderID = ""

	if err := s.repos.Ciphers.Save(ctx, cipher); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}
	if err := s.repos.CollectionCiphers.Replace(ctx, cipher.ID, req.CollectionIDs); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}
	if err := s.repos.Ciphers.Delete(ctx, principal.ID, id); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	s.log.Info().Str("cipherID", id).Str("organizationID", organizationID).Msg("cipher shared to organization")
	return s.toResponse(cipher)
}

// Delete removes one visible cipher. Personal ciphers need no further
// checks. Organization ciphers require the Owner or Admin role, or an
// access-all membership.
func (s *cipherService) Delete(ctx context.Context, principal models.Principal, id string) error {
	cipher, membership, err := s.findVisible(ctx, principal, id)
	if err != nil {
		return err
	}

	if cipher.OwnerUserID != "" {
		if err := s.repos.Ciphers.Delete(ctx, principal.ID, id); err != nil {
			return fmt.Errorf("%w: %w", ErrInternal, err)
		}
		return nil
	}

	if !canManageOrganizationCiphers(membership) {
		return fmt.Errorf("%w: deleting organization ciphers requires an administrative role", ErrPermissionDenied)
	}
	if err := s.repos.Ciphers.Delete(ctx, cipher.OwnerOrganizationID, id); err != nil {
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}
	if err := s.repos.CollectionCiphers.Replace(ctx, id, nil); err != nil {
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}
	return nil
}

func (s *cipherService) DeleteMany(ctx context.Context, principal models.Principal, req *models.CipherBulkDeleteRequest) error {
	for _, id := range req.IDs {
		if err := s.Delete(ctx, principal, id); err != nil {
			return err
		}
	}
	return nil
}

// Import replays a client-side export as personal cipher creations. The
// whole batch is validated before the first write so a malformed entry
// cannot leave a half-imported vault behind it.
func (s *cipherService) Import(ctx context.Context, principal models.Principal, req *models.ImportCiphersRequest) error {
	ciphers := make([]*models.Cipher, 0, len(req.Ciphers))
	for i := range req.Ciphers {
		if req.Ciphers[i].OrganizationID != "" {
			return fmt.Errorf("%w: import accepts personal ciphers only", ErrValidation)
		}
		cipher, err := s.newCipher(principal, &req.Ciphers[i])
		if err != nil {
			return err
		}
		cipher.OwnerUserID = principal.ID
		cipher.FolderID = ""
		ciphers = append(ciphers, cipher)
	}

	for _, cipher := range ciphers {
		if err := s.repos.Ciphers.Save(ctx, cipher); err != nil {
			return fmt.Errorf("%w: %w", ErrInternal, err)
		}
	}

	s.log.Info().Str("userID", principal.ID).Int("count", len(ciphers)).Msg("ciphers imported")
	return nil
}

func (s *cipherService) Purge(ctx context.Context, principal models.Principal, req *models.SensitiveActionRequest) error {
	user, err := s.repos.Users.FindByID(ctx, principal.ID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}
	if user == nil {
		return fmt.Errorf("%w: account %q", ErrNotFound, principal.ID)
	}
	if !crypto.VerifyPassword(req.MasterPasswordHash, user.Salt, user.MasterPasswordHash, user.KdfIterations) {
		return ErrAuthentication
	}

	ciphers, err := s.repos.Ciphers.ListByOwner(ctx, principal.ID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}
	for i := range ciphers {
		if err := s.repos.Ciphers.Delete(ctx, principal.ID, ciphers[i].ID); err != nil {
			return fmt.Errorf("%w: %w", ErrInternal, err)
		}
	}

	folders, err := s.repos.Folders.ListByUser(ctx, principal.ID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}
	for i := range folders {
		if err := s.repos.Folders.Delete(ctx, principal.ID, folders[i].ID); err != nil {
			return fmt.Errorf("%w: %w", ErrInternal, err)
		}
	}

	s.log.Info().Str("userID", principal.ID).Int("ciphers", len(ciphers)).Int("folders", len(folders)).Msg("vault purged")
	return nil
}

func (s *cipherService) UpdateCollections(ctx context.Context, principal models.Principal, id string, req *models.CipherCollectionsRequest) error {
	cipher, _, err := s.findVisible(ctx, principal, id)
	if err != nil {
		return err
	}
	if cipher.OwnerOrganizationID == "" {
		return fmt.Errorf("%w: only organization ciphers belong to collections", ErrValidation)
	}
	if err := s.checkCollections(ctx, cipher.OwnerOrganizationID, req.CollectionIDs); err != nil {
		return err
	}

	if err := s.repos.CollectionCiphers.Replace(ctx, id, req.CollectionIDs); err != nil {
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}
	return nil
}

func (s *cipherService) ListOrganizationDetails(ctx context.Context, principal models.Principal, organizationID string) ([]models.CipherResponse, error) {
	if organizationID == "" {
		return nil, fmt.Errorf("%w: organization id is required", ErrValidation)
	}
	if err := s.checkMembership(ctx, principal, organizationID); err != nil {
		return nil, err
	}

	ciphers, err := s.repos.Ciphers.ListByOwner(ctx, organizationID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	responses := make([]models.CipherResponse, 0, len(ciphers))
	for i := range ciphers {
		resp, err := models.ToCipherResponse(&ciphers[i])
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInternal, err)
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

// findVisible resolves a cipher id within the caller's visibility: the
// personal partition first, then each organization the caller is a
// confirmed member of. The membership that granted visibility is returned
// alongside organization ciphers.
func (s *cipherService) findVisible(ctx context.Context, principal models.Principal, id string) (*models.Cipher, *models.Membership, error) {
	cipher, err := s.repos.Ciphers.FindByID(ctx, principal.ID, id)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}
	if cipher != nil {
		return cipher, nil, nil
	}

	memberships, err := s.repos.Memberships.ListConfirmedByUser(ctx, principal.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}
	for i := range memberships {
		cipher, err := s.repos.Ciphers.FindByID(ctx, memberships[i].OrganizationID, id)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %w", ErrInternal, err)
		}
		if cipher != nil {
			return cipher, &memberships[i], nil
		}
	}

	return nil, nil, fmt.Errorf("%w: cipher %q", ErrNotFound, id)
}

// newCipher builds a fresh cipher from req without an owner; the caller
// sets exactly one owner reference before saving.
func (s *cipherService) newCipher(principal models.Principal, req *models.CipherRequest) (*models.Cipher, error) {
	now := time.Now().UTC()
	cipher := &models.Cipher{
		ID:        utils.NewCipherID(),
		CreatedBy: principal.ID,
		CreatedAt: now,
	}
	if err := s.applyRequest(cipher, req); err != nil {
		return nil, err
	}
	return cipher, nil
}

// applyRequest overwrites the mutable attributes of cipher from req and
// stamps the revision time.
func (s *cipherService) applyRequest(cipher *models.Cipher, req *models.CipherRequest) error {
	if !req.Type.Valid() {
		return fmt.Errorf("%w: unknown cipher type %d", ErrValidation, req.Type)
	}
	if req.Name == "" {
		return fmt.Errorf("%w: cipher name is required", ErrValidation)
	}

	data, err := models.EncodeCipherPayload(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	fields, err := models.EncodeFields(req.Fields)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}

	cipher.Type = req.Type
	cipher.Name = req.Name
	cipher.Notes = req.Notes
	cipher.FolderID = req.FolderID
	cipher.Reprompt = req.Reprompt
	cipher.Data = data
	cipher.Fields = fields
	cipher.PasswordHistory = ""
	cipher.UpdatedAt = time.Now().UTC()
	return nil
}

func (s *cipherService) toResponse(cipher *models.Cipher) (*models.CipherResponse, error) {
	resp, err := models.ToCipherResponse(cipher)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}
	return &resp, nil
}

// checkFolder verifies that a referenced folder exists and belongs to the
// caller. An empty id means no folder and always passes.
func (s *cipherService) checkFolder(ctx context.Context, principal models.Principal, folderID string) error {
	if folderID == "" {
		return nil
	}
	folder, err := s.repos.Folders.FindByID(ctx, principal.ID, folderID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}
	if folder == nil {
		return fmt.Errorf("%w: folder %q does not exist", ErrValidation, folderID)
	}
	return nil
}

// checkMembership verifies a confirmed membership of the caller in
// organizationID.
func (s *cipherService) checkMembership(ctx context.Context, principal models.Principal, organizationID string) error {
	membership, err := s.repos.Memberships.FindConfirmed(ctx, principal.ID, organizationID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}
	if membership == nil {
		return fmt.Errorf("%w: not a confirmed member of organization %q", ErrPermissionDenied, organizationID)
	}
	return nil
}

// checkCollections verifies that every id names an existing collection of
// organizationID.
func (s *cipherService) checkCollections(ctx context.Context, organizationID string, collectionIDs []string) error {
	if len(collectionIDs) == 0 {
		return nil
	}

	collections, err := s.repos.Collections.ListByIDs(ctx, collectionIDs)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}

	byID := make(map[string]*models.Collection, len(collections))
	for i := range collections {
		byID[collections[i].ID] = &collections[i]
	}
	for _, id := range collectionIDs {
		collection, ok := byID[id]
		if !ok {
			return fmt.Errorf("%w: collection %q does not exist", ErrValidation, id)
		}
		if collection.OrganizationID != organizationID {
			return fmt.Errorf("%w: collection %q belongs to another organization", ErrValidation, id)
		}
	}
	return nil
}

// canManageOrganizationCiphers reports whether membership carries the
// administrative rights needed to delete organization ciphers. A nil
// membership can only happen for personal ciphers and never reaches here.
func canManageOrganizationCiphers(membership *models.Membership) bool {
	if membership == nil {
		return false
	}
	if membership.AccessAll {
		return true
	}
	return membership.Role == models.MembershipRoleOwner || membership.Role == models.MembershipRoleAdmin
}
