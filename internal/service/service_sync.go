// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gowarden Authors

package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/clevercastle/gowarden/internal/logger"
	"github.com/clevercastle/gowarden/internal/store"
	"github.com/clevercastle/gowarden/models"
)

type syncService struct {
	repos *store.Repositories
	log   *logger.Logger
}

// NewSyncService returns the SyncService over repos.
func NewSyncService(repos *store.Repositories, log *logger.Logger) SyncService {
	log.Debug().Msg("sync service created")
	return &syncService{repos: repos, log: log}
}

// Sync assembles the caller's full vault snapshot. The reads fan out in
// parallel and the snapshot is not transactional: a write racing the sync
// may be reflected in some sections and not others, which clients tolerate
// by syncing again.
func (s *syncService) Sync(ctx context.Context, principal models.Principal) (*models.SyncResponse, error) {
	user, err := s.repos.Users.FindByID(ctx, principal.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: account %q", ErrNotFound, principal.ID)
	}

	memberships, err := s.repos.Memberships.ListConfirmedByUser(ctx, principal.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	var (
		organizations      []models.Organization
		folders            []models.Folder
		personalCiphers    []models.Cipher
		grantedCollections []models.Collection

		// Per-membership slots, one writer each, no locking needed.
		orgCiphers     = make([][]models.Cipher, len(memberships))
		orgCollections = make([][]models.Collection, len(memberships))
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		ids := make([]string, 0, len(memberships))
		for i := range memberships {
			ids = append(ids, memberships[i].OrganizationID)
		}
		var err error
		organizations, err = s.repos.Organizations.ListByIDs(gctx, ids)
		return err
	})

	g.Go(func() error {
		var err error
		folders, err = s.repos.Folders.ListByUser(gctx, principal.ID)
		return err
	})

	g.Go(func() error {
		var err error
		personalCiphers, err = s.repos.Ciphers.ListByOwner(gctx, principal.ID)
		return err
	})

	g.Go(func() error {
		grants, err := s.repos.UserCollections.ListByUser(gctx, principal.ID)
		if err != nil {
			return err
		}
		ids := make([]string, 0, len(grants))
		for _, grant := range grants {
			ids = append(ids, grant.CollectionID)
		}
		grantedCollections, err = s.repos.Collections.ListByIDs(gctx, ids)
		return err
	})

	for i := range memberships {
		i := i
		g.Go(func() error {
			var err error
			orgCiphers[i], err = s.repos.Ciphers.ListByOwner(gctx, memberships[i].OrganizationID)
			return err
		})
		if memberships[i].AccessAll {
			g.Go(func() error {
				var err error
				orgCollections[i], err = s.repos.Collections.ListByOrganization(gctx, memberships[i].OrganizationID)
				return err
			})
		}
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	return s.assemble(user, memberships, organizations, folders, personalCiphers, orgCiphers, orgCollections, grantedCollections)
}

func (s *syncService) assemble(
	user *models.User,
	memberships []models.Membership,
	organizations []models.Organization,
	folders []models.Folder,
	personalCiphers []models.Cipher,
	orgCiphers [][]models.Cipher,
	orgCollections [][]models.Collection,
	grantedCollections []models.Collection,
) (*models.SyncResponse, error) {
	orgByID := make(map[string]*models.Organization, len(organizations))
	for i := range organizations {
		orgByID[organizations[i].ID] = &organizations[i]
	}

	profileOrgs := make([]models.ProfileOrganizationResponse, 0, len(memberships))
	for i := range memberships {
		organization, ok := orgByID[memberships[i].OrganizationID]
		if !ok {
			s.log.Warn().
				Str("userID", user.ID).
				Str("organizationID", memberships[i].OrganizationID).
				Msg("membership points at a missing organization, dropping")
			continue
		}
		profileOrgs = append(profileOrgs, models.ToProfileOrganizationResponse(&memberships[i], organization))
	}

	folderResponses := make([]models.FolderResponse, 0, len(folders))
	for i := range folders {
		folderResponses = append(folderResponses, models.ToFolderResponse(&folders[i]))
	}

	cipherResponses := make([]models.CipherResponse, 0, len(personalCiphers))
	for i := range personalCiphers {
		resp, err := models.ToCipherResponse(&personalCiphers[i])
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInternal, err)
		}
		cipherResponses = append(cipherResponses, resp)
	}
	for _, ciphers := range orgCiphers {
		for i := range ciphers {
			resp, err := models.ToCipherResponse(&ciphers[i])
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrInternal, err)
			}
			cipherResponses = append(cipherResponses, resp)
		}
	}

	seen := make(map[string]bool)
	collectionResponses := []models.CollectionResponse{}
	for _, collections := range orgCollections {
		for i := range collections {
			if seen[collections[i].ID] {
				continue
			}
			seen[collections[i].ID] = true
			collectionResponses = append(collectionResponses, models.ToCollectionResponse(&collections[i]))
		}
	}
	for i := range grantedCollections {
		if seen[grantedCollections[i].ID] {
			continue
		}
		seen[grantedCollections[i].ID] = true
		collectionResponses = append(collectionResponses, models.ToCollectionResponse(&grantedCollections[i]))
	}

	return &models.SyncResponse{
		Object:      "sync",
		Profile:     models.ToProfileResponse(user, profileOrgs),
		Folders:     folderResponses,
		Ciphers:     cipherResponses,
		Collections: collectionResponses,
	}, nil
}
