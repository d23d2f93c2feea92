// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gowarden Authors

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/clevercastle/gowarden/internal/logger"
	"github.com/clevercastle/gowarden/internal/store"
	"github.com/clevercastle/gowarden/internal/utils"
	"github.com/clevercastle/gowarden/models"
)

type folderService struct {
	repos *store.Repositories
	log   *logger.Logger
}

// NewFolderService returns the FolderService over repos. Folders are
// strictly personal; another user's folder is indistinguishable from a
// missing one.
func NewFolderService(repos *store.Repositories, log *logger.Logger) FolderService {
	log.Debug().Msg("folder service created")
	return &folderService{repos: repos, log: log}
}

func (s *folderService) Create(ctx context.Context, principal models.Principal, req *models.FolderRequest) (*models.FolderResponse, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: folder name is required", ErrValidation)
	}

	now := time.Now().UTC()
	folder := &models.Folder{
		ID:        utils.NewFolderID(),
		UserID:    principal.ID,
		Name:      req.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repos.Folders.Save(ctx, folder); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	resp := models.ToFolderResponse(folder)
	return &resp, nil
}

func (s *folderService) Update(ctx context.Context, principal models.Principal, id string, req *models.FolderRequest) (*models.FolderResponse, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: folder name is required", ErrValidation)
	}

	folder, err := s.repos.Folders.FindByID(ctx, principal.ID, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}
	if folder == nil {
		return nil, fmt.Errorf("%w: folder %q", ErrNotFound, id)
	}

	folder.Name = req.Name
	folder.UpdatedAt = time.Now().UTC()
	if err := s.repos.Folders.Save(ctx, folder); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	resp := models.ToFolderResponse(folder)
	return &resp, nil
}

// Delete removes a folder and detaches the personal ciphers filed under it.
// The ciphers themselves survive.
func (s *folderService) Delete(ctx context.Context, principal models.Principal, id string) error {
	folder, err := s.repos.Folders.FindByID(ctx, principal.ID, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}
	if folder == nil {
		return fmt.Errorf("%w: folder %q", ErrNotFound, id)
	}

	ciphers, err := s.repos.Ciphers.ListByOwner(ctx, principal.ID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}
	for i := range ciphers {
		if ciphers[i].FolderID != id {
			continue
		}
		ciphers[i].FolderID = ""
		ciphers[i].UpdatedAt = time.Now().UTC()
		if err := s.repos.Ciphers.Save(ctx, &ciphers[i]); err != nil {
			return fmt.Errorf("%w: %w", ErrInternal, err)
		}
	}

	if err := s.repos.Folders.Delete(ctx, principal.ID, id); err != nil {
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}
	return nil
}

func (s *folderService) List(ctx context.Context, principal models.Principal) ([]models.FolderResponse, error) {
	folders, err := s.repos.Folders.ListByUser(ctx, principal.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	responses := make([]models.FolderResponse, 0, len(folders))
	for i := range folders {
		responses = append(responses, models.ToFolderResponse(&folders[i]))
	}
	return responses, nil
}
