// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gowarden Authors

// Package service holds the business logic of the vault: credential
// verification, tenant scoping, ownership transitions and the sync
// snapshot. Services speak entity and wire models and depend on the store
// only through its repository interfaces.
package service

import (
	"github.com/clevercastle/gowarden/internal/config"
	"github.com/clevercastle/gowarden/internal/logger"
	"github.com/clevercastle/gowarden/internal/store"
)

// Services bundles every service over one repository set.
type Services struct {
	Account       AccountService
	Identity      IdentityService
	Ciphers       CipherService
	Folders       FolderService
	Organizations OrganizationService
	Sync          SyncService
}

// NewServices wires all services to the given repositories and
// configuration.
func NewServices(repos *store.Repositories, cfg *config.StructuredConfig, log *logger.Logger) *Services {
	return &Services{
		Account:       NewAccountService(repos, cfg, log),
		Identity:      NewIdentityService(repos, cfg, log),
		Ciphers:       NewCipherService(repos, log),
		Folders:       NewFolderService(repos, log),
		Organizations: NewOrganizationService(repos, log),
		Sync:          NewSyncService(repos, log),
	}
}
