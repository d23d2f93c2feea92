// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gowarden Authors

package store

import "github.com/clevercastle/gowarden/internal/logger"

// Repositories bundles every repository over one shared client.
type Repositories struct {
	Users             UserRepository
	Ciphers           CipherRepository
	Folders           FolderRepository
	Organizations     OrganizationRepository
	Memberships       MembershipRepository
	Collections       CollectionRepository
	CollectionCiphers CollectionCipherRepository
	UserCollections   UserCollectionRepository
}

// NewRepositories wires all repositories to the given store client.
func NewRepositories(client *Client, log *logger.Logger) *Repositories {
	return &Repositories{
		Users:             NewUserRepository(client, log),
		Ciphers:           NewCipherRepository(client, log),
		Folders:           NewFolderRepository(client, log),
		Organizations:     NewOrganizationRepository(client, log),
		Memberships:       NewMembershipRepository(client, log),
		Collections:       NewCollectionRepository(client, log),
		CollectionCiphers: NewCollectionCipherRepository(client, log),
		UserCollections:   NewUserCollectionRepository(client, log),
	}
}
