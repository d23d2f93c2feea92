// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gowarden Authors

package utils

import "github.com/google/uuid"

// Entity id prefixes. Prefixing is a readability convention for operators
// scanning raw store items, not a structural requirement.
const (
	userIDPrefix         = "user-"
	organizationIDPrefix = "org-"
	collectionIDPrefix   = "collection-"
	cipherIDPrefix       = "cipher-"
	folderIDPrefix       = "folder-"
)

// NewUserID returns a fresh prefixed user id.
func NewUserID() string { return userIDPrefix + uuid.NewString() }

// NewOrganizationID returns a fresh prefixed organization id.
func NewOrganizationID() string { return organizationIDPrefix + uuid.NewString() }

// NewCollectionID returns a fresh prefixed collection id.
func NewCollectionID() string { return collectionIDPrefix + uuid.NewString() }

// NewCipherID returns a fresh prefixed cipher id.
func NewCipherID() string { return cipherIDPrefix + uuid.NewString() }

// NewFolderID returns a fresh prefixed folder id.
func NewFolderID() string { return folderIDPrefix + uuid.NewString() }

// NewSecurityStamp returns a fresh opaque security stamp.
func NewSecurityStamp() string { return uuid.NewString() }

// NewSalt returns a fresh per-user KDF salt.
func NewSalt() string { return uuid.NewString() }
