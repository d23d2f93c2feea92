// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gowarden Authors

package models

import "time"

// Collection is an organization-owned grouping of shared ciphers. The
// primary key is (ID, SK) with SK always equal to ID; a secondary index
// keyed by OrganizationID serves the per-organization listing.
type Collection struct {
	ID string `dynamodbav:"Id" json:"id"`
	SK string `dynamodbav:"Sk" json:"-"`

	OrganizationID string `dynamodbav:"OrganizationId" json:"organizationId"`
	Name           string `dynamodbav:"Name" json:"name"`

	CreatedAt time.Time `dynamodbav:"CreatedAt" json:"-"`
	UpdatedAt time.Time `dynamodbav:"UpdatedAt" json:"-"`
}

// CollectionCipher links a cipher to a collection, many-to-many. The primary
// key is (CipherID, CollectionID). The link set of a cipher is updated with
// full-replace semantics, never incrementally.
type CollectionCipher struct {
	CipherID     string `dynamodbav:"CipherId" json:"cipherId"`
	CollectionID string `dynamodbav:"CollectionId" json:"collectionId"`
}

// UserCollection grants a member without accessAll visibility into one
// collection. The primary key is (UserID, CollectionID).
type UserCollection struct {
	UserID       string `dynamodbav:"UserId" json:"userId"`
	CollectionID string `dynamodbav:"CollectionId" json:"collectionId"`

	ReadOnly bool `dynamodbav:"ReadOnly" json:"readOnly"`
}
