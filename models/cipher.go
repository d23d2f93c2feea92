// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gowarden Authors

package models

import (
	"errors"
	"time"
)

// CipherType discriminates the payload variant carried by a cipher.
type CipherType int

const (
	CipherTypeLogin      CipherType = 1
	CipherTypeSecureNote CipherType = 2
	CipherTypeCard       CipherType = 3
	CipherTypeIdentity   CipherType = 4
)

// Valid reports whether t is one of the four known discriminants.
// Unknown values must be rejected, never defaulted.
func (t CipherType) Valid() bool {
	switch t {
	case CipherTypeLogin, CipherTypeSecureNote, CipherTypeCard, CipherTypeIdentity:
		return true
	}
	return false
}

// ErrAmbiguousOwner is returned by [Cipher.Owner] when the owner invariant
// (exactly one of OwnerUserID / OwnerOrganizationID set) does not hold.
var ErrAmbiguousOwner = errors.New("cipher must be owned by exactly one of user or organization")

// Cipher is one encrypted vault item. The primary key is (OwnerID, ID):
// OwnerID is the id of whichever owner holds the cipher, so all items of a
// user or an organization share a partition.
//
// Invariant: exactly one of OwnerUserID and OwnerOrganizationID is set.
// Sharing moves the item from the user partition to the organization
// partition as two independent writes.
type Cipher struct {
	ID      string `dynamodbav:"Id" json:"id"`
	OwnerID string `dynamodbav:"OwnerId" json:"-"`

	OwnerUserID         string `dynamodbav:"OwnerUserId" json:"-"`
	OwnerOrganizationID string `dynamodbav:"OwnerOrganizationId" json:"organizationId"`

	Type CipherType `dynamodbav:"Type" json:"type"`

	// Data is the serialized payload variant selected by Type. Its content is
	// ciphertext produced client-side; the server never inspects it beyond
	// the variant envelope.
	Data string `dynamodbav:"Data" json:"-"`

	Name  string `dynamodbav:"Name" json:"name"`
	Notes string `dynamodbav:"Notes" json:"notes,omitempty"`

	// FolderID is a weak reference to a folder owned by the same user.
	FolderID string `dynamodbav:"FolderId" json:"folderId,omitempty"`

	// Fields is the serialized list of custom fields, empty when none.
	Fields string `dynamodbav:"Fields" json:"-"`

	// PasswordHistory is the serialized history of previous passwords; it is
	// cleared on every update.
	PasswordHistory string `dynamodbav:"PasswordHistory" json:"-"`

	Reprompt int `dynamodbav:"Reprompt" json:"reprompt"`

	// CreatedBy records the user who originally created the cipher. It is
	// provenance only and plays no part in ownership checks.
	CreatedBy string `dynamodbav:"CreatedBy" json:"-"`

	CreatedAt time.Time `dynamodbav:"CreatedAt" json:"-"`
	UpdatedAt time.Time `dynamodbav:"UpdatedAt" json:"revisionDate"`
}

// Owner returns the id of the single owner scope and enforces the ownership
// invariant: exactly one of OwnerUserID / OwnerOrganizationID must be set.
func (c *Cipher) Owner() (string, error) {
	switch {
	case c.OwnerUserID != "" && c.OwnerOrganizationID != "":
		return "", ErrAmbiguousOwner
	case c.OwnerUserID != "":
		return c.OwnerUserID, nil
	case c.OwnerOrganizationID != "":
		return c.OwnerOrganizationID, nil
	default:
		return "", ErrAmbiguousOwner
	}
}
