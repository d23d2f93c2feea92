// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gowarden Authors

package models

import "time"

// PreLoginResponse returns KDF parameters without revealing whether the
// account exists: unknown emails receive the system defaults.
type PreLoginResponse struct {
	Kdf           int `json:"kdf"`
	KdfIterations int `json:"kdfIterations"`
}

// LoginResponse is the bearer-token response of a successful password login.
type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	ExpiresIn    int64  `json:"expires_in"`
	TokenType    string `json:"token_type"`
	RefreshToken string `json:"refresh_token,omitempty"`

	Key                 string `json:"Key,omitempty"`
	PrivateKey          string `json:"PrivateKey,omitempty"`
	Kdf                 int    `json:"Kdf"`
	KdfIterations       int    `json:"KdfIterations"`
	ResetMasterPassword bool   `json:"ResetMasterPassword"`
	Scope               string `json:"scope"`
	UnofficialServer    bool   `json:"unofficialServer"`
}

// PasswordHistoryEntry is one previous password of a cipher. The password
// value is client-side ciphertext, like every other secret on the wire.
type PasswordHistoryEntry struct {
	Password     string    `json:"password"`
	LastUsedDate time.Time `json:"lastUsedDate"`
}

// CipherResponse is the wire shape of one cipher, with the payload variant
// decoded from the stored discriminant.
type CipherResponse struct {
	Object         string     `json:"object"`
	ID             string     `json:"id"`
	Type           CipherType `json:"type"`
	Name           string     `json:"name"`
	Notes          string     `json:"notes,omitempty"`
	FolderID       string     `json:"folderId,omitempty"`
	OrganizationID string     `json:"organizationId,omitempty"`
	Reprompt       int        `json:"reprompt"`

	Login      *LoginData      `json:"login,omitempty"`
	SecureNote *SecureNoteData `json:"secureNote,omitempty"`
	Card       *CardData       `json:"card,omitempty"`
	Identity   *IdentityData   `json:"identity,omitempty"`

	Fields          []Field                `json:"fields,omitempty"`
	PasswordHistory []PasswordHistoryEntry `json:"passwordHistory,omitempty"`

	Edit         bool      `json:"edit"`
	ViewPassword bool      `json:"viewPassword"`
	RevisionDate time.Time `json:"revisionDate"`
}

// FolderResponse is the wire shape of one folder.
type FolderResponse struct {
	Object       string    `json:"object"`
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	RevisionDate time.Time `json:"revisionDate"`
}

// CollectionResponse is the wire shape of one collection.
type CollectionResponse struct {
	Object         string `json:"object"`
	ID             string `json:"id"`
	OrganizationID string `json:"organizationId"`
	Name           string `json:"name"`
}

// ProfileOrganizationResponse is one confirmed membership as seen in the
// profile: the organization joined with the member's own grant.
type ProfileOrganizationResponse struct {
	Object    string           `json:"object"`
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Key       string           `json:"key,omitempty"`
	Status    MembershipStatus `json:"status"`
	Type      MembershipRole   `json:"type"`
	AccessAll bool             `json:"accessAll"`
	Enabled   bool             `json:"enabled"`
}

// ProfileResponse is the account profile, including confirmed organization
// memberships. The password hash and salt never appear here.
type ProfileResponse struct {
	Object        string                        `json:"object"`
	ID            string                        `json:"id"`
	Email         string                        `json:"email"`
	Name          string                        `json:"name,omitempty"`
	Key           string                        `json:"key,omitempty"`
	PrivateKey    string                        `json:"privateKey,omitempty"`
	SecurityStamp string                        `json:"securityStamp"`
	Organizations []ProfileOrganizationResponse `json:"organizations"`
}

// OrganizationMemberResponse is one membership as seen by an organization
// administrator, joined with the member's account.
type OrganizationMemberResponse struct {
	Object    string           `json:"object"`
	ID        string           `json:"id"`
	Email     string           `json:"email"`
	Name      string           `json:"name,omitempty"`
	Status    MembershipStatus `json:"status"`
	Type      MembershipRole   `json:"type"`
	AccessAll bool             `json:"accessAll"`
}

// SyncResponse is the aggregated, non-transactional snapshot of everything
// visible to one principal.
type SyncResponse struct {
	Object      string               `json:"object"`
	Profile     ProfileResponse      `json:"profile"`
	Folders     []FolderResponse     `json:"folders"`
	Ciphers     []CipherResponse     `json:"ciphers"`
	Collections []CollectionResponse `json:"collections"`
}

// ListResponse wraps a homogeneous list the way clients expect.
type ListResponse[T any] struct {
	Object string `json:"object"`
	Data   []T    `json:"data"`
}

// NewListResponse wraps data in the standard list envelope.
func NewListResponse[T any](data []T) ListResponse[T] {
	if data == nil {
		data = []T{}
	}
	return ListResponse[T]{Object: "list", Data: data}
}
