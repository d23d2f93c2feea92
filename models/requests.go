// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gowarden Authors

package models

// Field is one custom field attached to a cipher; values are ciphertext.
type Field struct {
	Type  int    `json:"type"`
	Name  string `json:"name,omitempty"`
	Value string `json:"value,omitempty"`
}

// CipherRequest creates or overwrites a cipher. Exactly one payload variant
// pointer is expected to be non-nil, matching Type.
type CipherRequest struct {
	Type           CipherType `json:"type"`
	Name           string     `json:"name"`
	Notes          string     `json:"notes,omitempty"`
	FolderID       string     `json:"folderId,omitempty"`
	OrganizationID string     `json:"organizationId,omitempty"`
	Reprompt       int        `json:"reprompt,omitempty"`

	Login      *LoginData      `json:"login,omitempty"`
	SecureNote *SecureNoteData `json:"secureNote,omitempty"`
	Card       *CardData       `json:"card,omitempty"`
	Identity   *IdentityData   `json:"identity,omitempty"`

	Fields []Field `json:"fields,omitempty"`
}

// CipherShareRequest transitions a cipher to organization ownership. At
// least one collection id is required whenever the embedded cipher carries
// an organization id.
type CipherShareRequest struct {
	Cipher        CipherRequest `json:"cipher"`
	CollectionIDs []string      `json:"collectionIds"`
}

// CipherBulkDeleteRequest names the ciphers of one bulk delete.
type CipherBulkDeleteRequest struct {
	IDs []string `json:"ids"`
}

// ImportCiphersRequest carries a client-side export to be replayed as a
// sequence of cipher creations.
type ImportCiphersRequest struct {
	Ciphers []CipherRequest `json:"ciphers"`
}

// SensitiveActionRequest re-proves the caller's master password before an
// irreversible operation such as purge.
type SensitiveActionRequest struct {
	MasterPasswordHash string `json:"masterPasswordHash"`
}

// FolderRequest creates or renames a folder.
type FolderRequest struct {
	Name string `json:"name"`
}

// KeysRequest carries a freshly generated asymmetric key pair.
type KeysRequest struct {
	EncryptedPrivateKey string `json:"encryptedPrivateKey"`
	PublicKey           string `json:"publicKey,omitempty"`
}

// RegisterRequest creates an account. Kdf and KdfIterations are optional;
// the system defaults apply when absent.
type RegisterRequest struct {
	Email              string       `json:"email"`
	MasterPasswordHash string       `json:"masterPasswordHash"`
	MasterPasswordHint string       `json:"masterPasswordHint,omitempty"`
	Name               string       `json:"name,omitempty"`
	Key                string       `json:"key,omitempty"`
	Keys               *KeysRequest `json:"keys,omitempty"`
	Kdf                *int         `json:"kdf,omitempty"`
	KdfIterations      *int         `json:"kdfIterations,omitempty"`
}

// PreLoginRequest asks for the KDF parameters of an email.
type PreLoginRequest struct {
	Email string `json:"email"`
}

// KdfRequest rotates the caller's KDF parameters. MasterPasswordHash is the
// proof under the current parameters; NewMasterPasswordHash is computed by
// the client under the new ones.
type KdfRequest struct {
	MasterPasswordHash    string `json:"masterPasswordHash"`
	NewMasterPasswordHash string `json:"newMasterPasswordHash"`
	Key                   string `json:"key"`
	Kdf                   int    `json:"kdf"`
	KdfIterations         int    `json:"kdfIterations"`
}

// ConnectRequest is the normalized form body of the token endpoint.
type ConnectRequest struct {
	GrantType        string
	Username         string
	Password         string
	Scope            string
	ClientID         string
	DeviceIdentifier string
	DeviceName       string
	DeviceType       string
}

// OrganizationCreateRequest creates an organization together with its Owner
// membership and a default collection.
type OrganizationCreateRequest struct {
	Name           string       `json:"name"`
	BillingEmail   string       `json:"billingEmail"`
	CollectionName string       `json:"collectionName"`
	Key            string       `json:"key"`
	Keys           *KeysRequest `json:"keys,omitempty"`
}

// OrganizationUpdateRequest overwrites the mutable organization attributes.
type OrganizationUpdateRequest struct {
	Name         string `json:"name"`
	BillingEmail string `json:"billingEmail"`
}

// CollectionRequest creates a collection under an organization.
type CollectionRequest struct {
	Name string `json:"name"`
}

// CipherCollectionsRequest replaces the full collection link set of a cipher.
type CipherCollectionsRequest struct {
	CollectionIDs []string `json:"collectionIds"`
}
