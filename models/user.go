// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gowarden Authors

package models

import "time"

// KDF type discriminants. Only PBKDF2-SHA256 is currently issued; the value
// is stored per user so the parameters can be rotated later.
const (
	KdfTypePBKDF2SHA256 = 0
)

// User is a vault account. The primary key is (ID, SK) with SK always equal
// to ID; Email is served by a secondary index and must be unique.
//
// MasterPasswordHash is the server-side PBKDF2 digest of the client-supplied
// master password hash. It is never exposed through any response model.
type User struct {
	ID string `dynamodbav:"Id" json:"id"`
	SK string `dynamodbav:"Sk" json:"-"`

	Email              string `dynamodbav:"Email" json:"email"`
	Name               string `dynamodbav:"Name" json:"name"`
	Salt               string `dynamodbav:"Salt" json:"-"`
	MasterPasswordHash string `dynamodbav:"MasterPasswordHash" json:"-"`
	MasterPasswordHint string `dynamodbav:"MasterPasswordHint" json:"-"`

	// Kdf and KdfIterations are the client-side key-derivation parameters
	// negotiated at registration and returned by prelogin. Changing them is
	// only possible through the explicit KDF rotation operation.
	Kdf           int `dynamodbav:"Kdf" json:"-"`
	KdfIterations int `dynamodbav:"KdfIterations" json:"-"`

	// Key is the user's symmetric vault key wrapped with the master key.
	// EncryptedPrivateKey and PublicKey form the user's asymmetric key pair;
	// the private half is wrapped client-side.
	Key                 string `dynamodbav:"Key" json:"-"`
	EncryptedPrivateKey string `dynamodbav:"EncryptedPrivateKey" json:"-"`
	PublicKey           string `dynamodbav:"PublicKey" json:"-"`

	// SecurityStamp changes whenever credentials change, invalidating
	// previously issued tokens on clients that check it.
	SecurityStamp string `dynamodbav:"SecurityStamp" json:"-"`

	Enabled bool `dynamodbav:"Enabled" json:"-"`

	CreatedAt time.Time `dynamodbav:"CreatedAt" json:"-"`
	UpdatedAt time.Time `dynamodbav:"UpdatedAt" json:"-"`
}
