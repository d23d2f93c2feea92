// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gowarden Authors

// Package crypto implements the server-side credential primitives. The
// client already sends a derived master-password hash; the server stretches
// it once more with PBKDF2-SHA256 under per-user parameters before storage,
// so a stored digest can never be replayed as a login credential.
package crypto

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"

	"golang.org/x/crypto/pbkdf2"
)

// digestLen is the PBKDF2 output size in bytes.
const digestLen = 32

// HashPassword derives the storable digest of secret under the given salt
// and iteration count. Deterministic and side-effect free: identical inputs
// always produce identical output.
func HashPassword(secret, salt string, iterations int) string {
	key := pbkdf2.Key([]byte(secret), []byte(salt), iterations, digestLen, sha256.New)
	return base64.StdEncoding.EncodeToString(key)
}

// VerifyPassword reports whether secret matches storedHash under the given
// salt and iteration count. The comparison is constant-time and the function
// fails closed: an empty secret, an empty stored hash, or a non-positive
// iteration count all verify as false.
func VerifyPassword(secret, salt, storedHash string, iterations int) bool {
	if secret == "" || storedHash == "" || iterations <= 0 {
		return false
	}
	computed := HashPassword(secret, salt, iterations)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(storedHash)) == 1
}
