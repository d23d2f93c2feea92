// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gowarden Authors

// Package models defines the vault entity types, the request/response shapes
// of the service layer, and the cipher payload variants. Entities carry
// `dynamodbav` tags for the backing store and `json` tags for the wire layer.
package models

// Principal is the authenticated caller's identity, derived from a verified
// bearer token by the transport layer and passed into every service call.
// The core never re-validates the token itself.
type Principal struct {
	ID    string
	Email string
}
