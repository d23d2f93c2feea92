// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gowarden Authors

package service

import "errors"

// The service error taxonomy. Every error leaving a service wraps exactly
// one of these sentinels so the transport layer can map it to a status
// without inspecting messages.
var (
	// ErrNotFound covers both true absence and resources outside the
	// caller's visibility. The two are indistinguishable on purpose.
	ErrNotFound = errors.New("resource not found")

	// ErrPermissionDenied reports a visible resource the caller may not
	// act on.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrOrganizationMismatch reports an update whose organization id
	// disagrees with the stored cipher. Ownership changes go through the
	// share operation, never through update.
	ErrOrganizationMismatch = errors.New("organization id does not match stored cipher")

	// ErrValidation reports a structurally invalid request.
	ErrValidation = errors.New("invalid request")

	// ErrAuthentication reports failed credential verification. The reason
	// is never detailed to the caller.
	ErrAuthentication = errors.New("invalid credentials")

	// ErrConflict reports a uniqueness violation, such as registering an
	// email twice.
	ErrConflict = errors.New("resource already exists")

	// ErrInternal covers store failures and invariant violations.
	ErrInternal = errors.New("internal error")
)
