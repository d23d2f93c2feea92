// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gowarden Authors

package store

import "errors"

var (
	// ErrStoreRequest wraps any transport-level failure of the backing
	// store. Retry policy lives with the caller's caller, never here.
	ErrStoreRequest = errors.New("backing store request failed")

	// ErrMarshalItem and ErrUnmarshalItem wrap attribute conversion
	// failures between entity structs and store items.
	ErrMarshalItem   = errors.New("error marshalling item")
	ErrUnmarshalItem = errors.New("error unmarshalling item")

	// ErrDuplicateMembership reports more than one confirmed membership row
	// for a single (user, organization) pair. The schema is expected to
	// prevent this; the row set is left untouched for manual repair.
	ErrDuplicateMembership = errors.New("duplicate confirmed membership rows")
)
