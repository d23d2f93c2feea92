// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gowarden Authors

package http

import "errors"

var (
	ErrEmptyAuthorizationHeader = errors.New("authorization header is missing")
	ErrMalformedRequestBody     = errors.New("malformed request body")
)
