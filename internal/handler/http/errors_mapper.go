// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gowarden Authors

package http

import (
	"errors"
	"net/http"

	"github.com/clevercastle/gowarden/internal/service"
)

var errorStatusMap = map[error]int{
	service.ErrValidation:           http.StatusBadRequest,
	service.ErrOrganizationMismatch: http.StatusBadRequest,
	service.ErrAuthentication:       http.StatusUnauthorized,
	service.ErrPermissionDenied:     http.StatusForbidden,
	service.ErrNotFound:             http.StatusNotFound,
	service.ErrConflict:             http.StatusConflict,
	service.ErrInternal:             http.StatusInternalServerError,

	ErrMalformedRequestBody: http.StatusBadRequest,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
