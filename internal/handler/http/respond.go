// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gowarden Authors

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/clevercastle/gowarden/internal/logger"
)

// errorResponse is the JSON error envelope clients expect. Internal detail
// never reaches the message; the full error is logged server-side.
type errorResponse struct {
	Message string `json:"message"`
	Object  string `json:"object"`
}

// decodeJSON reads the request body into v, mapping any failure to the
// malformed-body sentinel.
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedRequestBody, err)
	}
	return nil
}

// respondJSON writes v with the given status. Encoding failures are logged
// only; the status line has already been sent.
func respondJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.FromRequest(r).Err(err).Msg("error encoding response body")
	}
}

// respondError logs err and writes the mapped status with a terse JSON
// error envelope.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Msg("request failed")
	} else {
		log.Warn().Err(err).Msg("request refused")
	}

	respondJSON(w, r, status, errorResponse{
		Message: http.StatusText(status),
		Object:  "error",
	})
}
