// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gowarden Authors

package http

import (
	"fmt"
	"net/http"

	"github.com/clevercastle/gowarden/models"
)

// connectToken is the OAuth-style token endpoint. The body is a classic
// URL-encoded form, not JSON.
func (h *Handler) connectToken(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondError(w, r, fmt.Errorf("%w: %w", ErrMalformedRequestBody, err))
		return
	}

	req := &models.ConnectRequest{
		GrantType:        r.PostFormValue("grant_type"),
		Username:         r.PostFormValue("username"),
		Password:         r.PostFormValue("password"),
		Scope:            r.PostFormValue("scope"),
		ClientID:         r.PostFormValue("client_id"),
		DeviceIdentifier: r.PostFormValue("deviceIdentifier"),
		DeviceName:       r.PostFormValue("deviceName"),
		DeviceType:       r.PostFormValue("deviceType"),
	}

	resp, err := h.services.Identity.Connect(r.Context(), req)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, resp)
}
