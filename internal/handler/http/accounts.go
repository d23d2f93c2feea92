// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gowarden Authors

package http

import (
	"net/http"

	"github.com/clevercastle/gowarden/internal/utils"
	"github.com/clevercastle/gowarden/models"
)

func (h *Handler) preLogin(w http.ResponseWriter, r *http.Request) {
	var req models.PreLoginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	resp, err := h.services.Account.PreLogin(r.Context(), &req)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, resp)
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	if err := h.services.Account.Register(r.Context(), &req); err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, nil)
}

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	principal, err := utils.PrincipalFromContext(r.Context())
	if err != nil {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	resp, err := h.services.Account.Profile(r.Context(), principal)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, resp)
}

func (h *Handler) updateKdf(w http.ResponseWriter, r *http.Request) {
	principal, err := utils.PrincipalFromContext(r.Context())
	if err != nil {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.KdfRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	if err := h.services.Account.UpdateKdf(r.Context(), principal, &req); err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, nil)
}
