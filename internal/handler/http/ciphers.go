// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gowarden Authors

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/clevercastle/gowarden/internal/utils"
	"github.com/clevercastle/gowarden/models"
)

func (h *Handler) createCipher(w http.ResponseWriter, r *http.Request) {
	principal, err := utils.PrincipalFromContext(r.Context())
	if err != nil {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.CipherRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	resp, err := h.services.Ciphers.Create(r.Context(), principal, &req)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, resp)
}

func (h *Handler) createSharedCipher(w http.ResponseWriter, r *http.Request) {
	principal, err := utils.PrincipalFromContext(r.Context())
	if err != nil {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.CipherShareRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	resp, err := h.services.Ciphers.CreateShared(r.Context(), principal, &req)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, resp)
}

func (h *Handler) getCipher(w http.ResponseWriter, r *http.Request) {
	principal, err := utils.PrincipalFromContext(r.Context())
	if err != nil {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	resp, err := h.services.Ciphers.Get(r.Context(), principal, chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, resp)
}

func (h *Handler) updateCipher(w http.ResponseWriter, r *http.Request) {
	principal, err := utils.PrincipalFromContext(r.Context())
	if err != nil {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.CipherRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	resp, err := h.services.Ciphers.Update(r.Context(), principal, chi.URLParam(r, "id"), &req)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, resp)
}

func (h *Handler) shareCipher(w http.ResponseWriter, r *http.Request) {
	principal, err := utils.PrincipalFromContext(r.Context())
	if err != nil {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.CipherShareRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	resp, err := h.services.Ciphers.Share(r.Context(), principal, chi.URLParam(r, "id"), &req)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, resp)
}

func (h *Handler) deleteCipher(w http.ResponseWriter, r *http.Request) {
	principal, err := utils.PrincipalFromContext(r.Context())
	if err != nil {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	if err := h.services.Ciphers.Delete(r.Context(), principal, chi.URLParam(r, "id")); err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, nil)
}

func (h *Handler) deleteCiphers(w http.ResponseWriter, r *http.Request) {
	principal, err := utils.PrincipalFromContext(r.Context())
	if err != nil {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.CipherBulkDeleteRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	if err := h.services.Ciphers.DeleteMany(r.Context(), principal, &req); err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, nil)
}

func (h *Handler) importCiphers(w http.ResponseWriter, r *http.Request) {
	principal, err := utils.PrincipalFromContext(r.Context())
	if err != nil {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.ImportCiphersRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	if err := h.services.Ciphers.Import(r.Context(), principal, &req); err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, nil)
}

func (h *Handler) purgeCiphers(w http.ResponseWriter, r *http.Request) {
	principal, err := utils.PrincipalFromContext(r.Context())
	if err != nil {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.SensitiveActionRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	if err := h.services.Ciphers.Purge(r.Context(), principal, &req); err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, nil)
}

func (h *Handler) updateCipherCollections(w http.ResponseWriter, r *http.Request) {
	principal, err := utils.PrincipalFromContext(r.Context())
	if err != nil {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.CipherCollectionsRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	if err := h.services.Ciphers.UpdateCollections(r.Context(), principal, chi.URLParam(r, "id"), &req); err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, nil)
}

func (h *Handler) organizationDetails(w http.ResponseWriter, r *http.Request) {
	principal, err := utils.PrincipalFromContext(r.Context())
	if err != nil {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	ciphers, err := h.services.Ciphers.ListOrganizationDetails(r.Context(), principal, r.URL.Query().Get("organizationId"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, models.NewListResponse(ciphers))
}
