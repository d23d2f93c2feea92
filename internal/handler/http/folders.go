// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gowarden Authors

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/clevercastle/gowarden/internal/utils"
	"github.com/clevercastle/gowarden/models"
)

func (h *Handler) listFolders(w http.ResponseWriter, r *http.Request) {
	principal, err := utils.PrincipalFromContext(r.Context())
	if err != nil {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	folders, err := h.services.Folders.List(r.Context(), principal)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, models.NewListResponse(folders))
}

func (h *Handler) createFolder(w http.ResponseWriter, r *http.Request) {
	principal, err := utils.PrincipalFromContext(r.Context())
	if err != nil {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.FolderRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	resp, err := h.services.Folders.Create(r.Context(), principal, &req)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, resp)
}

func (h *Handler) updateFolder(w http.ResponseWriter, r *http.Request) {
	principal, err := utils.PrincipalFromContext(r.Context())
	if err != nil {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.FolderRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	resp, err := h.services.Folders.Update(r.Context(), principal, chi.URLParam(r, "id"), &req)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, resp)
}

func (h *Handler) deleteFolder(w http.ResponseWriter, r *http.Request) {
	principal, err := utils.PrincipalFromContext(r.Context())
	if err != nil {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	if err := h.services.Folders.Delete(r.Context(), principal, chi.URLParam(r, "id")); err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, nil)
}
