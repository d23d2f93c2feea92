// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gowarden Authors

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/clevercastle/gowarden/internal/utils"
	"github.com/clevercastle/gowarden/models"
)

func (h *Handler) createOrganization(w http.ResponseWriter, r *http.Request) {
	principal, err := utils.PrincipalFromContext(r.Context())
	if err != nil {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.OrganizationCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	resp, err := h.services.Organizations.Create(r.Context(), principal, &req)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, resp)
}

func (h *Handler) getOrganization(w http.ResponseWriter, r *http.Request) {
	principal, err := utils.PrincipalFromContext(r.Context())
	if err != nil {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	resp, err := h.services.Organizations.Get(r.Context(), principal, chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, resp)
}

func (h *Handler) updateOrganization(w http.ResponseWriter, r *http.Request) {
	principal, err := utils.PrincipalFromContext(r.Context())
	if err != nil {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.OrganizationUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	resp, err := h.services.Organizations.Update(r.Context(), principal, chi.URLParam(r, "id"), &req)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, resp)
}

func (h *Handler) listOrganizationCollections(w http.ResponseWriter, r *http.Request) {
	principal, err := utils.PrincipalFromContext(r.Context())
	if err != nil {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	collections, err := h.services.Organizations.ListCollections(r.Context(), principal, chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, models.NewListResponse(collections))
}

func (h *Handler) createOrganizationCollection(w http.ResponseWriter, r *http.Request) {
	principal, err := utils.PrincipalFromContext(r.Context())
	if err != nil {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var req models.CollectionRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, r, err)
		return
	}

	resp, err := h.services.Organizations.CreateCollection(r.Context(), principal, chi.URLParam(r, "id"), &req)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, resp)
}

func (h *Handler) listOrganizationMembers(w http.ResponseWriter, r *http.Request) {
	principal, err := utils.PrincipalFromContext(r.Context())
	if err != nil {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	members, err := h.services.Organizations.ListMembers(r.Context(), principal, chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, models.NewListResponse(members))
}

func (h *Handler) listUserCollections(w http.ResponseWriter, r *http.Request) {
	principal, err := utils.PrincipalFromContext(r.Context())
	if err != nil {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	collections, err := h.services.Organizations.ListUserCollections(r.Context(), principal)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, models.NewListResponse(collections))
}
