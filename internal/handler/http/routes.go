// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gowarden Authors

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withLogging)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: h.cfg.App.CORSHosts,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type", "Accept", "Device-Type"},
	}))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/identity/connect/token", h.connectToken)
		r.Post("/api/accounts/prelogin", h.preLogin)
		r.Post("/api/accounts/register", h.register)
		r.Get("/api/health", h.health)
		r.Get("/api/info", h.info)
	})

	// routes behind bearer authentication
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/accounts/profile", h.profile)
		r.Post("/api/accounts/kdf", h.updateKdf)

		r.Get("/api/sync", h.sync)

		r.Route("/api/ciphers", func(r chi.Router) {
			r.Post("/", h.createCipher)
			r.Post("/create", h.createSharedCipher)
			r.Post("/import", h.importCiphers)
			r.Post("/purge", h.purgeCiphers)
			r.Post("/delete", h.deleteCiphers)
			r.Get("/organization-details", h.organizationDetails)
			r.Get("/{id}", h.getCipher)
			r.Put("/{id}", h.updateCipher)
			r.Delete("/{id}", h.deleteCipher)
			r.Put("/{id}/share", h.shareCipher)
			r.Put("/{id}/collections", h.updateCipherCollections)
		})

		r.Route("/api/folders", func(r chi.Router) {
			r.Get("/", h.listFolders)
			r.Post("/", h.createFolder)
			r.Put("/{id}", h.updateFolder)
			r.Delete("/{id}", h.deleteFolder)
		})

		r.Route("/api/organizations", func(r chi.Router) {
			r.Post("/", h.createOrganization)
			r.Get("/{id}", h.getOrganization)
			r.Put("/{id}", h.updateOrganization)
			r.Get("/{id}/collections", h.listOrganizationCollections)
			r.Post("/{id}/collections", h.createOrganizationCollection)
			r.Get("/{id}/users", h.listOrganizationMembers)
		})

		r.Get("/api/collections", h.listUserCollections)
	})

	return router
}
