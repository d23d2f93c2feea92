// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gowarden Authors

package http

import (
	"net/http"
	"time"
)

type healthResponse struct {
	Status string `json:"status"`
}

type infoResponse struct {
	Version          string `json:"version"`
	ServerTime       string `json:"serverTime"`
	SignupOpen       bool   `json:"signupOpen"`
	KdfIterations    int    `json:"kdfIterations"`
	UnofficialServer bool   `json:"unofficialServer"`
}

// health reports process liveness only; it deliberately touches no
// dependency.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, healthResponse{Status: "ok"})
}

// info exposes the public instance metadata.
func (h *Handler) info(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, infoResponse{
		Version:          h.cfg.App.Version,
		ServerTime:       time.Now().UTC().Format(time.RFC3339),
		SignupOpen:       len(h.cfg.App.SignupDomains) == 0,
		KdfIterations:    h.cfg.App.KdfIterations,
		UnofficialServer: true,
	})
}
