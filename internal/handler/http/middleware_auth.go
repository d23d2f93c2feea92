// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gowarden Authors

package http

import (
	"net/http"

	"github.com/clevercastle/gowarden/internal/logger"
	"github.com/clevercastle/gowarden/internal/utils"
)

// auth enforces bearer-token authentication.
//
// It extracts the token from the Authorization header, verifies signature,
// issuer, expiry and the id claim, and stores the resulting principal in
// the request context for downstream handlers. Every rejection is a plain
// 401 without detail.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		principal, err := utils.ParsePrincipalToken(tokenString, h.cfg.App.TokenSignKey, h.cfg.App.TokenIssuer)
		if err != nil {
			log.Err(err).Msg("error validating access token")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithPrincipal(r.Context(), principal)))
	})
}
