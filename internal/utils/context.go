// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gowarden Authors

package utils

import (
	"context"
	"errors"

	"github.com/clevercastle/gowarden/models"
)

type ctxKey int

// principalCtxKey stores the authenticated principal in a request context.
const principalCtxKey ctxKey = iota

// ErrNoPrincipal is returned when a context carries no authenticated
// principal.
var ErrNoPrincipal = errors.New("no principal in context")

// WithPrincipal returns a child context carrying principal.
func WithPrincipal(ctx context.Context, principal models.Principal) context.Context {
	return context.WithValue(ctx, principalCtxKey, principal)
}

// PrincipalFromContext extracts the principal attached by the auth
// middleware. Handlers behind the middleware can rely on it being present.
func PrincipalFromContext(ctx context.Context) (models.Principal, error) {
	principal, ok := ctx.Value(principalCtxKey).(models.Principal)
	if !ok || principal.ID == "" {
		return models.Principal{}, ErrNoPrincipal
	}
	return principal, nil
}
