// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gowarden Authors

package config

import "errors"

var (
	ErrNoTokenSignKey   = errors.New("token sign key is required")
	ErrNoTokenIssuer    = errors.New("token issuer is required")
	ErrNoTokenDuration  = errors.New("token duration must be positive")
	ErrWeakKdf          = errors.New("kdf iteration count is below the allowed minimum")
	ErrNoDynamoLocation = errors.New("either dynamo region or endpoint is required")
)

// minKdfIterations is the lowest iteration count accepted as a system-wide
// default.
const minKdfIterations = 5000

// validate rejects configurations that cannot produce a working or safe
// deployment. Called once, after all sources are merged.
func (c *StructuredConfig) validate() error {
	var errs []error

	if c.App.TokenSignKey == "" {
		errs = append(errs, ErrNoTokenSignKey)
	}
	if c.App.TokenIssuer == "" {
		errs = append(errs, ErrNoTokenIssuer)
	}
	if c.App.TokenDuration <= 0 {
		errs = append(errs, ErrNoTokenDuration)
	}
	if c.App.KdfIterations < minKdfIterations {
		errs = append(errs, ErrWeakKdf)
	}
	if c.Storage.Dynamo.Region == "" && c.Storage.Dynamo.Endpoint == "" {
		errs = append(errs, ErrNoDynamoLocation)
	}

	return errors.Join(errs...)
}

// IsSignupAllowed reports whether email may register under the configured
// domain allow-list. An empty list allows everyone; a malformed email is
// refused whenever a list is configured.
func (c *StructuredConfig) IsSignupAllowed(email string) bool {
	if len(c.App.SignupDomains) == 0 {
		return true
	}

	at := -1
	for i, r := range email {
		if r == '@' {
			at = i
		}
	}
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]
	for _, allowed := range c.App.SignupDomains {
		if domain == allowed {
			return true
		}
	}
	return false
}
