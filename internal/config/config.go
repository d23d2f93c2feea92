// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gowarden Authors

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for gowarden.
// It is populated once at startup by merging environment variables,
// command-line flags, an optional JSON file, and built-in defaults, and is
// never mutated afterwards.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds vault-level settings: token parameters, KDF defaults,
	// signup policy, and CORS hosts.
	App App `envPrefix:"APP_"`

	// Storage holds the backing-store settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network settings for the standalone HTTP entry point.
	// The Lambda entry point ignores this section.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file,
	// merged on top of environment and flag values when non-empty.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds vault-level configuration values.
type App struct {
	// TokenSignKey is the secret used to sign and verify access tokens.
	// Must be kept confidential.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued token and
	// validated on every authenticated request.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is how long an access token remains valid (e.g. "2h").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// KdfType is the KDF discriminant reported by prelogin for unknown
	// emails and assigned to registrations that do not request one.
	// Env: APP_KDF_TYPE
	KdfType int `env:"KDF_TYPE"`

	// KdfIterations is the default KDF iteration count, applied the same
	// way as KdfType.
	// Env: APP_KDF_ITERATIONS
	KdfIterations int `env:"KDF_ITERATIONS"`

	// SignupDomains is the email-domain allow-list for registration. An
	// empty list allows every domain.
	// Env: APP_SIGNUP_DOMAINS (comma separated)
	SignupDomains []string `env:"SIGNUP_DOMAINS"`

	// CORSHosts lists the origins allowed by the HTTP layer. "*" allows any.
	// Env: APP_CORS_HOSTS (comma separated)
	CORSHosts []string `env:"CORS_HOSTS"`

	// Version is the semantic version of the running binary, exposed via
	// the info endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups backing-store configuration.
type Storage struct {
	// Dynamo holds the DynamoDB connection settings.
	Dynamo Dynamo `envPrefix:"DYNAMO_"`
}

// Dynamo holds the DynamoDB client settings.
type Dynamo struct {
	// Region is the AWS region of the vault tables.
	// Env: STORAGE_DYNAMO_REGION
	Region string `env:"REGION"`

	// Endpoint overrides the service endpoint, typically pointing at a
	// local emulator during development. Empty in production.
	// Env: STORAGE_DYNAMO_ENDPOINT
	Endpoint string `env:"ENDPOINT"`

	// AccessKeyID and SecretAccessKey configure static credentials. When
	// both are empty the default AWS credential chain applies.
	// Env: STORAGE_DYNAMO_ACCESS_KEY_ID / STORAGE_DYNAMO_SECRET_ACCESS_KEY
	AccessKeyID     string `env:"ACCESS_KEY_ID"`
	SecretAccessKey string `env:"SECRET_ACCESS_KEY"`

	// TablePrefix is prepended to every table name, so several deployments
	// can share one account.
	// Env: STORAGE_DYNAMO_TABLE_PREFIX
	TablePrefix string `env:"TABLE_PREFIX"`
}

// Server holds network settings for the standalone HTTP server.
type Server struct {
	// HTTPAddress is the listen address in "host:port" form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all sources in priority order (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final value fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
