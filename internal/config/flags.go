// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gowarden Authors

package config

import (
	"flag"
	"os"
)

// parseFlags reads the supported command-line flags into a fresh
// *StructuredConfig. Unset flags leave zero values so the merge step can
// fall through to other sources.
func parseFlags() *StructuredConfig {
	cfg := &StructuredConfig{}

	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	fs.StringVar(&cfg.Server.HTTPAddress, "a", "", "HTTP listen address (host:port)")
	fs.StringVar(&cfg.Storage.Dynamo.Region, "region", "", "AWS region of the vault tables")
	fs.StringVar(&cfg.Storage.Dynamo.Endpoint, "endpoint", "", "DynamoDB endpoint override (local development)")
	fs.StringVar(&cfg.Storage.Dynamo.TablePrefix, "table-prefix", "", "prefix applied to every table name")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "path to JSON config file")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "path to JSON config file")

	// Flags are best-effort: a malformed command line falls back to the
	// remaining config sources.
	_ = fs.Parse(os.Args[1:])

	return cfg
}
