// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gowarden Authors

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// jsonConfig mirrors StructuredConfig with JSON tags and string durations,
// so operators can write "2h" instead of nanoseconds.
type jsonConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration string   `json:"token_duration"`
		KdfType       int      `json:"kdf_type"`
		KdfIterations int      `json:"kdf_iterations"`
		SignupDomains []string `json:"signup_domains"`
		CORSHosts     []string `json:"cors_hosts"`
		Version       string   `json:"version"`
	} `json:"app"`
	Storage struct {
		Dynamo struct {
			Region          string `json:"region"`
			Endpoint        string `json:"endpoint"`
			AccessKeyID     string `json:"access_key_id"`
			SecretAccessKey string `json:"secret_access_key"`
			TablePrefix     string `json:"table_prefix"`
		} `json:"dynamo"`
	} `json:"storage"`
	Server struct {
		HTTPAddress    string `json:"address"`
		RequestTimeout string `json:"request_timeout"`
	} `json:"server"`
}

// parseJSON loads the JSON config file at path and converts it to a
// *StructuredConfig.
func parseJSON(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading JSON config %q: %w", path, err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return nil, fmt.Errorf("error parsing JSON config %q: %w", path, err)
	}

	cfg := &StructuredConfig{}
	cfg.App.TokenSignKey = jc.App.TokenSignKey
	cfg.App.TokenIssuer = jc.App.TokenIssuer
	cfg.App.KdfType = jc.App.KdfType
	cfg.App.KdfIterations = jc.App.KdfIterations
	cfg.App.SignupDomains = jc.App.SignupDomains
	cfg.App.CORSHosts = jc.App.CORSHosts
	cfg.App.Version = jc.App.Version
	cfg.Storage.Dynamo.Region = jc.Storage.Dynamo.Region
	cfg.Storage.Dynamo.Endpoint = jc.Storage.Dynamo.Endpoint
	cfg.Storage.Dynamo.AccessKeyID = jc.Storage.Dynamo.AccessKeyID
	cfg.Storage.Dynamo.SecretAccessKey = jc.Storage.Dynamo.SecretAccessKey
	cfg.Storage.Dynamo.TablePrefix = jc.Storage.Dynamo.TablePrefix
	cfg.Server.HTTPAddress = jc.Server.HTTPAddress

	if jc.App.TokenDuration != "" {
		d, err := time.ParseDuration(jc.App.TokenDuration)
		if err != nil {
			return nil, fmt.Errorf("error parsing token_duration: %w", err)
		}
		cfg.App.TokenDuration = d
	}
	if jc.Server.RequestTimeout != "" {
		d, err := time.ParseDuration(jc.Server.RequestTimeout)
		if err != nil {
			return nil, fmt.Errorf("error parsing request_timeout: %w", err)
		}
		cfg.Server.RequestTimeout = d
	}

	return cfg, nil
}
