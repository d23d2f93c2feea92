// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gowarden Authors

// Package http implements the HTTP transport layer of the vault. It
// provides the route table, authentication and logging middleware, and the
// request/response plumbing in front of the service layer. Handlers decode,
// delegate, and encode; every decision lives in the services.
package http

import (
	"github.com/clevercastle/gowarden/internal/config"
	"github.com/clevercastle/gowarden/internal/logger"
	"github.com/clevercastle/gowarden/internal/service"
)

type Handler struct {
	services *service.Services
	cfg      *config.StructuredConfig

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		cfg:      cfg,
		logger:   logger,
	}
}
