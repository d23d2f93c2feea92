// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gowarden Authors

package main

import (
	"context"
	"fmt"

	"github.com/clevercastle/gowarden/internal/config"
	handler "github.com/clevercastle/gowarden/internal/handler/http"
	"github.com/clevercastle/gowarden/internal/logger"
	"github.com/clevercastle/gowarden/internal/server"
	"github.com/clevercastle/gowarden/internal/service"
	"github.com/clevercastle/gowarden/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("gowarden-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	client, err := store.NewClient(context.Background(), cfg.Storage.Dynamo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating store client")
	}

	repos := store.NewRepositories(client, log)
	services := service.NewServices(repos, cfg, log)
	handlers := handler.NewHandler(services, cfg, log)

	srv, err := server.NewServer(handlers.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
