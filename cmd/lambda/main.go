// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The gowarden Authors

package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/clevercastle/gowarden/internal/adapter"
	"github.com/clevercastle/gowarden/internal/config"
	handler "github.com/clevercastle/gowarden/internal/handler/http"
	"github.com/clevercastle/gowarden/internal/logger"
	"github.com/clevercastle/gowarden/internal/service"
	"github.com/clevercastle/gowarden/internal/store"
)

func main() {
	log := logger.NewLogger("gowarden-lambda")
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

	lambda.Start(adapter.New(handlers.Init(), log).Handle)
}
