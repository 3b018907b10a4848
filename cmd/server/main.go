// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-blog-accounts/internal/adapter"
	"github.com/MKhiriev/go-blog-accounts/internal/config"
	"github.com/MKhiriev/go-blog-accounts/internal/handler"
	"github.com/MKhiriev/go-blog-accounts/internal/logger"
	"github.com/MKhiriev/go-blog-accounts/internal/server"
	"github.com/MKhiriev/go-blog-accounts/internal/service"
	"github.com/MKhiriev/go-blog-accounts/internal/store"
	"github.com/MKhiriev/go-blog-accounts/internal/workers"
	"github.com/MKhiriev/go-blog-accounts/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("blog-accounts").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.New(os.Stdout, "blog-accounts", logger.ParseLevel(cfg.App.LogLevel))

	ctx := context.Background()
	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	pool := workers.NewPool(cfg.Credentials.HashWorkers)
	mailer := adapter.NewMailAdapter(cfg.Mail, log)

	services, err := service.NewServices(storages, mailer, pool, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	background := workers.NewWorkers(
		workers.NewTicketPurger(
			storages.ResetTicketRepository,
			cfg.Workers.TicketPurgeInterval,
			cfg.Workers.TicketRetention,
			log,
		),
	)

	srv, err := server.NewServer(handlers, background, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", orNA(info.BuildVersion()))
	fmt.Printf("Build date: %s\n", orNA(info.BuildDate()))
	fmt.Printf("Build commit: %s\n", orNA(info.BuildCommit()))
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
