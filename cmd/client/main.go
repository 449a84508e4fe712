// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-rot13-api/internal/adapter"
	"github.com/MKhiriev/go-rot13-api/internal/client"
	"github.com/MKhiriev/go-rot13-api/internal/config"
	"github.com/MKhiriev/go-rot13-api/internal/logger"
	"github.com/MKhiriev/go-rot13-api/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewConsoleLogger("rot13-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if len(cfg.Args) > 0 && cfg.Args[0] == "version" {
		models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).Print(os.Stdout)
		return
	}

	leveled, err := log.WithLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	log = leveled

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	app, err := client.NewApp(serverAdapter, cfg.Adapter, os.Stdout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx, cfg.Args); err != nil {
		if errors.Is(err, client.ErrNoCommand) || errors.Is(err, client.ErrUnknownCommand) {
			fmt.Fprintln(os.Stderr, client.Usage)
		}
		stop()
		log.Fatal().Err(err).Msg("client run error")
	}
}
