// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"os"

	"github.com/MKhiriev/go-rot13-api/internal/config"
	"github.com/MKhiriev/go-rot13-api/internal/handler"
	"github.com/MKhiriev/go-rot13-api/internal/logger"
	"github.com/MKhiriev/go-rot13-api/internal/ratelimit"
	"github.com/MKhiriev/go-rot13-api/internal/server"
	"github.com/MKhiriev/go-rot13-api/internal/service"
	"github.com/MKhiriev/go-rot13-api/internal/store"
	"github.com/MKhiriev/go-rot13-api/internal/validators"
	"github.com/MKhiriev/go-rot13-api/internal/workers"
	"github.com/MKhiriev/go-rot13-api/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	models.NewAppBuildInfo(buildVersion, buildDate, buildCommit).Print(os.Stdout)

	log := logger.NewLogger("rot13-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	leveled, err := log.WithLevel(cfg.App.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	log = leveled

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("token_algorithm", cfg.App.TokenAlgorithm).
		Dur("token_duration", cfg.App.TokenDuration).
		Msg("received configs")

	users := store.DefaultUsers()
	storages, err := store.NewStorages(log, users...)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	usernames := make([]string, 0, len(users))
	for _, user := range users {
		usernames = append(usernames, user.Username)
	}
	services := service.NewServices(storages, usernames, cfg.App, log)

	validator, err := validators.NewRequestValidator()
	if err != nil {
		log.Fatal().Err(err).Msg("error creating validator")
	}

	limiter := ratelimit.NewFixedWindowLimiter()
	handlers, err := handler.NewHandlers(services, validator, limiter, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	bg := workers.NewWorkers(ratelimit.NewSweeper(limiter, cfg.RateLimits.SweepInterval, log))
	srv, err := server.NewServer(handlers, bg, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Fatal().Err(err).Msg("server run error")
	}
}
