// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-rot13-api/internal/config"
	"github.com/MKhiriev/go-rot13-api/internal/handler"
	"github.com/MKhiriev/go-rot13-api/internal/logger"
	"github.com/MKhiriev/go-rot13-api/internal/workers"
	"golang.org/x/sync/errgroup"
)

type server struct {
	httpServer *httpServer
	workers    *workers.Workers
	logger     *logger.Logger
}

// NewServer builds the server from the HTTP handler and the background
// workers that share its lifetime. bg may be nil.
func NewServer(handlers *handler.Handlers, bg *workers.Workers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}
	if bg == nil {
		bg = workers.NewWorkers()
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		workers:    bg,
		logger:     logger,
	}, nil
}

func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.Run(ctx); err != nil {
		s.logger.Error().Err(err).Msg("server stopped with error")
		return err
	}

	s.logger.Info().Msg("server shutdown gracefully")
	return nil
}

func (s *server) Run(ctx context.Context) error {
	return s.run(ctx, s.httpServer.listenAndServe)
}

// run starts serve and the workers, and stops both once ctx is done or one
// of them fails.
func (s *server) run(ctx context.Context, serve func() error) error {
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(serve)

	s.logger.Info().Int("count", s.workers.Len()).Msg("launching workers")
	g.Go(func() error {
		return s.workers.Run(gCtx)
	})

	// listen for stop signals or a failed component
	g.Go(func() error {
		<-gCtx.Done()
		return s.httpServer.shutdown()
	})

	return g.Wait()
}
