// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"time"
)

// ClientConfig is the configuration of the CLI client.
type ClientConfig struct {
	// Adapter contains the server address, timeout and credentials.
	Adapter Adapter
	// LogLevel is the minimum level written to stderr.
	LogLevel string
	// Args are the positional arguments left after flag parsing.
	Args []string
}

// GetClientConfig builds and validates the client configuration from the
// same sources as the server, using the client flag set.
func GetClientConfig() (*ClientConfig, error) {
	var args []string
	parse := func() (*StructuredConfig, error) {
		cfg, rest, err := parseClientFlags(os.Args[1:])
		args = rest
		return cfg, err
	}

	cfg, err := newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(parse).
		withJSON().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter:  cfg.Adapter,
		LogLevel: cfg.App.LogLevel,
		Args:     args,
	}

	return clientCfg, clientCfg.validate()
}

const defaultClientTimeout = 15 * time.Second
