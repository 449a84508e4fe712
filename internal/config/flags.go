// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"io"
	"net"
	"os"
	"strconv"
	"strings"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the server flags from os.Args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-algorithm token signing algorithm (HS256, HS384, HS512)
//	-token-duration token lifetime (e.g., "30m", "1h")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-trust-proxy-headers take the client address from proxy headers
//	-log-level minimum log level
//	-rate-limit-login, -rate-limit-info, -rate-limit-rot13,
//	-rate-limit-user-info, -rate-limit-health per-route quotas (e.g., "5/minute")
func ParseFlags() (*StructuredConfig, error) {
	return parseServerFlags(os.Args[1:])
}

func parseServerFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var serverAddress NetAddress
	cfg := &StructuredConfig{}

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&cfg.App.TokenAlgorithm, "token-algorithm", "", "Token signing algorithm")
	fs.DurationVar(&cfg.App.TokenDuration, "token-duration", 0, "Token duration (e.g., 30m, 1h)")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.BoolVar(&cfg.Server.TrustProxyHeaders, "trust-proxy-headers", false, "Use X-Forwarded-For/X-Real-IP as client address")
	fs.StringVar(&cfg.RateLimits.Login, "rate-limit-login", "", "Rate limit for POST /login")
	fs.StringVar(&cfg.RateLimits.Info, "rate-limit-info", "", "Rate limit for GET /")
	fs.StringVar(&cfg.RateLimits.ROT13, "rate-limit-rot13", "", "Rate limit for POST /api/rot13")
	fs.StringVar(&cfg.RateLimits.UserInfo, "rate-limit-user-info", "", "Rate limit for GET /api/user-info")
	fs.StringVar(&cfg.RateLimits.Health, "rate-limit-health", "", "Rate limit for GET /health")

	if err := fs.Parse(args); err != nil {
		return nil, errors.Join(ErrInvalidFlags, err)
	}

	cfg.Server.HTTPAddress = serverAddress.String()
	return cfg, nil
}

// parseClientFlags parses the client flags and returns the remaining
// positional arguments (the command and its input).
//
// Flags:
//
//	-a server URL or host:port
//	-c/-config json file path with configs
//	-u username
//	-p password
//	-timeout request timeout (e.g., "15s")
//	-log-level minimum log level
func parseClientFlags(args []string) (*StructuredConfig, []string, error) {
	fs := flag.NewFlagSet("client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	cfg := &StructuredConfig{}

	fs.StringVar(&cfg.Adapter.HTTPAddress, "a", "", "Server address")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.Adapter.Username, "u", "", "Username")
	fs.StringVar(&cfg.Adapter.Password, "p", "", "Password")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "timeout", 0, "Request timeout (e.g., 15s)")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, nil, errors.Join(ErrInvalidFlags, err)
	}

	return cfg, fs.Args(), nil
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string when nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range and checks IP correctness unless host is
// "localhost" or empty.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

