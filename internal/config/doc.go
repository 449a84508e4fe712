// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// for the server and the CLI client.
//
// Configuration is assembled from several sources; later sources override
// non-zero fields of earlier ones:
//  1. Built-in defaults
//  2. JSON config file (path taken from the CONFIG env var or -c/-config flag)
//  3. Environment variables
//  4. Command-line flags
//
// The entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the client.
package config
