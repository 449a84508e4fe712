// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the ROT13 API.
//
// It dispatches a single command per process run (rot13, whoami, health,
// info) over a [adapter.ServerAdapter], logging in first for commands that
// need a bearer token.
package client
