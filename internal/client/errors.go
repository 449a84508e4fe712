// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	ErrNoAdapter          = errors.New("server adapter is required")
	ErrNoCommand          = errors.New("no command given")
	ErrUnknownCommand     = errors.New("unknown command")
	ErrMissingArgument    = errors.New("missing command argument")
	ErrMissingCredentials = errors.New("username and password are required")
)
