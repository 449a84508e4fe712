// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// ErrNoUserWasFound is returned when a lookup by username matches no
// record. It is the only failure the credential store produces.
var ErrNoUserWasFound = errors.New("no user was found")
