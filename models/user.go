// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// User represents an account that is allowed to obtain a bearer token.
//
// Users are defined when the process starts and never change afterwards.
type User struct {
	// ID is the numeric identifier reported by /api/user-info.
	ID int64 `json:"user_id"`

	// Username is the unique, immutable login name. It is also the value
	// carried in the "username" claim of issued tokens.
	Username string `json:"username"`

	// Password is compared by exact match during login.
	// It is stored in plain text and must never leave the process.
	Password string `json:"-"`
}
