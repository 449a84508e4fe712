// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cipher implements the letter-rotation transform served by the API.
//
// The alphabet is restricted to uppercase A-Z plus the space character.
// Callers are expected to check input with [ValidText] before rotating;
// [Rotate] itself does not reject anything.
package cipher
