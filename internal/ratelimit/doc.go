// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package ratelimit implements in-memory fixed-window request counters.
//
// Each key (typically route plus client address) gets its own window that
// opens on the first request and closes after the rule's duration. Counters
// are process-local and lost on restart.
package ratelimit
