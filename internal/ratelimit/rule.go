// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ratelimit

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidRule     = errors.New("invalid rate limit rule")
	ErrUnknownTimeUnit = errors.New("unknown time unit")
)

var units = map[string]time.Duration{
	"second": time.Second,
	"minute": time.Minute,
	"hour":   time.Hour,
	"day":    24 * time.Hour,
}

// Rule allows Limit requests per Window.
type Rule struct {
	Limit  int
	Window time.Duration
}

// ParseRule parses quotas written as "<count>/<unit>" or "<count> per <unit>",
// e.g. "5/minute", "100 per hour". Units may be plural.
func ParseRule(s string) (Rule, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	count, unit, ok := strings.Cut(s, "/")
	if !ok {
		count, unit, ok = strings.Cut(s, " per ")
	}
	if !ok {
		return Rule{}, fmt.Errorf("%w: %q", ErrInvalidRule, s)
	}

	limit, err := strconv.Atoi(strings.TrimSpace(count))
	if err != nil || limit <= 0 {
		return Rule{}, fmt.Errorf("%w: count must be a positive integer in %q", ErrInvalidRule, s)
	}

	unit = strings.TrimSuffix(strings.TrimSpace(unit), "s")
	window, ok := units[unit]
	if !ok {
		return Rule{}, fmt.Errorf("%w: %w %q", ErrInvalidRule, ErrUnknownTimeUnit, unit)
	}

	return Rule{Limit: limit, Window: window}, nil
}

// MustParseRule is like ParseRule but panics on error. Intended for
// package-level defaults and tests.
func MustParseRule(s string) Rule {
	r, err := ParseRule(s)
	if err != nil {
		panic(err)
	}
	return r
}

func (r Rule) String() string {
	for name, d := range units {
		if d == r.Window {
			return fmt.Sprintf("%d/%s", r.Limit, name)
		}
	}
	return fmt.Sprintf("%d/%s", r.Limit, r.Window)
}
