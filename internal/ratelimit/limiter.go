// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ratelimit

import (
	"sync"
	"time"
)

// Decision is the outcome of a single [Limiter.Allow] call.
type Decision struct {
	Allowed   bool
	Limit     int
	Remaining int
	// ResetAt is when the current window closes and the counter starts over.
	ResetAt time.Time
	// RetryAfter is the time left until ResetAt; meaningful when denied.
	RetryAfter time.Duration
}

// Limiter decides whether a request identified by key is admitted under rule.
// Implementations must be safe for concurrent use.
type Limiter interface {
	Allow(key string, rule Rule) Decision
}

type window struct {
	count   int
	resetAt time.Time
}

// FixedWindowLimiter counts hits per key inside fixed windows that start
// at the first hit for that key.
type FixedWindowLimiter struct {
	mu      sync.Mutex
	windows map[string]*window
	now     func() time.Time
}

// Option configures a [FixedWindowLimiter].
type Option func(*FixedWindowLimiter)

// WithClock replaces time.Now. Used in tests.
func WithClock(now func() time.Time) Option {
	return func(l *FixedWindowLimiter) {
		l.now = now
	}
}

func NewFixedWindowLimiter(opts ...Option) *FixedWindowLimiter {
	l := &FixedWindowLimiter{
		windows: make(map[string]*window),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Allow registers a hit for key and reports whether it fits into rule.
// Denied hits are not counted.
func (l *FixedWindowLimiter) Allow(key string, rule Rule) Decision {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.windows[key]
	if !ok || !now.Before(w.resetAt) {
		w = &window{resetAt: now.Add(rule.Window)}
		l.windows[key] = w
	}

	d := Decision{
		Limit:   rule.Limit,
		ResetAt: w.resetAt,
	}

	if w.count >= rule.Limit {
		d.RetryAfter = w.resetAt.Sub(now)
		return d
	}

	w.count++
	d.Allowed = true
	d.Remaining = rule.Limit - w.count
	return d
}

// Sweep drops every window that has already closed and returns how many
// were removed.
func (l *FixedWindowLimiter) Sweep() int {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for key, w := range l.windows {
		if !now.Before(w.resetAt) {
			delete(l.windows, key)
			removed++
		}
	}
	return removed
}

// Len returns the number of tracked windows.
func (l *FixedWindowLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.windows)
}

// Key joins a route and a client address into a limiter key.
func Key(route, clientAddr string) string {
	return route + "|" + clientAddr
}
