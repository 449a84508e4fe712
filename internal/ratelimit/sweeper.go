// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ratelimit

import (
	"context"
	"time"

	"github.com/MKhiriev/go-rot13-api/internal/logger"
)

// Sweeper periodically evicts closed windows so that the counter map does not
// grow with every client address ever seen.
type Sweeper struct {
	limiter  *FixedWindowLimiter
	interval time.Duration

	logger *logger.Logger
}

func NewSweeper(limiter *FixedWindowLimiter, interval time.Duration, logger *logger.Logger) *Sweeper {
	return &Sweeper{
		limiter:  limiter,
		interval: interval,
		logger:   logger,
	}
}

// Run sweeps every interval until ctx is done. It always returns nil.
func (s *Sweeper) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Debug().Msg("rate limit sweeper stopped")
			return nil
		case <-ticker.C:
			if removed := s.limiter.Sweep(); removed > 0 {
				s.logger.Debug().Int("removed", removed).Int("left", s.limiter.Len()).Msg("expired rate limit windows evicted")
			}
		}
	}
}
