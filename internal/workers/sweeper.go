// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-cert-keeper/internal/logger"
)

// Sweeper periodically evicts expired challenges, sessions and nonces.
// Readers already ignore expired entries; the sweeper only bounds memory.
type Sweeper struct {
	interval time.Duration
	targets  map[string]Sweepable
	logger   *logger.Logger

	done chan struct{}
}

// NewSweeper creates a sweeper over the named targets.
func NewSweeper(interval time.Duration, targets map[string]Sweepable, log *logger.Logger) *Sweeper {
	return &Sweeper{
		interval: interval,
		targets:  targets,
		logger:   log,
		done:     make(chan struct{}),
	}
}

// Run starts the sweep loop in a goroutine. It stops when ctx is done.
func (s *Sweeper) Run(ctx context.Context) {
	go func() {
		defer close(s.done)

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		s.logger.Info().Dur("interval", s.interval).Msg("sweeper started")
		for {
			select {
			case <-ctx.Done():
				s.logger.Info().Msg("sweeper stopped")
				return
			case <-ticker.C:
				s.SweepOnce()
			}
		}
	}()
}

// Done is closed once the loop started by Run has returned.
func (s *Sweeper) Done() <-chan struct{} {
	return s.done
}

// SweepOnce sweeps every target and returns the total number of evictions.
func (s *Sweeper) SweepOnce() int {
	total := 0
	for name, target := range s.targets {
		n := target.Sweep()
		if n > 0 {
			s.logger.Debug().Str("store", name).Int("evicted", n).Msg("expired entries swept")
		}
		total += n
	}
	return total
}
