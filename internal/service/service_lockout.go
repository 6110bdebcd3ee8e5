// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-cert-keeper/internal/adapter"
	"github.com/MKhiriev/go-cert-keeper/internal/cache"
	"github.com/MKhiriev/go-cert-keeper/internal/logger"
	"github.com/MKhiriev/go-cert-keeper/models"
)

// lockoutService keeps the failure records of the current calendar day.
// Failures are counted for the deployment, not per IP: there is one
// administrator and any failed attempt counts against that account.
type lockoutService struct {
	mu      sync.Mutex
	records []models.LoginFailRecord

	threshold int
	geo       adapter.GeoLocator
	now       cache.Clock
}

func NewLockoutService(threshold int, geo adapter.GeoLocator, clock cache.Clock) LockoutService {
	if clock == nil {
		clock = time.Now
	}
	return &lockoutService{
		threshold: threshold,
		geo:       geo,
		now:       clock,
	}
}

// RecordFailure appends a failure from ip and returns the resulting status.
func (s *lockoutService) RecordFailure(ctx context.Context, ip string) models.LockoutStatus {
	location := s.geo.Locate(ctx, ip)
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.prune(now)
	s.records = append(s.records, models.LoginFailRecord{Date: now, IP: ip, Location: location})
	status := s.status()

	log := logger.FromContext(ctx)
	log.Warn().
		Str("ip", ip).
		Str("location", location).
		Int("failures", len(s.records)).
		Bool("locked", status.IsLocked).
		Msg("login failure recorded")

	return status
}

func (s *lockoutService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = nil
}

func (s *lockoutService) Status() models.LockoutStatus {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.prune(now)
	return s.status()
}

func (s *lockoutService) IsLocked() bool {
	return s.Status().IsLocked
}

// prune drops records from earlier days. Callers hold mu.
func (s *lockoutService) prune(now time.Time) {
	kept := s.records[:0]
	for _, r := range s.records {
		if sameDay(r.Date, now) {
			kept = append(kept, r)
		}
	}
	s.records = kept
}

// status builds a snapshot. Callers hold mu.
func (s *lockoutService) status() models.LockoutStatus {
	records := make([]models.LoginFailRecord, len(s.records))
	copy(records, s.records)

	return models.LockoutStatus{
		Records:          records,
		IsLocked:         len(records) >= s.threshold,
		RetriesRemaining: max(s.threshold-len(records), 0),
	}
}

func sameDay(a, b time.Time) bool {
	a = a.In(b.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
