// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cache holds the process-local ephemeral state of the security
// core: challenges, sessions and replay nonces. Entries carry an explicit
// expiry instant that is checked lazily on read; a background sweeper only
// reclaims memory and never changes what a reader observes.
package cache

import (
	"sync"
	"time"
)

// Clock returns the current time. Tests inject a fake.
type Clock func() time.Time

type entry[V any] struct {
	value     V
	expiresAt time.Time // zero means no expiry
}

func (e entry[V]) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

// Store is a concurrency-safe map of values with per-key time to live.
type Store[V any] struct {
	mu      sync.Mutex
	entries map[string]entry[V]
	now     Clock
}

// New creates an empty store. A nil clock means time.Now.
func New[V any](clock Clock) *Store[V] {
	if clock == nil {
		clock = time.Now
	}
	return &Store[V]{
		entries: make(map[string]entry[V]),
		now:     clock,
	}
}

// Set stores v under key, replacing any previous value. A ttl of zero or
// less keeps the entry until it is deleted.
func (s *Store[V]) Set(key string, v V, ttl time.Duration) {
	e := entry[V]{value: v}
	if ttl > 0 {
		e.expiresAt = s.now().Add(ttl)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = e
}

// Replace drops every entry and stores v under key in one step.
func (s *Store[V]) Replace(key string, v V, ttl time.Duration) {
	e := entry[V]{value: v}
	if ttl > 0 {
		e.expiresAt = s.now().Add(ttl)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.entries)
	s.entries[key] = e
}

// SetIfAbsent stores v only when key holds no live entry. It reports
// whether the value was stored.
func (s *Store[V]) SetIfAbsent(key string, v V, ttl time.Duration) bool {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.entries[key]; ok && !e.expired(now) {
		return false
	}

	e := entry[V]{value: v}
	if ttl > 0 {
		e.expiresAt = now.Add(ttl)
	}
	s.entries[key] = e
	return true
}

// Get returns the live value stored under key.
func (s *Store[V]) Get(key string) (V, bool) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[key]
	if !ok || e.expired(now) {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Pop returns the live value stored under key and removes it in the same
// critical section, so a key can be consumed at most once.
func (s *Store[V]) Pop(key string) (V, bool) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	delete(s.entries, key)
	if e.expired(now) {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Delete removes key.
func (s *Store[V]) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
}

// Range calls fn for every live entry until fn returns false. fn runs
// without the store lock held and may call back into the store.
func (s *Store[V]) Range(fn func(key string, v V) bool) {
	now := s.now()

	s.mu.Lock()
	snapshot := make(map[string]V, len(s.entries))
	for k, e := range s.entries {
		if !e.expired(now) {
			snapshot[k] = e.value
		}
	}
	s.mu.Unlock()

	for k, v := range snapshot {
		if !fn(k, v) {
			return
		}
	}
}

// Sweep drops expired entries and returns how many were removed.
func (s *Store[V]) Sweep() int {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for k, e := range s.entries {
		if e.expired(now) {
			delete(s.entries, k)
			removed++
		}
	}
	return removed
}

// Len returns the number of stored entries, expired ones included until the
// next sweep.
func (s *Store[V]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
