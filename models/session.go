// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"sync"
	"time"
)

// Session is the server-side state behind a bearer token. The unlocked group
// set lives only in memory and dies with the session.
type Session struct {
	ID           string
	ReplaySecret string
	CreatedAt    time.Time

	mu             sync.RWMutex
	lastSeenAt     time.Time
	unlockedGroups map[int64]struct{}
}

// NewSession constructs a session with an empty unlocked set.
func NewSession(id, replaySecret string, now time.Time) *Session {
	return &Session{
		ID:             id,
		ReplaySecret:   replaySecret,
		CreatedAt:      now,
		lastSeenAt:     now,
		unlockedGroups: make(map[int64]struct{}),
	}
}

// Unlock marks groupID as unlocked for the rest of the session.
func (s *Session) Unlock(groupID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unlockedGroups[groupID] = struct{}{}
}

// IsUnlocked reports whether groupID was unlocked during this session.
func (s *Session) IsUnlocked(groupID int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.unlockedGroups[groupID]
	return ok
}

// Forget drops groupID from the unlocked set.
func (s *Session) Forget(groupID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.unlockedGroups, groupID)
}

// Touch records activity at now.
func (s *Session) Touch(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeenAt = now
}

// LastSeenAt returns the time of the last recorded activity.
func (s *Session) LastSeenAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastSeenAt
}

// Grant is what a successful login hands back to the client.
type Grant struct {
	Token        string `json:"token"`
	ReplaySecret string `json:"replay_attack_secret"`
}
