// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-cert-keeper/internal/cache"
	"github.com/MKhiriev/go-cert-keeper/internal/config"
	"github.com/MKhiriev/go-cert-keeper/internal/crypto"
	"github.com/MKhiriev/go-cert-keeper/internal/logger"
	"github.com/MKhiriev/go-cert-keeper/internal/utils"
	"github.com/MKhiriev/go-cert-keeper/models"
)

const replaySecretBytes = 32

// sessionService owns the keyed collection of live sessions and the replay
// nonces seen inside them.
//
// A session ends on logout, when a newer login supersedes it, after
// idleTimeout without activity, or when its token expires.
type sessionService struct {
	sessions *cache.Store[*models.Session]
	nonces   *cache.Store[struct{}]
	ids      *utils.UUIDGenerator
	now      cache.Clock

	tokenSignKey  string
	tokenIssuer   string
	tokenDuration time.Duration
	idleTimeout   time.Duration
	replayWindow  time.Duration

	logger *logger.Logger
}

func NewSessionService(
	sessions *cache.Store[*models.Session],
	nonces *cache.Store[struct{}],
	app config.App,
	security config.Security,
	clock cache.Clock,
	logger *logger.Logger,
) SessionService {
	if clock == nil {
		clock = time.Now
	}
	return &sessionService{
		sessions:      sessions,
		nonces:        nonces,
		ids:           utils.NewUUIDGenerator(),
		now:           clock,
		tokenSignKey:  app.TokenSignKey,
		tokenIssuer:   app.TokenIssuer,
		tokenDuration: app.TokenDuration,
		idleTimeout:   security.SessionIdleTimeout,
		replayWindow:  security.ReplayWindow,
		logger:        logger,
	}
}

func (s *sessionService) Start(ctx context.Context) (string, models.Grant, error) {
	id := s.ids.Generate()
	secret, err := crypto.RandomHex(replaySecretBytes)
	if err != nil {
		return "", models.Grant{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	token, err := utils.GenerateJWTToken(s.tokenIssuer, id, s.tokenDuration, s.tokenSignKey)
	if err != nil {
		return "", models.Grant{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	s.sessions.Replace(id, models.NewSession(id, secret, s.now()), s.tokenDuration)

	logger.FromContext(ctx).Info().Str("session_id", id).Msg("session started")
	return id, models.Grant{Token: token.String(), ReplaySecret: secret}, nil
}

func (s *sessionService) Resolve(ctx context.Context, token string) (*models.Session, error) {
	parsed, err := utils.ValidateAndParseJWTToken(token, s.tokenSignKey, s.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("rejected session token")
		return nil, ErrUnauthenticated
	}

	session, ok := s.sessions.Get(parsed.SessionID)
	if !ok {
		return nil, ErrUnauthenticated
	}

	now := s.now()
	if s.idleTimeout > 0 && now.Sub(session.LastSeenAt()) > s.idleTimeout {
		s.sessions.Delete(session.ID)
		logger.FromContext(ctx).Info().Str("session_id", session.ID).Msg("session idle timeout")
		return nil, ErrUnauthenticated
	}

	session.Touch(now)
	return session, nil
}

func (s *sessionService) End(ctx context.Context, sessionID string) {
	s.sessions.Delete(sessionID)
	logger.FromContext(ctx).Info().Str("session_id", sessionID).Msg("session ended")
}

func (s *sessionService) Unlock(sessionID string, groupID int64) error {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return ErrUnauthenticated
	}
	session.Unlock(groupID)
	return nil
}

func (s *sessionService) Forget(groupID int64) {
	s.sessions.Range(func(_ string, session *models.Session) bool {
		session.Forget(groupID)
		return true
	})
}

func (s *sessionService) IsGroupUnlocked(sessionID string, group models.Group) bool {
	if group.Lock.Type == models.LockNone {
		return true
	}
	session, ok := s.sessions.Get(sessionID)
	return ok && session.IsUnlocked(group.ID)
}

// VerifyReplay accepts a request when the signature matches, the
// millisecond timestamp lies within the replay window on either side of now
// and the nonce was not used before inside the session.
func (s *sessionService) VerifyReplay(sessionID, url, nonce, timestamp, signature string) error {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return ErrUnauthenticated
	}

	if nonce == "" || timestamp == "" || signature == "" {
		return ErrReplaySignatureInvalid
	}
	if !crypto.VerifyReplay(url, nonce, timestamp, session.ReplaySecret, signature) {
		return ErrReplaySignatureInvalid
	}

	ms, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return ErrReplaySignatureInvalid
	}
	skew := s.now().Sub(time.UnixMilli(ms))
	if skew > s.replayWindow || skew < -s.replayWindow {
		return ErrReplaySignatureInvalid
	}

	if !s.nonces.SetIfAbsent(sessionID+":"+nonce, struct{}{}, 2*s.replayWindow) {
		return ErrReplaySignatureInvalid
	}
	return nil
}
