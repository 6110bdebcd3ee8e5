package service

import (
	"strconv"
	"time"

	"github.com/MKhiriev/go-cert-keeper/internal/cache"
	"github.com/MKhiriev/go-cert-keeper/internal/config"
	"github.com/MKhiriev/go-cert-keeper/internal/crypto"
)

// Challenge purposes. The vault has a single administrator, so challenges
// are keyed by what they protect rather than by caller.
const (
	PurposeLogin          = "login"
	PurposeChangePassword = "changePwd"
	PurposeRemoveTotp     = "removeTotp"
	PurposeTotpBind       = "totpBind"
)

const challengeBytes = 16

// PurposeGroupUnlock is the challenge purpose of a password group unlock.
func PurposeGroupUnlock(groupID int64) string {
	return "group:" + strconv.FormatInt(groupID, 10)
}

type challengeService struct {
	store *cache.Store[string]

	loginTTL   time.Duration
	enrollTTL  time.Duration
	defaultTTL time.Duration
}

func NewChallengeService(store *cache.Store[string], cfg config.Security) ChallengeService {
	return &challengeService{
		store:      store,
		loginTTL:   cfg.LoginChallengeTTL,
		enrollTTL:  cfg.TotpEnrollTTL,
		defaultTTL: cfg.ChallengeTTL,
	}
}

// Issue replaces any pending challenge for purpose with a fresh random one.
func (s *challengeService) Issue(purpose string) (string, error) {
	value, err := crypto.RandomHex(challengeBytes)
	if err != nil {
		return "", err
	}
	s.store.Set(purpose, value, s.ttl(purpose))
	return value, nil
}

func (s *challengeService) Stash(purpose, value string) {
	s.store.Set(purpose, value, s.ttl(purpose))
}

func (s *challengeService) Pop(purpose string) (string, bool) {
	return s.store.Pop(purpose)
}

func (s *challengeService) ttl(purpose string) time.Duration {
	switch purpose {
	case PurposeLogin:
		return s.loginTTL
	case PurposeTotpBind:
		return s.enrollTTL
	default:
		return s.defaultTTL
	}
}
