package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-cert-keeper/internal/adapter"
	"github.com/MKhiriev/go-cert-keeper/internal/cache"
	"github.com/MKhiriev/go-cert-keeper/internal/config"
	"github.com/MKhiriev/go-cert-keeper/internal/crypto"
	"github.com/MKhiriev/go-cert-keeper/internal/logger"
	"github.com/MKhiriev/go-cert-keeper/internal/store"
	"github.com/MKhiriev/go-cert-keeper/internal/validators"
	"github.com/MKhiriev/go-cert-keeper/internal/workers"
	"github.com/MKhiriev/go-cert-keeper/models"
)

type Services struct {
	AppInfoService     AppInfoService
	AuthService        AuthService
	SessionService     SessionService
	LockoutService     LockoutService
	NoticeService      NoticeService
	TotpService        TotpService
	GroupService       GroupService
	CertificateService CertificateService

	sweepables map[string]workers.Sweepable
}

// Option customizes [NewServices].
type Option func(*options)

type options struct {
	clock cache.Clock
}

// WithClock replaces time.Now for every TTL, window and calendar-day check.
func WithClock(clock cache.Clock) Option {
	return func(o *options) {
		o.clock = clock
	}
}

func NewServices(
	storages *store.Storages,
	geo adapter.GeoLocator,
	sealer crypto.Sealer,
	cfg *config.StructuredConfig,
	logger *logger.Logger,
	opts ...Option,
) (*Services, error) {
	o := options{clock: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	appInfo, err := NewAppInfoService(cfg.App, storages.Accounts, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	issuer := cfg.Security.TotpIssuer
	if issuer == "" {
		issuer = cfg.App.Name
	}

	challengeStore := cache.New[string](o.clock)
	sessionStore := cache.New[*models.Session](o.clock)
	nonceStore := cache.New[struct{}](o.clock)
	rotation := &sync.RWMutex{}
	validator := validators.NewVaultValidator()

	challenges := NewChallengeService(challengeStore, cfg.Security)
	lockout := NewLockoutService(cfg.Security.LockoutThreshold, geo, o.clock)
	notices := NewNoticeService(storages.Notices, geo, o.clock, logger)
	sessions := NewSessionService(sessionStore, nonceStore, cfg.App, cfg.Security, o.clock, logger)
	totp := NewTotpService(storages.Accounts, storages.Groups, challenges, notices, sealer, issuer, o.clock, logger)
	groups := NewGroupService(storages.Groups, storages.Accounts, sessions, challenges, totp, notices, validator, logger)
	certificates := NewCertificateService(storages.Certificates, groups, rotation, validator, logger)

	auth := NewAuthService(AuthDeps{
		Accounts:     storages.Accounts,
		Certificates: storages.Certificates,
		Challenges:   challenges,
		Lockout:      lockout,
		Notices:      notices,
		Sessions:     sessions,
		Totp:         totp,
		Groups:       groups,
		Geo:          geo,
		Validator:    validator,
		Rotation:     rotation,
		Clock:        o.clock,
	}, logger)

	return &Services{
		AppInfoService:     appInfo,
		AuthService:        auth,
		SessionService:     sessions,
		LockoutService:     lockout,
		NoticeService:      notices,
		TotpService:        totp,
		GroupService:       groups,
		CertificateService: certificates,
		sweepables: map[string]workers.Sweepable{
			"challenges": challengeStore,
			"sessions":   sessionStore,
			"nonces":     nonceStore,
		},
	}, nil
}

// Sweepables returns the expiring in-memory stores for the sweeper worker.
func (s *Services) Sweepables() map[string]workers.Sweepable {
	return s.sweepables
}
