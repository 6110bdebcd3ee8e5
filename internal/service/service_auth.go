// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-cert-keeper/internal/adapter"
	"github.com/MKhiriev/go-cert-keeper/internal/cache"
	"github.com/MKhiriev/go-cert-keeper/internal/crypto"
	"github.com/MKhiriev/go-cert-keeper/internal/logger"
	"github.com/MKhiriev/go-cert-keeper/internal/store"
	"github.com/MKhiriev/go-cert-keeper/internal/utils"
	"github.com/MKhiriev/go-cert-keeper/internal/validators"
	"github.com/MKhiriev/go-cert-keeper/models"
)

// DefaultGroupName is the name of the group created at bootstrap.
const DefaultGroupName = "Default"

const passwordSaltBytes = 16

// authService orchestrates the login sequence, the password change and the
// administrator bootstrap.
type authService struct {
	accounts     store.AccountRepository
	certificates store.CertificateRepository

	challenges ChallengeService
	lockout    LockoutService
	notices    NoticeService
	sessions   SessionService
	totp       TotpService
	groups     GroupService
	geo        adapter.GeoLocator
	validator  validators.Validator

	// rotation is held exclusively while certificates are re-encrypted.
	rotation *sync.RWMutex
	now      cache.Clock

	logger *logger.Logger
}

// AuthDeps bundles the collaborators of [NewAuthService].
type AuthDeps struct {
	Accounts     store.AccountRepository
	Certificates store.CertificateRepository
	Challenges   ChallengeService
	Lockout      LockoutService
	Notices      NoticeService
	Sessions     SessionService
	Totp         TotpService
	Groups       GroupService
	Geo          adapter.GeoLocator
	Validator    validators.Validator
	Rotation     *sync.RWMutex
	Clock        cache.Clock
}

func NewAuthService(deps AuthDeps, logger *logger.Logger) AuthService {
	if deps.Clock == nil {
		deps.Clock = time.Now
	}
	if deps.Validator == nil {
		deps.Validator = validators.NewVaultValidator()
	}
	if deps.Rotation == nil {
		deps.Rotation = &sync.RWMutex{}
	}
	return &authService{
		accounts:     deps.Accounts,
		certificates: deps.Certificates,
		challenges:   deps.Challenges,
		lockout:      deps.Lockout,
		notices:      deps.Notices,
		sessions:     deps.Sessions,
		totp:         deps.Totp,
		groups:       deps.Groups,
		geo:          deps.Geo,
		validator:    deps.Validator,
		rotation:     deps.Rotation,
		now:          deps.Clock,
		logger:       logger,
	}
}

// CreateAdmin bootstraps the vault. req.Proof is hash(salt + password) and
// is stored as the password hash.
func (a *authService) CreateAdmin(ctx context.Context, req models.CreateAdminRequest) error {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Error().Err(err).Msg("invalid admin data provided")
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	count, err := a.accounts.Count(ctx)
	if err != nil {
		return fmt.Errorf("counting accounts failed: %w", err)
	}
	if count > 0 {
		return ErrAlreadyRegistered
	}

	_, err = a.accounts.CreateWithDefaultGroup(ctx, models.Account{
		PasswordHash: req.Proof,
		PasswordSalt: req.Salt,
		PwdGenPrefs:  models.DefaultPwdGenPrefs(),
		InitTime:     a.now(),
	}, DefaultGroupName)
	if errors.Is(err, store.ErrAccountAlreadyExists) {
		return ErrAlreadyRegistered
	}
	if err != nil {
		log.Err(err).Msg("admin creation ended with error")
		return fmt.Errorf("admin creation ended with error: %w", err)
	}

	a.notices.Report(ctx, models.Notice{Level: models.NoticeInfo, Content: "administrator account created"})
	return nil
}

func (a *authService) RequireLogin(ctx context.Context) (models.LoginChallenge, error) {
	account, err := loadAccount(ctx, a.accounts)
	if err != nil {
		return models.LoginChallenge{}, err
	}

	challenge, err := a.challenges.Issue(PurposeLogin)
	if err != nil {
		return models.LoginChallenge{}, err
	}
	return models.LoginChallenge{Salt: account.PasswordSalt, Challenge: challenge}, nil
}

// Login verifies attempt.Proof = hash(passwordHash + challenge).
//
// A login from a location other than the last successful one is allowed
// with a Warning notice when no authenticator is bound; otherwise it needs
// a valid TOTP code and is recorded as an Info notice.
func (a *authService) Login(ctx context.Context, attempt models.LoginAttempt) (models.LoginResponse, error) {
	log := logger.FromContext(ctx)

	if a.lockout.IsLocked() {
		return models.LoginResponse{}, ErrLocked
	}

	account, err := loadAccount(ctx, a.accounts)
	if err != nil {
		return models.LoginResponse{}, err
	}

	challenge, ok := a.challenges.Pop(PurposeLogin)
	if !ok {
		a.notices.Report(ctx, models.Notice{
			Level:   models.NoticeDanger,
			Content: "login with missing or reused challenge",
			IP:      attempt.IP,
		})
		a.lockout.RecordFailure(ctx, attempt.IP)
		return models.LoginResponse{}, ErrChallenge
	}

	location := a.geo.Locate(ctx, attempt.IP)
	if account.CommonLocation != "" && location != account.CommonLocation {
		if err = a.stepUp(ctx, account, attempt, location); err != nil {
			return models.LoginResponse{}, err
		}
	}

	if !crypto.Equal(attempt.Proof, crypto.ProofFor(account.PasswordHash, challenge)) {
		status := a.lockout.RecordFailure(ctx, attempt.IP)
		a.notices.Report(ctx, models.Notice{
			Level:    models.NoticeWarning,
			Content:  "login with wrong password",
			IP:       attempt.IP,
			Location: location,
		})
		return models.LoginResponse{}, &WrongPasswordError{RetriesRemaining: status.RetriesRemaining}
	}

	a.lockout.Clear()

	sessionID, grant, err := a.sessions.Start(ctx)
	if err != nil {
		return models.LoginResponse{}, err
	}

	if location != account.CommonLocation {
		if err = a.accounts.UpdateLocation(ctx, location); err != nil {
			log.Err(err).Str("location", location).Msg("updating common location failed")
		}
	}

	groups, err := a.groups.List(ctx, sessionID)
	if err != nil {
		return models.LoginResponse{}, err
	}

	hasNotice, err := a.notices.HasUnread(ctx)
	if err != nil {
		log.Err(err).Msg("checking unread notices failed")
	}

	log.Info().Str("ip", attempt.IP).Str("location", location).Msg("administrator logged in")
	return models.LoginResponse{
		Grant:          grant,
		Groups:         groups,
		DefaultGroupID: account.DefaultGroupID,
		HasNotice:      hasNotice,
		PwdGenPrefs:    account.PwdGenPrefs,
	}, nil
}

// stepUp handles a login from an unfamiliar location.
func (a *authService) stepUp(ctx context.Context, account models.Account, attempt models.LoginAttempt, location string) error {
	notice := models.Notice{IP: attempt.IP, Location: location}

	if !account.HasTotp() {
		notice.Level = models.NoticeWarning
		notice.Content = fmt.Sprintf("login from new location %q (usually %q)", location, account.CommonLocation)
		a.notices.Report(ctx, notice)
		return nil
	}

	if attempt.TotpCode == "" {
		return ErrNeedCode
	}

	if err := a.totp.Verify(ctx, account, attempt.TotpCode); err != nil {
		if errors.Is(err, ErrInvalidCode) {
			a.lockout.RecordFailure(ctx, attempt.IP)
			notice.Level = models.NoticeWarning
			notice.Content = fmt.Sprintf("login from new location %q rejected: invalid totp code", location)
			a.notices.Report(ctx, notice)
		}
		return err
	}

	notice.Level = models.NoticeInfo
	notice.Content = fmt.Sprintf("login from new location %q verified with totp", location)
	a.notices.Report(ctx, notice)
	return nil
}

func (a *authService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return ErrUnauthenticated
	}
	a.sessions.End(ctx, sessionID)
	return nil
}

func (a *authService) RequireChangePassword(ctx context.Context) (string, error) {
	return a.challenges.Issue(PurposeChangePassword)
}

// ChangePassword decrypts req under deriveKeyIv(passwordHash + challenge +
// token), checks the old password and rotates every certificate from the
// old content key to the new one in a single transaction.
func (a *authService) ChangePassword(ctx context.Context, token string, req models.ChangePasswordRequest) error {
	log := logger.FromContext(ctx)
	ip := utils.GetClientIPFromContext(ctx)

	challenge, ok := a.challenges.Pop(PurposeChangePassword)
	if !ok {
		a.notices.Report(ctx, models.Notice{Level: models.NoticeDanger, Content: "password change with missing or reused challenge"})
		a.lockout.RecordFailure(ctx, ip)
		return ErrChallenge
	}

	account, err := loadAccount(ctx, a.accounts)
	if err != nil {
		return err
	}

	var payload models.ChangePasswordPayload
	payloadKey := crypto.DeriveKeyIV(account.PasswordHash + challenge + token)
	if err = crypto.DecryptJSON(req.EncryptedPayload, payloadKey, &payload); err != nil ||
		!crypto.Equal(crypto.Hash(account.PasswordSalt+payload.OldPassword), account.PasswordHash) {
		status := a.lockout.RecordFailure(ctx, ip)
		a.notices.Report(ctx, models.Notice{Level: models.NoticeWarning, Content: "password change with wrong password"})
		return &WrongPasswordError{RetriesRemaining: status.RetriesRemaining}
	}

	if payload.NewPassword == "" {
		return ErrInvalidDataProvided
	}
	oldKey := crypto.DeriveKeyIV(payload.OldPassword)
	if crypto.ValidateKeyIV(payload.NewPassword, oldKey) {
		return ErrSamePassword
	}

	if account.HasTotp() {
		if payload.TotpCode == "" {
			return ErrNeedCode
		}
		if err = a.totp.Verify(ctx, account, payload.TotpCode); err != nil {
			return err
		}
	}

	salt, err := crypto.RandomHex(passwordSaltBytes)
	if err != nil {
		return err
	}
	newKey := crypto.DeriveKeyIV(payload.NewPassword)

	a.rotation.Lock()
	defer a.rotation.Unlock()

	certs, err := a.certificates.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("listing certificates failed: %w", err)
	}
	for i := range certs {
		content, err := reencrypt(certs[i].Content, oldKey, newKey)
		if err != nil {
			log.Err(err).Int64("certificate_id", certs[i].ID).Msg("certificate does not decrypt under the current key")
			return fmt.Errorf("re-encrypting certificate %d: %w", certs[i].ID, err)
		}
		certs[i].Content = content
	}

	err = a.accounts.RotatePassword(ctx, models.PasswordRotation{
		PasswordHash: crypto.Hash(salt + payload.NewPassword),
		PasswordSalt: salt,
		Certificates: certs,
	})
	if err != nil {
		return fmt.Errorf("rotating password failed: %w", err)
	}

	log.Info().Int("certificates", len(certs)).Msg("master password changed")
	a.notices.Report(ctx, models.Notice{Level: models.NoticeInfo, Content: "master password changed"})
	return nil
}

// reencrypt moves certificate content from oldKey to newKey. Content is
// always a JSON document, which catches wrong keys that happen to produce
// valid padding.
func reencrypt(content string, oldKey, newKey crypto.KeyIV) (string, error) {
	plain, err := crypto.Decrypt(content, oldKey)
	if err != nil {
		return "", err
	}
	if !json.Valid([]byte(plain)) {
		return "", crypto.ErrWrongKey
	}
	return crypto.Encrypt(plain, newKey)
}

func (a *authService) UpdatePwdGenPrefs(ctx context.Context, prefs models.PwdGenPrefs) error {
	if err := a.validator.Validate(ctx, prefs); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if err := a.accounts.UpdatePwdGenPrefs(ctx, prefs); err != nil {
		return fmt.Errorf("updating password generator preferences failed: %w", err)
	}
	return nil
}
