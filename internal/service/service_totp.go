package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image/png"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"

	"github.com/MKhiriev/go-cert-keeper/internal/cache"
	"github.com/MKhiriev/go-cert-keeper/internal/crypto"
	"github.com/MKhiriev/go-cert-keeper/internal/logger"
	"github.com/MKhiriev/go-cert-keeper/internal/store"
	"github.com/MKhiriev/go-cert-keeper/models"
)

const (
	totpAccountName = "admin"
	totpQRSize      = 256
)

// totpValidateOpts is the standard RFC 6238 setup accepting one step of
// clock drift either way.
var totpValidateOpts = totp.ValidateOpts{
	Period:    30,
	Skew:      1,
	Digits:    otp.DigitsSix,
	Algorithm: otp.AlgorithmSHA1,
}

type totpService struct {
	accounts   store.AccountRepository
	groups     store.GroupRepository
	challenges ChallengeService
	notices    NoticeService
	sealer     crypto.Sealer

	issuer string
	now    cache.Clock

	logger *logger.Logger
}

func NewTotpService(
	accounts store.AccountRepository,
	groups store.GroupRepository,
	challenges ChallengeService,
	notices NoticeService,
	sealer crypto.Sealer,
	issuer string,
	clock cache.Clock,
	logger *logger.Logger,
) TotpService {
	if clock == nil {
		clock = time.Now
	}
	return &totpService{
		accounts:   accounts,
		groups:     groups,
		challenges: challenges,
		notices:    notices,
		sealer:     sealer,
		issuer:     issuer,
		now:        clock,
		logger:     logger,
	}
}

// IssueEnrollment stages a fresh secret for confirmation and returns its
// provisioning URI and QR code. Nothing is persisted until
// ConfirmEnrollment succeeds. When an authenticator is already bound only
// Registered is set.
func (s *totpService) IssueEnrollment(ctx context.Context) (models.TotpEnrollment, error) {
	account, err := loadAccount(ctx, s.accounts)
	if err != nil {
		return models.TotpEnrollment{}, err
	}
	if account.HasTotp() {
		return models.TotpEnrollment{Registered: true}, nil
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      s.issuer,
		AccountName: totpAccountName,
		Period:      totpValidateOpts.Period,
		Digits:      totpValidateOpts.Digits,
		Algorithm:   totpValidateOpts.Algorithm,
	})
	if err != nil {
		return models.TotpEnrollment{}, fmt.Errorf("generating totp secret failed: %w", err)
	}

	qr, err := qrDataURI(key)
	if err != nil {
		return models.TotpEnrollment{}, err
	}

	s.challenges.Stash(PurposeTotpBind, key.Secret())
	logger.FromContext(ctx).Info().Msg("totp enrollment staged")

	return models.TotpEnrollment{Registered: false, QRCode: qr, URI: key.URL()}, nil
}

// ConfirmEnrollment consumes the staged secret whatever the outcome: a
// wrong code requires a new enrollment.
func (s *totpService) ConfirmEnrollment(ctx context.Context, code string) error {
	secret, ok := s.challenges.Pop(PurposeTotpBind)
	if !ok {
		return ErrEnrollmentExpired
	}

	if !s.validate(code, secret) {
		s.notices.Report(ctx, models.Notice{Level: models.NoticeWarning, Content: "totp binding rejected: invalid code"})
		return ErrInvalidCode
	}

	sealed, err := s.sealer.Seal(secret)
	if err != nil {
		return fmt.Errorf("sealing totp secret failed: %w", err)
	}
	if err = s.accounts.SetTotpSecret(ctx, sealed); err != nil {
		return fmt.Errorf("saving totp secret failed: %w", err)
	}

	s.notices.Report(ctx, models.Notice{Level: models.NoticeInfo, Content: "totp authenticator bound"})
	return nil
}

func (s *totpService) RequireRemove(ctx context.Context) (string, error) {
	account, err := loadAccount(ctx, s.accounts)
	if err != nil {
		return "", err
	}
	if !account.HasTotp() {
		return "", ErrNoTotpBound
	}
	return s.challenges.Issue(PurposeRemoveTotp)
}

func (s *totpService) RemoveEnrollment(ctx context.Context, req models.TotpRemoveRequest) error {
	challenge, ok := s.challenges.Pop(PurposeRemoveTotp)
	if !ok {
		s.notices.Report(ctx, models.Notice{Level: models.NoticeDanger, Content: "totp removal with missing or reused challenge"})
		return ErrChallenge
	}

	account, err := loadAccount(ctx, s.accounts)
	if err != nil {
		return err
	}
	if !account.HasTotp() {
		return ErrNoTotpBound
	}

	dependent, err := s.groups.ListByLockType(ctx, models.LockTotp)
	if err != nil {
		return fmt.Errorf("listing totp groups failed: %w", err)
	}
	if len(dependent) > 0 {
		names := make([]string, 0, len(dependent))
		for _, g := range dependent {
			names = append(names, g.Name)
		}
		return &DependentGroupsError{GroupNames: names}
	}

	if !crypto.Equal(req.Proof, crypto.ProofFor(account.PasswordHash, challenge)) {
		s.notices.Report(ctx, models.Notice{Level: models.NoticeWarning, Content: "totp removal rejected: wrong password"})
		return ErrWrongPassword
	}
	if err = s.Verify(ctx, account, req.Code); err != nil {
		return err
	}

	if err = s.accounts.SetTotpSecret(ctx, ""); err != nil {
		return fmt.Errorf("clearing totp secret failed: %w", err)
	}

	s.notices.Report(ctx, models.Notice{Level: models.NoticeInfo, Content: "totp authenticator removed"})
	return nil
}

func (s *totpService) Verify(ctx context.Context, account models.Account, code string) error {
	if !account.HasTotp() {
		return ErrNoTotpBound
	}

	secret, err := s.sealer.Open(account.TotpSecret)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("opening sealed totp secret failed")
		return fmt.Errorf("opening totp secret failed: %w", err)
	}

	if !s.validate(code, secret) {
		return ErrInvalidCode
	}
	return nil
}

func (s *totpService) validate(code, secret string) bool {
	if code == "" {
		return false
	}
	ok, err := totp.ValidateCustom(code, secret, s.now(), totpValidateOpts)
	return err == nil && ok
}

func qrDataURI(key *otp.Key) (string, error) {
	img, err := key.Image(totpQRSize, totpQRSize)
	if err != nil {
		return "", fmt.Errorf("rendering totp qr code failed: %w", err)
	}

	var buf bytes.Buffer
	if err = png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("encoding totp qr code failed: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// loadAccount fetches the administrator, mapping a missing row to
// [ErrNotRegistered].
func loadAccount(ctx context.Context, accounts store.AccountRepository) (models.Account, error) {
	account, err := accounts.Get(ctx)
	if errors.Is(err, store.ErrAccountNotFound) {
		return models.Account{}, ErrNotRegistered
	}
	if err != nil {
		return models.Account{}, fmt.Errorf("loading account failed: %w", err)
	}
	return account, nil
}
