package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-cert-keeper/internal/config"
	"github.com/MKhiriev/go-cert-keeper/internal/crypto"
	"github.com/MKhiriev/go-cert-keeper/internal/logger"
	"github.com/MKhiriev/go-cert-keeper/internal/utils"
	"github.com/MKhiriev/go-cert-keeper/models"
)

type httpVaultClient struct {
	client *utils.HTTPClient
	nonces *utils.UUIDGenerator
	now    func() time.Time

	mu           sync.RWMutex
	token        string
	replaySecret string
	salt         string
	contentKey   crypto.KeyIV

	logger *logger.Logger
}

// NewHTTPVaultClient constructs a [VaultClient] for the server at
// cfg.HTTPAddress. A missing scheme defaults to http.
func NewHTTPVaultClient(cfg config.ClientAdapter, log *logger.Logger) (VaultClient, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpVaultClient{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		nonces: utils.NewUUIDGenerator(),
		now:    time.Now,
		logger: log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errors.New("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errors.New("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (c *httpVaultClient) GlobalInfo(ctx context.Context) (models.GlobalInfo, error) {
	var info models.GlobalInfo
	resp, err := c.client.R().SetContext(ctx).SetResult(&info).Get("/api/global")
	if err != nil {
		return models.GlobalInfo{}, fmt.Errorf("global info request: %w", err)
	}
	return info, mapHTTPError(resp)
}

func (c *httpVaultClient) LockoutStatus(ctx context.Context) (models.LockoutStatus, error) {
	var status models.LockoutStatus
	resp, err := c.client.R().SetContext(ctx).SetResult(&status).Get("/api/security/lockout")
	if err != nil {
		return models.LockoutStatus{}, fmt.Errorf("lockout status request: %w", err)
	}
	return status, mapHTTPError(resp)
}

// CreateAdmin sends hash(salt + password) with a fresh random salt. The
// password itself never leaves the client.
func (c *httpVaultClient) CreateAdmin(ctx context.Context, password string) error {
	salt, err := crypto.RandomHex(16)
	if err != nil {
		return err
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(models.CreateAdminRequest{Proof: crypto.Hash(salt + password), Salt: salt}).
		Post("/api/user/createAdmin")
	if err != nil {
		return fmt.Errorf("create admin request: %w", err)
	}
	return mapHTTPError(resp)
}

func (c *httpVaultClient) Login(ctx context.Context, password, totpCode string) (models.LoginResponse, error) {
	var challenge models.LoginChallenge
	resp, err := c.client.R().SetContext(ctx).SetResult(&challenge).Post("/api/user/requireLogin")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("require login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	passwordHash := crypto.Hash(challenge.Salt + password)

	var out models.LoginResponse
	resp, err = c.client.R().
		SetContext(ctx).
		SetBody(models.LoginRequest{Proof: crypto.ProofFor(passwordHash, challenge.Challenge), TotpCode: totpCode}).
		SetResult(&out).
		Post("/api/user/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	c.mu.Lock()
	c.token = out.Token
	c.replaySecret = out.ReplaySecret
	c.salt = challenge.Salt
	c.contentKey = crypto.DeriveKeyIV(password)
	c.mu.Unlock()

	c.logger.Debug().Int("groups", len(out.Groups)).Msg("logged in")
	return out, nil
}

func (c *httpVaultClient) Logout(ctx context.Context) error {
	req, err := c.signedRequest(ctx, "/api/user/logout")
	if err != nil {
		return err
	}
	resp, err := req.Post("/api/user/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}

	c.mu.Lock()
	c.token, c.replaySecret = "", ""
	c.contentKey = crypto.KeyIV{}
	c.mu.Unlock()

	return mapHTTPError(resp)
}

func (c *httpVaultClient) UnlockGroup(ctx context.Context, group models.GroupView, secret string) error {
	proof := secret
	if group.LockType == models.LockPassword {
		path := fmt.Sprintf("/api/group/%d/requireUnlock", group.ID)
		req, err := c.signedRequest(ctx, path)
		if err != nil {
			return err
		}

		var challenge models.GroupChallenge
		resp, err := req.SetResult(&challenge).Get(path)
		if err != nil {
			return fmt.Errorf("require unlock request: %w", err)
		}
		if err = mapHTTPError(resp); err != nil {
			return err
		}
		proof = crypto.ProofFor(crypto.Hash(challenge.Salt+secret), challenge.Challenge)
	}

	path := fmt.Sprintf("/api/group/%d/unlock", group.ID)
	req, err := c.signedRequest(ctx, path)
	if err != nil {
		return err
	}
	resp, err := req.SetBody(models.UnlockGroupRequest{Proof: proof}).Post(path)
	if err != nil {
		return fmt.Errorf("unlock request: %w", err)
	}
	return mapHTTPError(resp)
}

func (c *httpVaultClient) ListCertificates(ctx context.Context, groupID int64) ([]models.Certificate, error) {
	path := fmt.Sprintf("/api/group/%d/certificate", groupID)
	req, err := c.signedRequest(ctx, path)
	if err != nil {
		return nil, err
	}

	var certs []models.Certificate
	resp, err := req.SetResult(&certs).Get(path)
	if err != nil {
		return nil, fmt.Errorf("list certificates request: %w", err)
	}
	return certs, mapHTTPError(resp)
}

func (c *httpVaultClient) GetCertificate(ctx context.Context, id int64) (models.Certificate, error) {
	path := fmt.Sprintf("/api/certificate/%d", id)
	req, err := c.signedRequest(ctx, path)
	if err != nil {
		return models.Certificate{}, err
	}

	var cert models.Certificate
	resp, err := req.SetResult(&cert).Get(path)
	if err != nil {
		return models.Certificate{}, fmt.Errorf("get certificate request: %w", err)
	}
	return cert, mapHTTPError(resp)
}

func (c *httpVaultClient) CreateCertificate(ctx context.Context, groupID int64, name string, fields []models.CertificateField) (models.Certificate, error) {
	c.mu.RLock()
	key := c.contentKey
	c.mu.RUnlock()

	if len(key.Key) == 0 {
		return models.Certificate{}, ErrNotLoggedIn
	}

	content, err := crypto.EncryptJSON(fields, key)
	if err != nil {
		return models.Certificate{}, fmt.Errorf("encrypt certificate: %w", err)
	}

	req, err := c.signedRequest(ctx, "/api/certificate")
	if err != nil {
		return models.Certificate{}, err
	}

	var created models.Certificate
	resp, err := req.
		SetBody(models.Certificate{Name: name, GroupID: groupID, Content: content}).
		SetResult(&created).
		Post("/api/certificate")
	if err != nil {
		return models.Certificate{}, fmt.Errorf("create certificate request: %w", err)
	}
	return created, mapHTTPError(resp)
}

func (c *httpVaultClient) OpenCertificate(cert models.Certificate) ([]models.CertificateField, error) {
	c.mu.RLock()
	key := c.contentKey
	c.mu.RUnlock()

	if len(key.Key) == 0 {
		return nil, ErrNotLoggedIn
	}

	var fields []models.CertificateField
	if err := crypto.DecryptJSON(cert.Content, key, &fields); err != nil {
		return nil, fmt.Errorf("certificate %d: %w", cert.ID, err)
	}
	return fields, nil
}

// ChangePassword encrypts the payload under
// deriveKeyIv(passwordHash + challenge + token); the server re-derives the
// same key from its stored hash.
func (c *httpVaultClient) ChangePassword(ctx context.Context, oldPassword, newPassword, totpCode string) error {
	const challengePath = "/api/user/requireChangePwd"

	req, err := c.signedRequest(ctx, challengePath)
	if err != nil {
		return err
	}

	var challenge models.ChallengeResponse
	resp, err := req.SetResult(&challenge).Get(challengePath)
	if err != nil {
		return fmt.Errorf("require change password request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	c.mu.RLock()
	token, salt := c.token, c.salt
	c.mu.RUnlock()

	key := crypto.DeriveKeyIV(crypto.Hash(salt+oldPassword) + challenge.Challenge + token)
	payload, err := crypto.EncryptJSON(models.ChangePasswordPayload{
		OldPassword: oldPassword,
		NewPassword: newPassword,
		TotpCode:    totpCode,
	}, key)
	if err != nil {
		return fmt.Errorf("encrypt change password payload: %w", err)
	}

	req, err = c.signedRequest(ctx, "/api/user/changePwd")
	if err != nil {
		return err
	}
	resp, err = req.SetBody(models.ChangePasswordRequest{EncryptedPayload: payload}).Put("/api/user/changePwd")
	if err != nil {
		return fmt.Errorf("change password request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	c.mu.Lock()
	c.contentKey = crypto.DeriveKeyIV(newPassword)
	c.mu.Unlock()
	return nil
}

func (c *httpVaultClient) Notices(ctx context.Context) ([]models.Notice, error) {
	req, err := c.signedRequest(ctx, "/api/notice")
	if err != nil {
		return nil, err
	}

	var notices []models.Notice
	resp, err := req.SetResult(&notices).Get("/api/notice")
	if err != nil {
		return nil, fmt.Errorf("notices request: %w", err)
	}
	return notices, mapHTTPError(resp)
}

// signedRequest prepares a request for path carrying the bearer token and
// the replay headers. path must be the exact request URI sent.
func (c *httpVaultClient) signedRequest(ctx context.Context, path string) (*resty.Request, error) {
	c.mu.RLock()
	token, secret := c.token, c.replaySecret
	c.mu.RUnlock()

	if token == "" {
		return nil, ErrNotLoggedIn
	}

	nonce := c.nonces.Generate()
	ts := strconv.FormatInt(c.now().UnixMilli(), 10)

	return c.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetHeader(models.HeaderReplayTimestamp, ts).
		SetHeader(models.HeaderReplayNonce, nonce).
		SetHeader(models.HeaderReplaySignature, crypto.SignReplay(path, nonce, ts, secret)), nil
}
