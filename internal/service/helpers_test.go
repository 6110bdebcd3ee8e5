package service

import (
	"context"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-cert-keeper/internal/config"
	"github.com/MKhiriev/go-cert-keeper/internal/crypto"
	"github.com/MKhiriev/go-cert-keeper/internal/logger"
	"github.com/MKhiriev/go-cert-keeper/internal/mock"
	"github.com/MKhiriev/go-cert-keeper/internal/store"
	"github.com/MKhiriev/go-cert-keeper/models"
)

const (
	testPassword = "correct horse battery staple"
	testSalt     = "5f1d0a9c2b7e4d3a"
	homeIP       = "198.51.100.7"
	homeLocation = "DE Berlin Berlin"
)

// ─────────────────────────────────────────────
// Clock
// ─────────────────────────────────────────────

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// ─────────────────────────────────────────────
// In-memory repositories
// ─────────────────────────────────────────────

type fakeVault struct {
	mu       sync.Mutex
	account  *models.Account
	groups   map[int64]models.Group
	certs    map[int64]models.Certificate
	nextID   int64
	rotateFn func(models.PasswordRotation) error
}

func newFakeVault() *fakeVault {
	return &fakeVault{
		groups: make(map[int64]models.Group),
		certs:  make(map[int64]models.Certificate),
	}
}

func (v *fakeVault) id() int64 {
	v.nextID++
	return v.nextID
}

type fakeAccounts struct{ v *fakeVault }

func (r fakeAccounts) Count(_ context.Context) (int, error) {
	r.v.mu.Lock()
	defer r.v.mu.Unlock()
	if r.v.account == nil {
		return 0, nil
	}
	return 1, nil
}

func (r fakeAccounts) Get(_ context.Context) (models.Account, error) {
	r.v.mu.Lock()
	defer r.v.mu.Unlock()
	if r.v.account == nil {
		return models.Account{}, store.ErrAccountNotFound
	}
	return *r.v.account, nil
}

func (r fakeAccounts) CreateWithDefaultGroup(_ context.Context, account models.Account, groupName string) (models.Account, error) {
	r.v.mu.Lock()
	defer r.v.mu.Unlock()
	if r.v.account != nil {
		return models.Account{}, store.ErrAccountAlreadyExists
	}
	g := models.Group{ID: r.v.id(), Name: groupName, Lock: models.NoLock()}
	r.v.groups[g.ID] = g
	account.ID = r.v.id()
	account.DefaultGroupID = g.ID
	r.v.account = &account
	return account, nil
}

func (r fakeAccounts) update(fn func(a *models.Account)) error {
	r.v.mu.Lock()
	defer r.v.mu.Unlock()
	if r.v.account == nil {
		return store.ErrAccountNotFound
	}
	fn(r.v.account)
	return nil
}

func (r fakeAccounts) UpdateLocation(_ context.Context, location string) error {
	return r.update(func(a *models.Account) { a.CommonLocation = location })
}

func (r fakeAccounts) SetTotpSecret(_ context.Context, sealed string) error {
	return r.update(func(a *models.Account) { a.TotpSecret = sealed })
}

func (r fakeAccounts) SetDefaultGroup(_ context.Context, groupID int64) error {
	return r.update(func(a *models.Account) { a.DefaultGroupID = groupID })
}

func (r fakeAccounts) UpdatePwdGenPrefs(_ context.Context, prefs models.PwdGenPrefs) error {
	return r.update(func(a *models.Account) { a.PwdGenPrefs = prefs })
}

func (r fakeAccounts) RotatePassword(_ context.Context, rotation models.PasswordRotation) error {
	r.v.mu.Lock()
	defer r.v.mu.Unlock()
	if r.v.rotateFn != nil {
		if err := r.v.rotateFn(rotation); err != nil {
			return err
		}
	}
	for _, c := range rotation.Certificates {
		if _, ok := r.v.certs[c.ID]; !ok {
			return store.ErrCertificateNotFound
		}
	}
	for _, c := range rotation.Certificates {
		r.v.certs[c.ID] = c
	}
	r.v.account.PasswordHash = rotation.PasswordHash
	r.v.account.PasswordSalt = rotation.PasswordSalt
	return nil
}

type fakeGroups struct{ v *fakeVault }

func (r fakeGroups) sorted(filter func(models.Group) bool) []models.Group {
	out := make([]models.Group, 0, len(r.v.groups))
	for _, g := range r.v.groups {
		if filter(g) {
			out = append(out, g)
		}
	}
	slices.SortFunc(out, func(a, b models.Group) int { return int(a.ID - b.ID) })
	return out
}

func (r fakeGroups) List(_ context.Context) ([]models.Group, error) {
	r.v.mu.Lock()
	defer r.v.mu.Unlock()
	return r.sorted(func(models.Group) bool { return true }), nil
}

func (r fakeGroups) ListByLockType(_ context.Context, lockType models.LockType) ([]models.Group, error) {
	r.v.mu.Lock()
	defer r.v.mu.Unlock()
	return r.sorted(func(g models.Group) bool { return g.Lock.Type == lockType }), nil
}

func (r fakeGroups) Get(_ context.Context, id int64) (models.Group, error) {
	r.v.mu.Lock()
	defer r.v.mu.Unlock()
	g, ok := r.v.groups[id]
	if !ok {
		return models.Group{}, store.ErrGroupNotFound
	}
	return g, nil
}

func (r fakeGroups) Create(_ context.Context, name string, lock models.GroupLock) (models.Group, error) {
	r.v.mu.Lock()
	defer r.v.mu.Unlock()
	for _, g := range r.v.groups {
		if g.Name == name {
			return models.Group{}, store.ErrGroupNameTaken
		}
	}
	g := models.Group{ID: r.v.id(), Name: name, Lock: lock}
	r.v.groups[g.ID] = g
	return g, nil
}

func (r fakeGroups) UpdateLock(_ context.Context, id int64, lock models.GroupLock) error {
	r.v.mu.Lock()
	defer r.v.mu.Unlock()
	g, ok := r.v.groups[id]
	if !ok {
		return store.ErrGroupNotFound
	}
	g.Lock = lock
	r.v.groups[id] = g
	return nil
}

func (r fakeGroups) Delete(_ context.Context, id int64) (int64, error) {
	r.v.mu.Lock()
	defer r.v.mu.Unlock()
	if _, ok := r.v.groups[id]; !ok {
		return 0, store.ErrGroupNotFound
	}
	if len(r.v.groups) == 1 {
		return 0, store.ErrLastGroup
	}
	delete(r.v.groups, id)
	for cid, c := range r.v.certs {
		if c.GroupID == id {
			delete(r.v.certs, cid)
		}
	}
	if r.v.account.DefaultGroupID == id {
		r.v.account.DefaultGroupID = r.sorted(func(models.Group) bool { return true })[0].ID
	}
	return r.v.account.DefaultGroupID, nil
}

type fakeCertificates struct{ v *fakeVault }

func (r fakeCertificates) ListByGroup(_ context.Context, groupID int64) ([]models.Certificate, error) {
	r.v.mu.Lock()
	defer r.v.mu.Unlock()
	var out []models.Certificate
	for _, c := range r.v.certs {
		if c.GroupID == groupID {
			out = append(out, c)
		}
	}
	slices.SortFunc(out, func(a, b models.Certificate) int { return int(a.ID - b.ID) })
	return out, nil
}

func (r fakeCertificates) ListAll(_ context.Context) ([]models.Certificate, error) {
	r.v.mu.Lock()
	defer r.v.mu.Unlock()
	out := make([]models.Certificate, 0, len(r.v.certs))
	for _, c := range r.v.certs {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b models.Certificate) int { return int(a.ID - b.ID) })
	return out, nil
}

func (r fakeCertificates) Get(_ context.Context, id int64) (models.Certificate, error) {
	r.v.mu.Lock()
	defer r.v.mu.Unlock()
	c, ok := r.v.certs[id]
	if !ok {
		return models.Certificate{}, store.ErrCertificateNotFound
	}
	return c, nil
}

func (r fakeCertificates) Create(_ context.Context, cert models.Certificate) (models.Certificate, error) {
	r.v.mu.Lock()
	defer r.v.mu.Unlock()
	if _, ok := r.v.groups[cert.GroupID]; !ok {
		return models.Certificate{}, store.ErrGroupNotFound
	}
	cert.ID = r.v.id()
	r.v.certs[cert.ID] = cert
	return cert, nil
}

func (r fakeCertificates) Update(_ context.Context, cert models.Certificate) error {
	r.v.mu.Lock()
	defer r.v.mu.Unlock()
	if _, ok := r.v.certs[cert.ID]; !ok {
		return store.ErrCertificateNotFound
	}
	r.v.certs[cert.ID] = cert
	return nil
}

func (r fakeCertificates) Delete(_ context.Context, id int64) error {
	r.v.mu.Lock()
	defer r.v.mu.Unlock()
	if _, ok := r.v.certs[id]; !ok {
		return store.ErrCertificateNotFound
	}
	delete(r.v.certs, id)
	return nil
}

// ─────────────────────────────────────────────
// Harness
// ─────────────────────────────────────────────

type harness struct {
	t        *testing.T
	clock    *fakeClock
	vault    *fakeVault
	geo      *mock.MockGeoLocator
	notices  *mock.MockNoticeRepository
	services *Services

	mu        sync.Mutex
	locations map[string]string
	reported  []models.Notice
}

func testConfig() *config.StructuredConfig {
	return &config.StructuredConfig{
		App: config.App{
			Name:          "go-cert-keeper",
			Version:       "test",
			TokenSignKey:  "sign-key",
			TokenIssuer:   "go-cert-keeper",
			TokenDuration: time.Hour,
			SecretKey:     "server-secret",
		},
		Security: config.Security{
			LoginChallengeTTL:  10 * time.Second,
			ChallengeTTL:       60 * time.Second,
			TotpEnrollTTL:      5 * time.Minute,
			ReplayWindow:       60 * time.Second,
			LockoutThreshold:   3,
			SessionIdleTimeout: 30 * time.Minute,
		},
	}
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	ctrl := gomock.NewController(t)
	h := &harness{
		t:         t,
		clock:     newFakeClock(),
		vault:     newFakeVault(),
		geo:       mock.NewMockGeoLocator(ctrl),
		notices:   mock.NewMockNoticeRepository(ctrl),
		locations: map[string]string{homeIP: homeLocation},
	}

	h.geo.EXPECT().Locate(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, ip string) string {
		h.mu.Lock()
		defer h.mu.Unlock()
		if loc, ok := h.locations[ip]; ok {
			return loc
		}
		return "Unknown"
	}).AnyTimes()

	h.notices.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, n models.Notice) (models.Notice, error) {
		h.mu.Lock()
		defer h.mu.Unlock()
		n.ID = int64(len(h.reported) + 1)
		h.reported = append(h.reported, n)
		return n, nil
	}).AnyTimes()
	h.notices.EXPECT().HasUnread(gomock.Any()).DoAndReturn(func(_ context.Context) (bool, error) {
		h.mu.Lock()
		defer h.mu.Unlock()
		return len(h.reported) > 0, nil
	}).AnyTimes()

	sealer, err := crypto.NewSealer("server-secret")
	require.NoError(t, err)

	storages := &store.Storages{
		Accounts:     fakeAccounts{h.vault},
		Groups:       fakeGroups{h.vault},
		Certificates: fakeCertificates{h.vault},
		Notices:      h.notices,
	}

	h.services, err = NewServices(storages, h.geo, sealer, testConfig(), logger.Nop(), WithClock(h.clock.Now))
	require.NoError(t, err)
	return h
}

func (h *harness) setLocation(ip, location string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.locations[ip] = location
}

// noticeLevels returns the levels of every reported notice in order.
func (h *harness) noticeLevels() []models.NoticeLevel {
	h.mu.Lock()
	defer h.mu.Unlock()
	levels := make([]models.NoticeLevel, 0, len(h.reported))
	for _, n := range h.reported {
		levels = append(levels, n.Level)
	}
	return levels
}

func (h *harness) lastNotice() models.Notice {
	h.mu.Lock()
	defer h.mu.Unlock()
	require.NotEmpty(h.t, h.reported)
	return h.reported[len(h.reported)-1]
}

func (h *harness) bootstrap() {
	h.t.Helper()
	err := h.services.AuthService.CreateAdmin(context.Background(), models.CreateAdminRequest{
		Proof: crypto.Hash(testSalt + testPassword),
		Salt:  testSalt,
	})
	require.NoError(h.t, err)
}

// login runs requireLogin and login the way the client does.
func (h *harness) login(password, ip, code string) (models.LoginResponse, error) {
	h.t.Helper()
	ctx := context.Background()

	challenge, err := h.services.AuthService.RequireLogin(ctx)
	require.NoError(h.t, err)

	proof := crypto.ProofFor(crypto.Hash(challenge.Salt+password), challenge.Challenge)
	return h.services.AuthService.Login(ctx, models.LoginAttempt{
		LoginRequest: models.LoginRequest{Proof: proof, TotpCode: code},
		IP:           ip,
	})
}

// session logs in from the home address and returns the session ID.
func (h *harness) session() string {
	h.t.Helper()
	resp, err := h.login(testPassword, homeIP, "")
	require.NoError(h.t, err)

	s, err := h.services.SessionService.Resolve(context.Background(), resp.Token)
	require.NoError(h.t, err)
	return s.ID
}

// bindTotp enrolls an authenticator and returns its secret.
func (h *harness) bindTotp() string {
	h.t.Helper()
	ctx := context.Background()

	enrollment, err := h.services.TotpService.IssueEnrollment(ctx)
	require.NoError(h.t, err)
	require.False(h.t, enrollment.Registered)

	key, err := otp.NewKeyFromURL(enrollment.URI)
	require.NoError(h.t, err)

	require.NoError(h.t, h.services.TotpService.ConfirmEnrollment(ctx, h.code(key.Secret())))
	return key.Secret()
}

func (h *harness) code(secret string) string {
	h.t.Helper()
	code, err := totp.GenerateCodeCustom(secret, h.clock.Now(), totpValidateOpts)
	require.NoError(h.t, err)
	return code
}

func (h *harness) defaultGroupID() int64 {
	h.t.Helper()
	account, err := fakeAccounts{h.vault}.Get(context.Background())
	require.NoError(h.t, err)
	return account.DefaultGroupID
}
