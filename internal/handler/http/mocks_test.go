package http

import (
	"context"

	"github.com/MKhiriev/go-cert-keeper/models"
)

// Hand-written service fakes. Each method delegates to its fn field; an unset
// field panics, which fails the test that reached it unexpectedly.

type mockAppInfoService struct {
	version      string
	globalInfoFn func(ctx context.Context) (models.GlobalInfo, error)
}

func (m *mockAppInfoService) GetAppVersion(context.Context) string {
	return m.version
}

func (m *mockAppInfoService) GetGlobalInfo(ctx context.Context) (models.GlobalInfo, error) {
	return m.globalInfoFn(ctx)
}

type mockAuthService struct {
	createAdminFn           func(ctx context.Context, req models.CreateAdminRequest) error
	requireLoginFn          func(ctx context.Context) (models.LoginChallenge, error)
	loginFn                 func(ctx context.Context, attempt models.LoginAttempt) (models.LoginResponse, error)
	logoutFn                func(ctx context.Context, sessionID string) error
	requireChangePasswordFn func(ctx context.Context) (string, error)
	changePasswordFn        func(ctx context.Context, token string, req models.ChangePasswordRequest) error
	updatePwdGenPrefsFn     func(ctx context.Context, prefs models.PwdGenPrefs) error
}

func (m *mockAuthService) CreateAdmin(ctx context.Context, req models.CreateAdminRequest) error {
	return m.createAdminFn(ctx, req)
}

func (m *mockAuthService) RequireLogin(ctx context.Context) (models.LoginChallenge, error) {
	return m.requireLoginFn(ctx)
}

func (m *mockAuthService) Login(ctx context.Context, attempt models.LoginAttempt) (models.LoginResponse, error) {
	return m.loginFn(ctx, attempt)
}

func (m *mockAuthService) Logout(ctx context.Context, sessionID string) error {
	return m.logoutFn(ctx, sessionID)
}

func (m *mockAuthService) RequireChangePassword(ctx context.Context) (string, error) {
	return m.requireChangePasswordFn(ctx)
}

func (m *mockAuthService) ChangePassword(ctx context.Context, token string, req models.ChangePasswordRequest) error {
	return m.changePasswordFn(ctx, token, req)
}

func (m *mockAuthService) UpdatePwdGenPrefs(ctx context.Context, prefs models.PwdGenPrefs) error {
	return m.updatePwdGenPrefsFn(ctx, prefs)
}

type mockSessionService struct {
	startFn           func(ctx context.Context) (string, models.Grant, error)
	resolveFn         func(ctx context.Context, token string) (*models.Session, error)
	endFn             func(ctx context.Context, sessionID string)
	unlockFn          func(sessionID string, groupID int64) error
	forgetFn          func(groupID int64)
	isGroupUnlockedFn func(sessionID string, group models.Group) bool
	verifyReplayFn    func(sessionID, url, nonce, timestamp, signature string) error
}

func (m *mockSessionService) Start(ctx context.Context) (string, models.Grant, error) {
	return m.startFn(ctx)
}

func (m *mockSessionService) Resolve(ctx context.Context, token string) (*models.Session, error) {
	return m.resolveFn(ctx, token)
}

func (m *mockSessionService) End(ctx context.Context, sessionID string) {
	m.endFn(ctx, sessionID)
}

func (m *mockSessionService) Unlock(sessionID string, groupID int64) error {
	return m.unlockFn(sessionID, groupID)
}

func (m *mockSessionService) Forget(groupID int64) {
	m.forgetFn(groupID)
}

func (m *mockSessionService) IsGroupUnlocked(sessionID string, group models.Group) bool {
	return m.isGroupUnlockedFn(sessionID, group)
}

func (m *mockSessionService) VerifyReplay(sessionID, url, nonce, timestamp, signature string) error {
	return m.verifyReplayFn(sessionID, url, nonce, timestamp, signature)
}

type mockLockoutService struct {
	locked bool
	status models.LockoutStatus
}

func (m *mockLockoutService) RecordFailure(context.Context, string) models.LockoutStatus {
	return m.status
}

func (m *mockLockoutService) Clear() {}

func (m *mockLockoutService) Status() models.LockoutStatus {
	return m.status
}

func (m *mockLockoutService) IsLocked() bool {
	return m.locked
}

type mockNoticeService struct {
	listFn        func(ctx context.Context) ([]models.Notice, error)
	markAllReadFn func(ctx context.Context) error
}

func (m *mockNoticeService) Report(context.Context, models.Notice) {}

func (m *mockNoticeService) List(ctx context.Context) ([]models.Notice, error) {
	return m.listFn(ctx)
}

func (m *mockNoticeService) MarkAllRead(ctx context.Context) error {
	return m.markAllReadFn(ctx)
}

func (m *mockNoticeService) HasUnread(context.Context) (bool, error) {
	return false, nil
}

type mockTotpService struct {
	issueEnrollmentFn   func(ctx context.Context) (models.TotpEnrollment, error)
	confirmEnrollmentFn func(ctx context.Context, code string) error
	requireRemoveFn     func(ctx context.Context) (string, error)
	removeEnrollmentFn  func(ctx context.Context, req models.TotpRemoveRequest) error
}

func (m *mockTotpService) IssueEnrollment(ctx context.Context) (models.TotpEnrollment, error) {
	return m.issueEnrollmentFn(ctx)
}

func (m *mockTotpService) ConfirmEnrollment(ctx context.Context, code string) error {
	return m.confirmEnrollmentFn(ctx, code)
}

func (m *mockTotpService) RequireRemove(ctx context.Context) (string, error) {
	return m.requireRemoveFn(ctx)
}

func (m *mockTotpService) RemoveEnrollment(ctx context.Context, req models.TotpRemoveRequest) error {
	return m.removeEnrollmentFn(ctx, req)
}

func (m *mockTotpService) Verify(context.Context, models.Account, string) error {
	return nil
}

type mockGroupService struct {
	listFn           func(ctx context.Context, sessionID string) ([]models.GroupView, error)
	createFn         func(ctx context.Context, name string) (models.GroupView, error)
	updateLockFn     func(ctx context.Context, sessionID string, id int64, lock models.GroupLock) error
	setDefaultFn     func(ctx context.Context, id int64) error
	deleteFn         func(ctx context.Context, sessionID string, id int64) (int64, error)
	requireUnlockFn  func(ctx context.Context, id int64) (models.GroupChallenge, error)
	unlockFn         func(ctx context.Context, sessionID string, id int64, proof string) error
	ensureUnlockedFn func(ctx context.Context, sessionID string, groupID int64) (models.Group, error)
}

func (m *mockGroupService) List(ctx context.Context, sessionID string) ([]models.GroupView, error) {
	return m.listFn(ctx, sessionID)
}

func (m *mockGroupService) Create(ctx context.Context, name string) (models.GroupView, error) {
	return m.createFn(ctx, name)
}

func (m *mockGroupService) UpdateLock(ctx context.Context, sessionID string, id int64, lock models.GroupLock) error {
	return m.updateLockFn(ctx, sessionID, id, lock)
}

func (m *mockGroupService) SetDefault(ctx context.Context, id int64) error {
	return m.setDefaultFn(ctx, id)
}

func (m *mockGroupService) Delete(ctx context.Context, sessionID string, id int64) (int64, error) {
	return m.deleteFn(ctx, sessionID, id)
}

func (m *mockGroupService) RequireUnlock(ctx context.Context, id int64) (models.GroupChallenge, error) {
	return m.requireUnlockFn(ctx, id)
}

func (m *mockGroupService) Unlock(ctx context.Context, sessionID string, id int64, proof string) error {
	return m.unlockFn(ctx, sessionID, id, proof)
}

func (m *mockGroupService) EnsureUnlocked(ctx context.Context, sessionID string, groupID int64) (models.Group, error) {
	return m.ensureUnlockedFn(ctx, sessionID, groupID)
}

type mockCertificateService struct {
	listByGroupFn func(ctx context.Context, sessionID string, groupID int64) ([]models.Certificate, error)
	getFn         func(ctx context.Context, sessionID string, id int64) (models.Certificate, error)
	createFn      func(ctx context.Context, sessionID string, cert models.Certificate) (models.Certificate, error)
	updateFn      func(ctx context.Context, sessionID string, cert models.Certificate) error
	deleteFn      func(ctx context.Context, sessionID string, id int64) error
}

func (m *mockCertificateService) ListByGroup(ctx context.Context, sessionID string, groupID int64) ([]models.Certificate, error) {
	return m.listByGroupFn(ctx, sessionID, groupID)
}

func (m *mockCertificateService) Get(ctx context.Context, sessionID string, id int64) (models.Certificate, error) {
	return m.getFn(ctx, sessionID, id)
}

func (m *mockCertificateService) Create(ctx context.Context, sessionID string, cert models.Certificate) (models.Certificate, error) {
	return m.createFn(ctx, sessionID, cert)
}

func (m *mockCertificateService) Update(ctx context.Context, sessionID string, cert models.Certificate) error {
	return m.updateFn(ctx, sessionID, cert)
}

func (m *mockCertificateService) Delete(ctx context.Context, sessionID string, id int64) error {
	return m.deleteFn(ctx, sessionID, id)
}
