package service

import (
	"context"

	"github.com/MKhiriev/go-cert-keeper/models"
)

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetGlobalInfo(ctx context.Context) (models.GlobalInfo, error)
}

// ChallengeService issues single-use values keyed by purpose. A value can be
// popped at most once and is gone after its TTL.
type ChallengeService interface {
	Issue(purpose string) (string, error)
	Stash(purpose, value string)
	Pop(purpose string) (string, bool)
}

// LockoutService tracks failed logins of the current calendar day for the
// whole deployment.
type LockoutService interface {
	RecordFailure(ctx context.Context, ip string) models.LockoutStatus
	Clear()
	Status() models.LockoutStatus
	IsLocked() bool
}

type NoticeService interface {
	// Report persists and logs a security notice. An empty IP is taken from
	// the request context and an empty location is resolved from the IP.
	// Failures are logged, never returned.
	Report(ctx context.Context, notice models.Notice)
	List(ctx context.Context) ([]models.Notice, error)
	MarkAllRead(ctx context.Context) error
	HasUnread(ctx context.Context) (bool, error)
}

type SessionService interface {
	// Start mints a session and supersedes every other one.
	Start(ctx context.Context) (sessionID string, grant models.Grant, err error)
	// Resolve maps a bearer token to its live session.
	Resolve(ctx context.Context, token string) (*models.Session, error)
	End(ctx context.Context, sessionID string)

	Unlock(sessionID string, groupID int64) error
	// Forget drops groupID from every session's unlocked set.
	Forget(groupID int64)
	IsGroupUnlocked(sessionID string, group models.Group) bool

	// VerifyReplay checks the replay headers of a request made inside
	// sessionID against url, the exact request URI.
	VerifyReplay(sessionID, url, nonce, timestamp, signature string) error
}

type TotpService interface {
	IssueEnrollment(ctx context.Context) (models.TotpEnrollment, error)
	ConfirmEnrollment(ctx context.Context, code string) error
	RequireRemove(ctx context.Context) (string, error)
	RemoveEnrollment(ctx context.Context, req models.TotpRemoveRequest) error
	// Verify checks code against the secret bound to account.
	Verify(ctx context.Context, account models.Account, code string) error
}

type GroupService interface {
	List(ctx context.Context, sessionID string) ([]models.GroupView, error)
	Create(ctx context.Context, name string) (models.GroupView, error)
	// UpdateLock and Delete require the group to be unlocked in sessionID.
	UpdateLock(ctx context.Context, sessionID string, id int64, lock models.GroupLock) error
	SetDefault(ctx context.Context, id int64) error
	Delete(ctx context.Context, sessionID string, id int64) (newDefaultID int64, err error)

	RequireUnlock(ctx context.Context, id int64) (models.GroupChallenge, error)
	Unlock(ctx context.Context, sessionID string, id int64, proof string) error
	// EnsureUnlocked returns the group when sessionID may read it, or
	// [ErrGroupLocked].
	EnsureUnlocked(ctx context.Context, sessionID string, groupID int64) (models.Group, error)
}

// CertificateService gates every certificate operation behind the unlock
// state of the owning group.
type CertificateService interface {
	ListByGroup(ctx context.Context, sessionID string, groupID int64) ([]models.Certificate, error)
	Get(ctx context.Context, sessionID string, id int64) (models.Certificate, error)
	Create(ctx context.Context, sessionID string, cert models.Certificate) (models.Certificate, error)
	Update(ctx context.Context, sessionID string, cert models.Certificate) error
	Delete(ctx context.Context, sessionID string, id int64) error
}

type AuthService interface {
	CreateAdmin(ctx context.Context, req models.CreateAdminRequest) error
	RequireLogin(ctx context.Context) (models.LoginChallenge, error)
	Login(ctx context.Context, attempt models.LoginAttempt) (models.LoginResponse, error)
	Logout(ctx context.Context, sessionID string) error

	RequireChangePassword(ctx context.Context) (string, error)
	// ChangePassword decrypts req with the key bound to token, verifies the
	// old password and re-encrypts every certificate under the new one.
	ChangePassword(ctx context.Context, token string, req models.ChangePasswordRequest) error
	UpdatePwdGenPrefs(ctx context.Context, prefs models.PwdGenPrefs) error
}
