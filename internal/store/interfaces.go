package store

import (
	"context"

	"github.com/MKhiriev/go-cert-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// AccountRepository persists the singleton administrator account.
type AccountRepository interface {
	// Count returns the number of account rows (0 or 1).
	Count(ctx context.Context) (int, error)
	// Get returns the account or [ErrAccountNotFound].
	Get(ctx context.Context) (models.Account, error)
	// CreateWithDefaultGroup inserts the account and its first group in one
	// transaction. It fails with [ErrAccountAlreadyExists] when an account
	// is present.
	CreateWithDefaultGroup(ctx context.Context, account models.Account, groupName string) (models.Account, error)
	UpdateLocation(ctx context.Context, location string) error
	// SetTotpSecret stores the sealed TOTP secret; "" unbinds it.
	SetTotpSecret(ctx context.Context, sealedSecret string) error
	SetDefaultGroup(ctx context.Context, groupID int64) error
	UpdatePwdGenPrefs(ctx context.Context, prefs models.PwdGenPrefs) error
	// RotatePassword writes every re-encrypted certificate and the new
	// password hash and salt atomically.
	RotatePassword(ctx context.Context, rotation models.PasswordRotation) error
}

// GroupRepository persists certificate groups and their lock state.
type GroupRepository interface {
	List(ctx context.Context) ([]models.Group, error)
	ListByLockType(ctx context.Context, lockType models.LockType) ([]models.Group, error)
	Get(ctx context.Context, id int64) (models.Group, error)
	Create(ctx context.Context, name string, lock models.GroupLock) (models.Group, error)
	UpdateLock(ctx context.Context, id int64, lock models.GroupLock) error
	// Delete removes the group and its certificates. When the group was the
	// account default, the default moves to the oldest remaining group,
	// which is returned. Deleting the last group fails with [ErrLastGroup].
	Delete(ctx context.Context, id int64) (newDefaultID int64, err error)
}

// CertificateRepository persists encrypted certificates.
type CertificateRepository interface {
	ListByGroup(ctx context.Context, groupID int64) ([]models.Certificate, error)
	ListAll(ctx context.Context) ([]models.Certificate, error)
	Get(ctx context.Context, id int64) (models.Certificate, error)
	Create(ctx context.Context, cert models.Certificate) (models.Certificate, error)
	Update(ctx context.Context, cert models.Certificate) error
	Delete(ctx context.Context, id int64) error
}

// NoticeRepository persists security notices.
type NoticeRepository interface {
	Create(ctx context.Context, notice models.Notice) (models.Notice, error)
	List(ctx context.Context) ([]models.Notice, error)
	MarkAllRead(ctx context.Context) error
	HasUnread(ctx context.Context) (bool, error)
}
