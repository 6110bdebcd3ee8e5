package store

import (
	"database/sql/driver"
	"errors"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-cert-keeper/internal/logger"
	"github.com/MKhiriev/go-cert-keeper/models"
)

func newTestGroupRepo(t *testing.T) (GroupRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	return NewGroupRepository(newDBFromSQL(db), logger.Nop()), mock
}

var groupRowColumns = []string{"id", "name", "lock_type", "password_hash", "password_salt"}

func TestGroupRepository_List(t *testing.T) {
	repo, mock := newTestGroupRepo(t)

	mock.ExpectQuery(`SELECT id, name, lock_type, password_hash, password_salt FROM cert_groups ORDER BY id`).
		WillReturnRows(sqlmock.NewRows(groupRowColumns).
			AddRow(1, "Default", "None", nil, nil).
			AddRow(2, "Banking", "Password", "GHASH", "gsalt").
			AddRow(3, "Work", "Totp", nil, nil))

	groups, err := repo.List(testContext())
	require.NoError(t, err)
	require.Len(t, groups, 3)

	assert.Equal(t, models.NoLock(), groups[0].Lock)
	assert.Equal(t, models.NewPasswordLock("GHASH", "gsalt"), groups[1].Lock)
	assert.Equal(t, models.TotpLock(), groups[2].Lock)
}

func TestGroupRepository_ListByLockType(t *testing.T) {
	repo, mock := newTestGroupRepo(t)

	mock.ExpectQuery(`SELECT (.+) FROM cert_groups WHERE lock_type = \$1 ORDER BY id`).
		WithArgs("Totp").
		WillReturnRows(sqlmock.NewRows(groupRowColumns).AddRow(3, "Work", "Totp", nil, nil))

	groups, err := repo.ListByLockType(testContext(), models.LockTotp)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "Work", groups[0].Name)
}

func TestGroupRepository_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := newTestGroupRepo(t)
		mock.ExpectQuery(`SELECT (.+) FROM cert_groups WHERE id = \$1`).
			WithArgs(int64(2)).
			WillReturnRows(sqlmock.NewRows(groupRowColumns).AddRow(2, "Banking", "None", nil, nil))

		g, err := repo.Get(testContext(), 2)
		require.NoError(t, err)
		assert.Equal(t, int64(2), g.ID)
	})

	t.Run("missing", func(t *testing.T) {
		repo, mock := newTestGroupRepo(t)
		mock.ExpectQuery(`SELECT (.+) FROM cert_groups WHERE id = \$1`).
			WithArgs(int64(9)).
			WillReturnRows(sqlmock.NewRows(groupRowColumns))

		_, err := repo.Get(testContext(), 9)
		require.ErrorIs(t, err, ErrGroupNotFound)
	})

	t.Run("query error", func(t *testing.T) {
		repo, mock := newTestGroupRepo(t)
		mock.ExpectQuery(`SELECT (.+) FROM cert_groups`).WillReturnError(errors.New("boom"))

		_, err := repo.Get(testContext(), 1)
		require.ErrorIs(t, err, ErrExecutingQuery)
	})
}

func TestGroupRepository_Create(t *testing.T) {
	t.Run("password lock stores material", func(t *testing.T) {
		repo, mock := newTestGroupRepo(t)
		mock.ExpectQuery(`INSERT INTO cert_groups`).
			WithArgs("Banking", "Password", "GHASH", "gsalt").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(4))

		g, err := repo.Create(testContext(), "Banking", models.NewPasswordLock("GHASH", "gsalt"))
		require.NoError(t, err)
		assert.Equal(t, int64(4), g.ID)
		assert.Equal(t, models.LockPassword, g.Lock.Type)
	})

	t.Run("duplicate name", func(t *testing.T) {
		repo, mock := newTestGroupRepo(t)
		mock.ExpectQuery(`INSERT INTO cert_groups`).
			WillReturnError(pgError(pgerrcode.UniqueViolation))

		_, err := repo.Create(testContext(), "Default", models.NoLock())
		require.ErrorIs(t, err, ErrGroupNameTaken)
	})
}

func TestGroupRepository_UpdateLock(t *testing.T) {
	tests := []struct {
		name     string
		lock     models.GroupLock
		args     []driver.Value
		affected int64
		wantErr  error
	}{
		{
			name:     "to password",
			lock:     models.NewPasswordLock("H", "S"),
			args:     []driver.Value{"Password", "H", "S", int64(5)},
			affected: 1,
		},
		{
			name:     "away from password clears material",
			lock:     models.TotpLock(),
			args:     []driver.Value{"Totp", nil, nil, int64(5)},
			affected: 1,
		},
		{
			name:     "missing group",
			lock:     models.NoLock(),
			args:     []driver.Value{"None", nil, nil, int64(5)},
			affected: 0,
			wantErr:  ErrGroupNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestGroupRepo(t)

			mock.ExpectExec(`UPDATE cert_groups SET lock_type = \$1, password_hash = \$2, password_salt = \$3 WHERE id = \$4`).
				WithArgs(tt.args...).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			err := repo.UpdateLock(testContext(), 5, tt.lock)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestGroupRepository_Delete(t *testing.T) {
	idRows := func(ids ...int64) *sqlmock.Rows {
		rows := sqlmock.NewRows([]string{"id"})
		for _, id := range ids {
			rows.AddRow(id)
		}
		return rows
	}

	t.Run("default group moves to oldest remaining", func(t *testing.T) {
		repo, mock := newTestGroupRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT id FROM cert_groups ORDER BY id`).WillReturnRows(idRows(1, 2, 3))
		mock.ExpectExec(`DELETE FROM certificates WHERE group_id = \$1`).
			WithArgs(int64(1)).WillReturnResult(sqlmock.NewResult(0, 4))
		mock.ExpectExec(`DELETE FROM cert_groups WHERE id = \$1`).
			WithArgs(int64(1)).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`UPDATE accounts SET default_group_id = \$1 WHERE default_group_id = \$2`).
			WithArgs(int64(2), int64(1)).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		newDefault, err := repo.Delete(testContext(), 1)
		require.NoError(t, err)
		assert.Equal(t, int64(2), newDefault)
	})

	t.Run("non default group keeps default", func(t *testing.T) {
		repo, mock := newTestGroupRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT id FROM cert_groups`).WillReturnRows(idRows(1, 2))
		mock.ExpectExec(`DELETE FROM certificates`).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectExec(`DELETE FROM cert_groups`).WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`UPDATE accounts`).
			WithArgs(int64(1), int64(2)).WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		newDefault, err := repo.Delete(testContext(), 2)
		require.NoError(t, err)
		assert.Zero(t, newDefault)
	})

	t.Run("last group is protected", func(t *testing.T) {
		repo, mock := newTestGroupRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT id FROM cert_groups`).WillReturnRows(idRows(1))
		mock.ExpectRollback()

		_, err := repo.Delete(testContext(), 1)
		require.ErrorIs(t, err, ErrLastGroup)
	})

	t.Run("unknown group", func(t *testing.T) {
		repo, mock := newTestGroupRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT id FROM cert_groups`).WillReturnRows(idRows(1, 2))
		mock.ExpectRollback()

		_, err := repo.Delete(testContext(), 7)
		require.ErrorIs(t, err, ErrGroupNotFound)
	})

	t.Run("failure mid transaction rolls back", func(t *testing.T) {
		repo, mock := newTestGroupRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT id FROM cert_groups`).WillReturnRows(idRows(1, 2))
		mock.ExpectExec(`DELETE FROM certificates`).WillReturnError(errors.New("io"))
		mock.ExpectRollback()

		_, err := repo.Delete(testContext(), 2)
		require.ErrorIs(t, err, ErrExecutingStatement)
	})
}
