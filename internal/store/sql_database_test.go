package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-cert-keeper/internal/config"
	"github.com/MKhiriev/go-cert-keeper/internal/logger"
)

func TestNewConnect_UnsupportedDriver(t *testing.T) {
	_, err := NewConnect(context.Background(), config.DB{Driver: "mysql"}, logger.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mysql")
}

func TestDB_Placeholders(t *testing.T) {
	db, _ := newTestDB(t)

	pg := newDB(db, config.DriverPostgres, nil, logger.Nop())
	query, _, err := buildGetAccountQuery(pg.builder).ToSql()
	require.NoError(t, err)
	assert.Contains(t, query, "LIMIT 1")

	query, _, err = pg.builder.Select("id").From(groupsTable).Where("id = ?", 1).ToSql()
	require.NoError(t, err)
	assert.Contains(t, query, "id = $1")

	lite := newDB(db, config.DriverSQLite, nil, logger.Nop())
	query, _, err = lite.builder.Select("id").From(groupsTable).Where("id = ?", 1).ToSql()
	require.NoError(t, err)
	assert.Contains(t, query, "id = ?")
}

func TestDB_InTxRetry(t *testing.T) {
	t.Run("retryable failure reruns the transaction", func(t *testing.T) {
		conn, mock := newTestDB(t)
		db := newDB(conn, config.DriverPostgres, NewPostgresErrorClassifier(), logger.Nop())
		db.retryDelays = []time.Duration{time.Millisecond}

		mock.ExpectBegin()
		mock.ExpectRollback()
		mock.ExpectBegin()
		mock.ExpectCommit()

		calls := 0
		err := db.inTx(testContext(), "test", func(tx *sql.Tx) error {
			calls++
			if calls == 1 {
				return pgError(pgerrcode.SerializationFailure)
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("non retryable failure stops", func(t *testing.T) {
		conn, mock := newTestDB(t)
		db := newDB(conn, config.DriverPostgres, NewPostgresErrorClassifier(), logger.Nop())
		db.retryDelays = []time.Duration{time.Millisecond}

		mock.ExpectBegin()
		mock.ExpectRollback()

		want := errors.New("domain failure")
		calls := 0
		err := db.inTx(testContext(), "test", func(tx *sql.Tx) error {
			calls++
			return want
		})
		require.ErrorIs(t, err, want)
		assert.Equal(t, 1, calls)
	})

	t.Run("begin failure", func(t *testing.T) {
		conn, mock := newTestDB(t)
		db := newDBFromSQL(conn)

		mock.ExpectBegin().WillReturnError(errors.New("pool exhausted"))

		err := db.inTx(testContext(), "test", func(tx *sql.Tx) error { return nil })
		require.ErrorIs(t, err, ErrBeginningTransaction)
	})
}

func TestSqliteDSN(t *testing.T) {
	tests := []struct {
		dsn  string
		want string
	}{
		{dsn: "vault.db", want: "vault.db?_foreign_keys=on&_busy_timeout=5000"},
		{dsn: "file:vault.db?cache=shared", want: "file:vault.db?cache=shared&_foreign_keys=on&_busy_timeout=5000"},
		{dsn: "vault.db?_fk=1", want: "vault.db?_fk=1&_busy_timeout=5000"},
		{dsn: "vault.db?_foreign_keys=on&_busy_timeout=100", want: "vault.db?_foreign_keys=on&_busy_timeout=100"},
	}

	for _, tt := range tests {
		t.Run(tt.dsn, func(t *testing.T) {
			assert.Equal(t, tt.want, sqliteDSN(tt.dsn))
		})
	}
}
