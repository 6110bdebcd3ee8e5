package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-cert-keeper/internal/logger"
	"github.com/MKhiriev/go-cert-keeper/models"
)

// accountRepository is the SQL implementation of [AccountRepository].
type accountRepository struct {
	*DB
	logger *logger.Logger
}

// NewAccountRepository constructs an [AccountRepository] over db.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		DB:     db,
		logger: logger,
	}
}

// Count implements [AccountRepository].
func (r *accountRepository) Count(ctx context.Context) (int, error) {
	return countAccounts(ctx, r.DB.DB, r.builder)
}

func countAccounts(ctx context.Context, q queryer, b sq.StatementBuilderType) (int, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountAccountsQuery(b).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var n int
	if err := q.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		log.Err(err).Str("func", "accountRepository.Count").Msg("failed to count accounts")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return n, nil
}

// Get implements [AccountRepository].
func (r *accountRepository) Get(ctx context.Context) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetAccountQuery(r.builder).ToSql()
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var a models.Account
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(
		&a.ID,
		&a.PasswordHash,
		&a.PasswordSalt,
		&a.TotpSecret,
		&a.CommonLocation,
		&a.DefaultGroupID,
		&a.PwdGenPrefs,
		&a.InitTime,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Account{}, ErrAccountNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "accountRepository.Get").Msg("failed to scan account row")
		return models.Account{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return a, nil
}

// CreateWithDefaultGroup implements [AccountRepository]. The emptiness check
// runs inside the transaction so two concurrent bootstraps cannot both win.
func (r *accountRepository) CreateWithDefaultGroup(ctx context.Context, account models.Account, groupName string) (models.Account, error) {
	log := logger.FromContext(ctx)

	err := r.inTx(ctx, "accountRepository.CreateWithDefaultGroup", func(tx *sql.Tx) error {
		n, err := countAccounts(ctx, tx, r.builder)
		if err != nil {
			return err
		}
		if n > 0 {
			return ErrAccountAlreadyExists
		}

		groupQuery, groupArgs, err := buildInsertGroupQuery(r.builder, groupName, models.NoLock()).ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if err := tx.QueryRowContext(ctx, groupQuery, groupArgs...).Scan(&account.DefaultGroupID); err != nil {
			log.Err(err).Str("func", "accountRepository.CreateWithDefaultGroup").Msg("failed to insert default group")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		query, args, err := buildInsertAccountQuery(r.builder, account).ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if err := tx.QueryRowContext(ctx, query, args...).Scan(&account.ID); err != nil {
			if isUniqueViolation(err) {
				return ErrAccountAlreadyExists
			}
			log.Err(err).Str("func", "accountRepository.CreateWithDefaultGroup").Msg("failed to insert account")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
	if err != nil {
		return models.Account{}, err
	}

	log.Info().
		Str("func", "accountRepository.CreateWithDefaultGroup").
		Int64("default_group_id", account.DefaultGroupID).
		Msg("administrator account created")
	return account, nil
}

// UpdateLocation implements [AccountRepository].
func (r *accountRepository) UpdateLocation(ctx context.Context, location string) error {
	return r.update(ctx, "accountRepository.UpdateLocation", map[string]any{"common_location": location})
}

// SetTotpSecret implements [AccountRepository].
func (r *accountRepository) SetTotpSecret(ctx context.Context, sealedSecret string) error {
	return r.update(ctx, "accountRepository.SetTotpSecret", map[string]any{"totp_secret": sealedSecret})
}

// SetDefaultGroup implements [AccountRepository].
func (r *accountRepository) SetDefaultGroup(ctx context.Context, groupID int64) error {
	return r.update(ctx, "accountRepository.SetDefaultGroup", map[string]any{"default_group_id": groupID})
}

// UpdatePwdGenPrefs implements [AccountRepository].
func (r *accountRepository) UpdatePwdGenPrefs(ctx context.Context, prefs models.PwdGenPrefs) error {
	return r.update(ctx, "accountRepository.UpdatePwdGenPrefs", map[string]any{"pwd_gen_prefs": prefs})
}

func (r *accountRepository) update(ctx context.Context, funcName string, set map[string]any) error {
	log := logger.FromContext(ctx)

	n, err := execBuilt(ctx, r.DB.DB, buildUpdateAccountQuery(r.builder, set))
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to update account")
		return err
	}
	if n == 0 {
		return ErrAccountNotFound
	}
	return nil
}

// RotatePassword implements [AccountRepository]. Each certificate update must
// hit exactly one row; a certificate deleted concurrently aborts the whole
// rotation with [ErrCertificateNotFound].
func (r *accountRepository) RotatePassword(ctx context.Context, rotation models.PasswordRotation) error {
	log := logger.FromContext(ctx)

	err := r.inTx(ctx, "accountRepository.RotatePassword", func(tx *sql.Tx) error {
		for idx, cert := range rotation.Certificates {
			n, err := execBuilt(ctx, tx, buildUpdateCertificateContentQuery(r.builder, cert))
			if err != nil {
				log.Err(err).
					Str("func", "accountRepository.RotatePassword").
					Int("iteration", idx+1).
					Int64("certificate_id", cert.ID).
					Msg("failed to rewrite certificate")
				return err
			}
			if n == 0 {
				return fmt.Errorf("certificate %d: %w", cert.ID, ErrCertificateNotFound)
			}
		}

		n, err := execBuilt(ctx, tx, buildUpdateAccountQuery(r.builder, map[string]any{
			"password_hash": rotation.PasswordHash,
			"password_salt": rotation.PasswordSalt,
		}))
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrAccountNotFound
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "accountRepository.RotatePassword").Msg("password rotation rolled back")
		return err
	}

	log.Info().
		Str("func", "accountRepository.RotatePassword").
		Int("certificates", len(rotation.Certificates)).
		Msg("password rotated")
	return nil
}
