package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-cert-keeper/models"
)

const (
	accountsTable     = "accounts"
	groupsTable       = "cert_groups"
	certificatesTable = "certificates"
	noticesTable      = "notices"
)

var (
	accountColumns = []string{
		"id", "password_hash", "password_salt", "totp_secret", "common_location",
		"default_group_id", "pwd_gen_prefs", "init_time",
	}
	groupColumns = []string{
		"id", "name", "lock_type", "password_hash", "password_salt",
	}
	certificateColumns = []string{
		"id", "name", "group_id", "content", "mark_color", "icon", "created_at", "updated_at",
	}
	noticeColumns = []string{
		"id", "level", "content", "ip", "location", "is_read", "created_at",
	}
)

// ── accounts ─────────────────────────────────────────────────────────────────

func buildCountAccountsQuery(b sq.StatementBuilderType) sq.SelectBuilder {
	return b.Select("COUNT(*)").From(accountsTable)
}

func buildGetAccountQuery(b sq.StatementBuilderType) sq.SelectBuilder {
	return b.Select(accountColumns...).From(accountsTable).OrderBy("id").Limit(1)
}

func buildInsertAccountQuery(b sq.StatementBuilderType, a models.Account) sq.InsertBuilder {
	return b.Insert(accountsTable).
		Columns("password_hash", "password_salt", "totp_secret", "common_location",
			"default_group_id", "pwd_gen_prefs", "init_time").
		Values(a.PasswordHash, a.PasswordSalt, a.TotpSecret, a.CommonLocation,
			a.DefaultGroupID, a.PwdGenPrefs, a.InitTime).
		Suffix("RETURNING id")
}

func buildUpdateAccountQuery(b sq.StatementBuilderType, set map[string]any) sq.UpdateBuilder {
	return b.Update(accountsTable).SetMap(set)
}

// ── groups ───────────────────────────────────────────────────────────────────

func buildSelectGroupsQuery(b sq.StatementBuilderType) sq.SelectBuilder {
	return b.Select(groupColumns...).From(groupsTable).OrderBy("id")
}

func buildInsertGroupQuery(b sq.StatementBuilderType, name string, lock models.GroupLock) sq.InsertBuilder {
	hash, salt := lockPasswordColumns(lock)
	return b.Insert(groupsTable).
		Columns("name", "lock_type", "password_hash", "password_salt").
		Values(name, string(lock.Type), hash, salt).
		Suffix("RETURNING id")
}

func buildUpdateGroupLockQuery(b sq.StatementBuilderType, id int64, lock models.GroupLock) sq.UpdateBuilder {
	hash, salt := lockPasswordColumns(lock)
	return b.Update(groupsTable).
		Set("lock_type", string(lock.Type)).
		Set("password_hash", hash).
		Set("password_salt", salt).
		Where(sq.Eq{"id": id})
}

// lockPasswordColumns returns NULLs unless the lock carries password material.
func lockPasswordColumns(lock models.GroupLock) (hash, salt any) {
	if lock.Type != models.LockPassword || lock.Password == nil {
		return nil, nil
	}
	return lock.Password.Hash, lock.Password.Salt
}

// ── certificates ─────────────────────────────────────────────────────────────

func buildSelectCertificatesQuery(b sq.StatementBuilderType) sq.SelectBuilder {
	return b.Select(certificateColumns...).From(certificatesTable).OrderBy("id")
}

func buildInsertCertificateQuery(b sq.StatementBuilderType, c models.Certificate) sq.InsertBuilder {
	return b.Insert(certificatesTable).
		Columns("name", "group_id", "content", "mark_color", "icon", "created_at", "updated_at").
		Values(c.Name, c.GroupID, c.Content, c.MarkColor, c.Icon, c.CreatedAt, c.UpdatedAt).
		Suffix("RETURNING id")
}

func buildUpdateCertificateQuery(b sq.StatementBuilderType, c models.Certificate) sq.UpdateBuilder {
	return b.Update(certificatesTable).
		Set("name", c.Name).
		Set("group_id", c.GroupID).
		Set("content", c.Content).
		Set("mark_color", c.MarkColor).
		Set("icon", c.Icon).
		Set("updated_at", c.UpdatedAt).
		Where(sq.Eq{"id": c.ID})
}

func buildUpdateCertificateContentQuery(b sq.StatementBuilderType, c models.Certificate) sq.UpdateBuilder {
	return b.Update(certificatesTable).
		Set("content", c.Content).
		Set("updated_at", c.UpdatedAt).
		Where(sq.Eq{"id": c.ID})
}

// ── notices ──────────────────────────────────────────────────────────────────

func buildInsertNoticeQuery(b sq.StatementBuilderType, n models.Notice) sq.InsertBuilder {
	return b.Insert(noticesTable).
		Columns("level", "content", "ip", "location", "is_read", "created_at").
		Values(string(n.Level), n.Content, n.IP, n.Location, n.IsRead, n.CreatedAt).
		Suffix("RETURNING id")
}

func buildSelectNoticesQuery(b sq.StatementBuilderType) sq.SelectBuilder {
	return b.Select(noticeColumns...).From(noticesTable).OrderBy("created_at DESC", "id DESC")
}
