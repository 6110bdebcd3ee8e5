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

// groupRepository is the SQL implementation of [GroupRepository].
type groupRepository struct {
	*DB
	logger *logger.Logger
}

// NewGroupRepository constructs a [GroupRepository] over db.
func NewGroupRepository(db *DB, logger *logger.Logger) GroupRepository {
	logger.Debug().Msg("creating group repository")
	return &groupRepository{
		DB:     db,
		logger: logger,
	}
}

// List implements [GroupRepository].
func (r *groupRepository) List(ctx context.Context) ([]models.Group, error) {
	return r.selectGroups(ctx, "groupRepository.List", buildSelectGroupsQuery(r.builder))
}

// ListByLockType implements [GroupRepository].
func (r *groupRepository) ListByLockType(ctx context.Context, lockType models.LockType) ([]models.Group, error) {
	b := buildSelectGroupsQuery(r.builder).Where(sq.Eq{"lock_type": string(lockType)})
	return r.selectGroups(ctx, "groupRepository.ListByLockType", b)
}

// Get implements [GroupRepository].
func (r *groupRepository) Get(ctx context.Context, id int64) (models.Group, error) {
	groups, err := r.selectGroups(ctx, "groupRepository.Get", buildSelectGroupsQuery(r.builder).Where(sq.Eq{"id": id}))
	if err != nil {
		return models.Group{}, err
	}
	if len(groups) == 0 {
		return models.Group{}, ErrGroupNotFound
	}
	return groups[0], nil
}

func (r *groupRepository) selectGroups(ctx context.Context, funcName string, b sq.SelectBuilder) ([]models.Group, error) {
	log := logger.FromContext(ctx)

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute query for groups")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	groups := make([]models.Group, 0, 8)
	for rows.Next() {
		var (
			g          models.Group
			lockType   string
			hash, salt sql.NullString
		)
		if err := rows.Scan(&g.ID, &g.Name, &lockType, &hash, &salt); err != nil {
			log.Err(err).Str("func", funcName).Msg("failed to scan group row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		g.Lock = models.GroupLock{Type: models.LockType(lockType)}
		if g.Lock.Type == models.LockPassword {
			g.Lock.Password = &models.PasswordLock{Hash: hash.String, Salt: salt.String}
		}
		groups = append(groups, g)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return groups, nil
}

// Create implements [GroupRepository].
func (r *groupRepository) Create(ctx context.Context, name string, lock models.GroupLock) (models.Group, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertGroupQuery(r.builder, name, lock).ToSql()
	if err != nil {
		return models.Group{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	g := models.Group{Name: name, Lock: lock}
	if err := r.DB.QueryRowContext(ctx, query, args...).Scan(&g.ID); err != nil {
		if isUniqueViolation(err) {
			return models.Group{}, ErrGroupNameTaken
		}
		log.Err(err).Str("func", "groupRepository.Create").Str("name", name).Msg("failed to insert group")
		return models.Group{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return g, nil
}

// UpdateLock implements [GroupRepository].
func (r *groupRepository) UpdateLock(ctx context.Context, id int64, lock models.GroupLock) error {
	log := logger.FromContext(ctx)

	n, err := execBuilt(ctx, r.DB.DB, buildUpdateGroupLockQuery(r.builder, id, lock))
	if err != nil {
		log.Err(err).Str("func", "groupRepository.UpdateLock").Int64("group_id", id).Msg("failed to update group lock")
		return err
	}
	if n == 0 {
		return ErrGroupNotFound
	}

	log.Info().
		Str("func", "groupRepository.UpdateLock").
		Int64("group_id", id).
		Str("lock_type", string(lock.Type)).
		Msg("group lock replaced")
	return nil
}

// Delete implements [GroupRepository].
func (r *groupRepository) Delete(ctx context.Context, id int64) (int64, error) {
	log := logger.FromContext(ctx)

	var newDefault int64
	err := r.inTx(ctx, "groupRepository.Delete", func(tx *sql.Tx) error {
		ids, err := r.groupIDs(ctx, tx)
		if err != nil {
			return err
		}
		if !containsID(ids, id) {
			return ErrGroupNotFound
		}
		if len(ids) <= 1 {
			return ErrLastGroup
		}

		if _, err := execBuilt(ctx, tx, r.builder.Delete(certificatesTable).Where(sq.Eq{"group_id": id})); err != nil {
			return err
		}
		if _, err := execBuilt(ctx, tx, r.builder.Delete(groupsTable).Where(sq.Eq{"id": id})); err != nil {
			return err
		}

		for _, other := range ids {
			if other != id {
				newDefault = other
				break
			}
		}
		n, err := execBuilt(ctx, tx, r.builder.Update(accountsTable).
			Set("default_group_id", newDefault).
			Where(sq.Eq{"default_group_id": id}))
		if err != nil {
			return err
		}
		if n == 0 {
			newDefault = 0
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrLastGroup) && !errors.Is(err, ErrGroupNotFound) {
			log.Err(err).Str("func", "groupRepository.Delete").Int64("group_id", id).Msg("failed to delete group")
		}
		return 0, err
	}

	log.Info().
		Str("func", "groupRepository.Delete").
		Int64("group_id", id).
		Int64("new_default_group_id", newDefault).
		Msg("group deleted")
	return newDefault, nil
}

func (r *groupRepository) groupIDs(ctx context.Context, tx *sql.Tx) ([]int64, error) {
	query, args, err := r.builder.Select("id").From(groupsTable).OrderBy("id").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return ids, nil
}

func containsID(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
