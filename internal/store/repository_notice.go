package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-cert-keeper/internal/logger"
	"github.com/MKhiriev/go-cert-keeper/models"
)

type noticeRepository struct {
	*DB
	logger *logger.Logger
}

// NewNoticeRepository constructs a [NoticeRepository] over db.
func NewNoticeRepository(db *DB, logger *logger.Logger) NoticeRepository {
	logger.Debug().Msg("creating notice repository")
	return &noticeRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *noticeRepository) Create(ctx context.Context, notice models.Notice) (models.Notice, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertNoticeQuery(r.builder, notice).ToSql()
	if err != nil {
		return models.Notice{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err := r.DB.QueryRowContext(ctx, query, args...).Scan(&notice.ID); err != nil {
		log.Err(err).Str("func", "noticeRepository.Create").Msg("failed to insert notice")
		return models.Notice{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return notice, nil
}

func (r *noticeRepository) List(ctx context.Context) ([]models.Notice, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectNoticesQuery(r.builder).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "noticeRepository.List").Msg("failed to execute query for notices")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notices := make([]models.Notice, 0, 16)
	for rows.Next() {
		var (
			n     models.Notice
			level string
		)
		if err := rows.Scan(&n.ID, &level, &n.Content, &n.IP, &n.Location, &n.IsRead, &n.CreatedAt); err != nil {
			log.Err(err).Str("func", "noticeRepository.List").Msg("failed to scan notice row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		n.Level = models.NoticeLevel(level)
		notices = append(notices, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return notices, nil
}

func (r *noticeRepository) MarkAllRead(ctx context.Context) error {
	log := logger.FromContext(ctx)

	n, err := execBuilt(ctx, r.DB.DB, r.builder.Update(noticesTable).Set("is_read", true).Where(sq.Eq{"is_read": false}))
	if err != nil {
		log.Err(err).Str("func", "noticeRepository.MarkAllRead").Msg("failed to mark notices read")
		return err
	}

	log.Debug().Str("func", "noticeRepository.MarkAllRead").Int64("updated", n).Msg("notices marked read")
	return nil
}

func (r *noticeRepository) HasUnread(ctx context.Context) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.Select("COUNT(*)").From(noticesTable).Where(sq.Eq{"is_read": false}).ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var n int
	if err := r.DB.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		log.Err(err).Str("func", "noticeRepository.HasUnread").Msg("failed to count unread notices")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return n > 0, nil
}
