package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-cert-keeper/internal/logger"
	"github.com/MKhiriev/go-cert-keeper/models"
)

// certificateRepository is the SQL implementation of [CertificateRepository].
// Content is stored as received; the server never sees plaintext.
type certificateRepository struct {
	*DB
	logger *logger.Logger
}

// NewCertificateRepository constructs a [CertificateRepository] over db.
func NewCertificateRepository(db *DB, logger *logger.Logger) CertificateRepository {
	logger.Debug().Msg("creating certificate repository")
	return &certificateRepository{
		DB:     db,
		logger: logger,
	}
}

// ListByGroup implements [CertificateRepository].
func (r *certificateRepository) ListByGroup(ctx context.Context, groupID int64) ([]models.Certificate, error) {
	b := buildSelectCertificatesQuery(r.builder).Where(sq.Eq{"group_id": groupID})
	return r.selectCertificates(ctx, "certificateRepository.ListByGroup", b)
}

// ListAll implements [CertificateRepository].
func (r *certificateRepository) ListAll(ctx context.Context) ([]models.Certificate, error) {
	return r.selectCertificates(ctx, "certificateRepository.ListAll", buildSelectCertificatesQuery(r.builder))
}

// Get implements [CertificateRepository].
func (r *certificateRepository) Get(ctx context.Context, id int64) (models.Certificate, error) {
	certs, err := r.selectCertificates(ctx, "certificateRepository.Get", buildSelectCertificatesQuery(r.builder).Where(sq.Eq{"id": id}))
	if err != nil {
		return models.Certificate{}, err
	}
	if len(certs) == 0 {
		return models.Certificate{}, ErrCertificateNotFound
	}
	return certs[0], nil
}

func (r *certificateRepository) selectCertificates(ctx context.Context, funcName string, b sq.SelectBuilder) ([]models.Certificate, error) {
	log := logger.FromContext(ctx)

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute query for certificates")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	certs := make([]models.Certificate, 0, 16)
	for rows.Next() {
		var c models.Certificate
		if err := rows.Scan(&c.ID, &c.Name, &c.GroupID, &c.Content, &c.MarkColor, &c.Icon, &c.CreatedAt, &c.UpdatedAt); err != nil {
			log.Err(err).Str("func", funcName).Msg("failed to scan certificate row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		certs = append(certs, c)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return certs, nil
}

// Create implements [CertificateRepository].
func (r *certificateRepository) Create(ctx context.Context, cert models.Certificate) (models.Certificate, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertCertificateQuery(r.builder, cert).ToSql()
	if err != nil {
		return models.Certificate{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err := r.DB.QueryRowContext(ctx, query, args...).Scan(&cert.ID); err != nil {
		log.Err(err).
			Str("func", "certificateRepository.Create").
			Int64("group_id", cert.GroupID).
			Msg("failed to insert certificate")
		return models.Certificate{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return cert, nil
}

// Update implements [CertificateRepository].
func (r *certificateRepository) Update(ctx context.Context, cert models.Certificate) error {
	log := logger.FromContext(ctx)

	n, err := execBuilt(ctx, r.DB.DB, buildUpdateCertificateQuery(r.builder, cert))
	if err != nil {
		log.Err(err).Str("func", "certificateRepository.Update").Int64("certificate_id", cert.ID).Msg("failed to update certificate")
		return err
	}
	if n == 0 {
		return ErrCertificateNotFound
	}
	return nil
}

// Delete implements [CertificateRepository].
func (r *certificateRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	n, err := execBuilt(ctx, r.DB.DB, r.builder.Delete(certificatesTable).Where(sq.Eq{"id": id}))
	if err != nil {
		log.Err(err).Str("func", "certificateRepository.Delete").Int64("certificate_id", id).Msg("failed to delete certificate")
		return err
	}
	if n == 0 {
		return ErrCertificateNotFound
	}
	return nil
}
