package store

import "github.com/MKhiriev/go-cert-keeper/internal/logger"

// Storages bundles every repository over one connection.
type Storages struct {
	Accounts     AccountRepository
	Groups       GroupRepository
	Certificates CertificateRepository
	Notices      NoticeRepository

	db *DB
}

// NewStorages wires all repositories to db.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		Accounts:     NewAccountRepository(db, log),
		Groups:       NewGroupRepository(db, log),
		Certificates: NewCertificateRepository(db, log),
		Notices:      NewNoticeRepository(db, log),
		db:           db,
	}
}

// Close releases the underlying connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
