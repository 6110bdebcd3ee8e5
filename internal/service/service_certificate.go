package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-cert-keeper/internal/logger"
	"github.com/MKhiriev/go-cert-keeper/internal/store"
	"github.com/MKhiriev/go-cert-keeper/internal/validators"
	"github.com/MKhiriev/go-cert-keeper/models"
)

// certificateService serves encrypted certificates. It shares rotation with
// the password change: every call holds the read side, the re-encryption
// holds the write side.
type certificateService struct {
	certificates store.CertificateRepository
	groups       GroupService
	rotation     *sync.RWMutex
	validator    validators.Validator

	logger *logger.Logger
}

func NewCertificateService(
	certificates store.CertificateRepository,
	groups GroupService,
	rotation *sync.RWMutex,
	validator validators.Validator,
	logger *logger.Logger,
) CertificateService {
	return &certificateService{
		certificates: certificates,
		groups:       groups,
		rotation:     rotation,
		validator:    validator,
		logger:       logger,
	}
}

func (s *certificateService) ListByGroup(ctx context.Context, sessionID string, groupID int64) ([]models.Certificate, error) {
	s.rotation.RLock()
	defer s.rotation.RUnlock()

	if _, err := s.groups.EnsureUnlocked(ctx, sessionID, groupID); err != nil {
		return nil, err
	}

	certs, err := s.certificates.ListByGroup(ctx, groupID)
	if err != nil {
		return nil, fmt.Errorf("listing certificates failed: %w", err)
	}
	return certs, nil
}

func (s *certificateService) Get(ctx context.Context, sessionID string, id int64) (models.Certificate, error) {
	s.rotation.RLock()
	defer s.rotation.RUnlock()

	cert, err := s.certificates.Get(ctx, id)
	if err != nil {
		return models.Certificate{}, fmt.Errorf("loading certificate failed: %w", err)
	}
	if _, err = s.groups.EnsureUnlocked(ctx, sessionID, cert.GroupID); err != nil {
		return models.Certificate{}, err
	}
	return cert, nil
}

func (s *certificateService) Create(ctx context.Context, sessionID string, cert models.Certificate) (models.Certificate, error) {
	if err := s.validate(ctx, cert); err != nil {
		return models.Certificate{}, err
	}

	s.rotation.RLock()
	defer s.rotation.RUnlock()

	if _, err := s.groups.EnsureUnlocked(ctx, sessionID, cert.GroupID); err != nil {
		return models.Certificate{}, err
	}

	created, err := s.certificates.Create(ctx, cert)
	if err != nil {
		return models.Certificate{}, fmt.Errorf("creating certificate failed: %w", err)
	}
	logger.FromContext(ctx).Info().Int64("certificate_id", created.ID).Int64("group_id", created.GroupID).Msg("certificate created")
	return created, nil
}

// Update requires both the current and the target group to be unlocked.
func (s *certificateService) Update(ctx context.Context, sessionID string, cert models.Certificate) error {
	if err := s.validate(ctx, cert); err != nil {
		return err
	}

	s.rotation.RLock()
	defer s.rotation.RUnlock()

	current, err := s.certificates.Get(ctx, cert.ID)
	if err != nil {
		return fmt.Errorf("loading certificate failed: %w", err)
	}
	if _, err = s.groups.EnsureUnlocked(ctx, sessionID, current.GroupID); err != nil {
		return err
	}
	if cert.GroupID != current.GroupID {
		if _, err = s.groups.EnsureUnlocked(ctx, sessionID, cert.GroupID); err != nil {
			return err
		}
	}

	if err = s.certificates.Update(ctx, cert); err != nil {
		return fmt.Errorf("updating certificate failed: %w", err)
	}
	return nil
}

func (s *certificateService) Delete(ctx context.Context, sessionID string, id int64) error {
	s.rotation.RLock()
	defer s.rotation.RUnlock()

	cert, err := s.certificates.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("loading certificate failed: %w", err)
	}
	if _, err = s.groups.EnsureUnlocked(ctx, sessionID, cert.GroupID); err != nil {
		return err
	}

	if err = s.certificates.Delete(ctx, id); err != nil {
		return fmt.Errorf("deleting certificate failed: %w", err)
	}
	return nil
}

func (s *certificateService) validate(ctx context.Context, cert models.Certificate) error {
	if err := s.validator.Validate(ctx, cert); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}
