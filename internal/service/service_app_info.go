package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-cert-keeper/internal/config"
	"github.com/MKhiriev/go-cert-keeper/internal/logger"
	"github.com/MKhiriev/go-cert-keeper/internal/store"
	"github.com/MKhiriev/go-cert-keeper/models"
)

type appInfoService struct {
	appName    string
	appVersion string

	accounts store.AccountRepository
	logger   *logger.Logger
}

func NewAppInfoService(cfg config.App, accounts store.AccountRepository, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appName:    cfg.Name,
		appVersion: cfg.Version,
		accounts:   accounts,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

// GetGlobalInfo reports the application identity and whether the
// administrator has been bootstrapped.
func (s *appInfoService) GetGlobalInfo(ctx context.Context) (models.GlobalInfo, error) {
	count, err := s.accounts.Count(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("counting accounts failed")
		return models.GlobalInfo{}, fmt.Errorf("counting accounts failed: %w", err)
	}

	return models.GlobalInfo{
		AppName:     s.appName,
		Version:     s.appVersion,
		Initialized: count > 0,
	}, nil
}
