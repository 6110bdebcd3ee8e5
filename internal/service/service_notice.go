package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-cert-keeper/internal/adapter"
	"github.com/MKhiriev/go-cert-keeper/internal/cache"
	"github.com/MKhiriev/go-cert-keeper/internal/logger"
	"github.com/MKhiriev/go-cert-keeper/internal/store"
	"github.com/MKhiriev/go-cert-keeper/internal/utils"
	"github.com/MKhiriev/go-cert-keeper/models"
	"github.com/rs/zerolog"
)

type noticeService struct {
	notices store.NoticeRepository
	geo     adapter.GeoLocator
	now     cache.Clock

	logger *logger.Logger
}

func NewNoticeService(notices store.NoticeRepository, geo adapter.GeoLocator, clock cache.Clock, logger *logger.Logger) NoticeService {
	if clock == nil {
		clock = time.Now
	}
	return &noticeService{
		notices: notices,
		geo:     geo,
		now:     clock,
		logger:  logger,
	}
}

func (s *noticeService) Report(ctx context.Context, notice models.Notice) {
	if notice.IP == "" {
		notice.IP = utils.GetClientIPFromContext(ctx)
	}
	if notice.Location == "" && notice.IP != "" {
		notice.Location = s.geo.Locate(ctx, notice.IP)
	}
	if notice.CreatedAt.IsZero() {
		notice.CreatedAt = s.now()
	}

	log := logger.FromContext(ctx)
	log.Logger.WithLevel(noticeLogLevel(notice.Level)).
		Str("notice_level", string(notice.Level)).
		Str("ip", notice.IP).
		Str("location", notice.Location).
		Msg(notice.Content)

	if _, err := s.notices.Create(ctx, notice); err != nil {
		log.Err(err).Str("content", notice.Content).Msg("saving security notice failed")
	}
}

func (s *noticeService) List(ctx context.Context) ([]models.Notice, error) {
	notices, err := s.notices.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing notices failed: %w", err)
	}
	return notices, nil
}

func (s *noticeService) MarkAllRead(ctx context.Context) error {
	if err := s.notices.MarkAllRead(ctx); err != nil {
		return fmt.Errorf("marking notices read failed: %w", err)
	}
	return nil
}

func (s *noticeService) HasUnread(ctx context.Context) (bool, error) {
	unread, err := s.notices.HasUnread(ctx)
	if err != nil {
		return false, fmt.Errorf("checking unread notices failed: %w", err)
	}
	return unread, nil
}

func noticeLogLevel(level models.NoticeLevel) zerolog.Level {
	switch level {
	case models.NoticeDanger:
		return zerolog.ErrorLevel
	case models.NoticeWarning:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}
