package http

import (
	"github.com/MKhiriev/go-cert-keeper/internal/logger"
	"github.com/MKhiriev/go-cert-keeper/internal/service"
	"github.com/MKhiriev/go-cert-keeper/internal/utils"
)

// Handler serves the vault API on top of the service layer. Request-scoped
// logging goes through [logger.FromRequest]; logger is used for events
// outside a request.
type Handler struct {
	services       *service.Services
	trustedProxies utils.TrustedProxies
	logger         *logger.Logger
}

// Option customizes a [Handler].
type Option func(*Handler)

// WithTrustedProxies lets the listed peers report the client address
// through X-Forwarded-For and X-Real-IP.
func WithTrustedProxies(proxies utils.TrustedProxies) Option {
	return func(h *Handler) {
		h.trustedProxies = proxies
	}
}

func NewHandler(services *service.Services, log *logger.Logger, opts ...Option) *Handler {
	child := &logger.Logger{Logger: log.With().Str("component", "http").Logger()}

	h := &Handler{
		services: services,
		logger:   child,
	}
	for _, opt := range opts {
		opt(h)
	}

	child.Info().Int("trusted_proxies", len(h.trustedProxies)).Msg("http handler created")
	return h
}
