package handler

import (
	"fmt"

	"github.com/MKhiriev/go-cert-keeper/internal/config"
	"github.com/MKhiriev/go-cert-keeper/internal/handler/http"
	"github.com/MKhiriev/go-cert-keeper/internal/logger"
	"github.com/MKhiriev/go-cert-keeper/internal/service"
	"github.com/MKhiriev/go-cert-keeper/internal/utils"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the transport handlers enabled by cfg. The vault only
// speaks HTTP, so an empty listen address is a configuration error.
func NewHandlers(services *service.Services, cfg config.Server, security config.Security, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	proxies, err := utils.ParseTrustedProxies(security.TrustedProxies)
	if err != nil {
		return nil, fmt.Errorf("error reading trusted proxies: %w", err)
	}

	return &Handlers{
		HTTP: http.NewHandler(services, logger, http.WithTrustedProxies(proxies)),
	}, nil
}
