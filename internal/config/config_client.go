package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the server base URL used by the client.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientConfig is the client configuration assembled from [StructuredConfig].
type ClientConfig struct {
	// Adapter contains the server address and timeout.
	Adapter ClientAdapter
}

// GetClientConfig builds and validates a client-specific config view from
// environment variables and the optional JSON file. Server-only invariants
// are not checked.
func GetClientConfig() (*ClientConfig, error) {
	b := newConfigBuilder().withEnv().withJSON()
	if b.err != nil {
		return nil, fmt.Errorf("error get structured config: %w", b.err)
	}

	cfg := defaults()
	for i := len(b.configs) - 1; i >= 0; i-- {
		overlayAdapter(&cfg.Adapter, b.configs[i].Adapter)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
	}

	return clientCfg, clientCfg.validate()
}

func overlayAdapter(dst *Adapter, src Adapter) {
	if src.HTTPAddress != "" {
		dst.HTTPAddress = src.HTTPAddress
	}
	if src.RequestTimeout != 0 {
		dst.RequestTimeout = src.RequestTimeout
	}
}
