// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
)

// secretFileSuffix marks a variable that names a file holding a secret, as
// mounted by Docker and Kubernetes secrets.
const secretFileSuffix = "_FILE"

// parseEnv fills cfg from environment variables via the `env` and
// `envPrefix` tags of [StructuredConfig]. APP_TOKEN_SIGN_KEY and
// APP_SECRET_KEY may instead be read from the file named by the same
// variable with a _FILE suffix; the file wins when both are set.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	secrets := []struct {
		name string
		dst  *string
	}{
		{"APP_TOKEN_SIGN_KEY", &cfg.App.TokenSignKey},
		{"APP_SECRET_KEY", &cfg.App.SecretKey},
	}
	for _, s := range secrets {
		path := os.Getenv(s.name + secretFileSuffix)
		if path == "" {
			continue
		}
		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("error reading %s%s: %w", s.name, secretFileSuffix, err)
		}
		*s.dst = strings.TrimSpace(string(raw))
	}

	return nil
}
