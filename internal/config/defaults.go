package config

import "time"

// defaults returns the values used for every field left empty by env,
// flags and JSON.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Name:          "go-cert-keeper",
			Version:       "dev",
			TokenIssuer:   "go-cert-keeper",
			TokenDuration: 12 * time.Hour,
		},
		Storage: Storage{
			DB: DB{Driver: "pgx"},
		},
		Server: Server{
			RequestTimeout: 30 * time.Second,
		},
		Security: Security{
			LoginChallengeTTL:  10 * time.Second,
			ChallengeTTL:       60 * time.Second,
			TotpEnrollTTL:      5 * time.Minute,
			ReplayWindow:       60 * time.Second,
			LockoutThreshold:   3,
			SessionIdleTimeout: 30 * time.Minute,
			GeoLookupURL:       "https://ipinfo.io",
			GeoLookupTimeout:   5 * time.Second,
		},
		Adapter: Adapter{
			HTTPAddress:    "http://localhost:8080",
			RequestTimeout: 15 * time.Second,
		},
		Workers: Workers{
			SweepInterval: time.Minute,
		},
	}
}
