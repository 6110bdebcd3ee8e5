package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		Name          string   `json:"name"`
		Version       string   `json:"version"`
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		SecretKey     string   `json:"secret_key"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Security struct {
		LoginChallengeTTL  Duration `json:"login_challenge_ttl"`
		ChallengeTTL       Duration `json:"challenge_ttl"`
		TotpEnrollTTL      Duration `json:"totp_enroll_ttl"`
		TotpIssuer         string   `json:"totp_issuer"`
		ReplayWindow       Duration `json:"replay_window"`
		LockoutThreshold   int      `json:"lockout_threshold"`
		SessionIdleTimeout Duration `json:"session_idle_timeout"`
		GeoLookupURL       string   `json:"geo_lookup_url"`
		GeoLookupTimeout   Duration `json:"geo_lookup_timeout"`
		TrustedProxies     []string `json:"trusted_proxies"`
	} `json:"security,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		SweepInterval Duration `json:"sweep_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Name:          jsonCfg.App.Name,
			Version:       jsonCfg.App.Version,
			TokenSignKey:  jsonCfg.App.TokenSignKey,
			TokenIssuer:   jsonCfg.App.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.App.TokenDuration),
			SecretKey:     jsonCfg.App.SecretKey,
		},
		Storage: Storage{
			DB: DB{
				Driver: jsonCfg.Storage.DB.Driver,
				DSN:    jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Security: Security{
			LoginChallengeTTL:  time.Duration(jsonCfg.Security.LoginChallengeTTL),
			ChallengeTTL:       time.Duration(jsonCfg.Security.ChallengeTTL),
			TotpEnrollTTL:      time.Duration(jsonCfg.Security.TotpEnrollTTL),
			TotpIssuer:         jsonCfg.Security.TotpIssuer,
			ReplayWindow:       time.Duration(jsonCfg.Security.ReplayWindow),
			LockoutThreshold:   jsonCfg.Security.LockoutThreshold,
			SessionIdleTimeout: time.Duration(jsonCfg.Security.SessionIdleTimeout),
			GeoLookupURL:       jsonCfg.Security.GeoLookupURL,
			GeoLookupTimeout:   time.Duration(jsonCfg.Security.GeoLookupTimeout),
			TrustedProxies:     jsonCfg.Security.TrustedProxies,
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Workers: Workers{
			SweepInterval: time.Duration(jsonCfg.Workers.SweepInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as raw nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
