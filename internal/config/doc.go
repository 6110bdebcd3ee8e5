// Package config loads the vault server and CLI client settings.
//
// Sources are merged with mergo; earlier sources win for non-zero fields:
//  1. Environment variables (APP_, STORAGE_DB_, SERVER_, SECURITY_,
//     ADAPTER_ and WORKERS_ prefixes; secrets may come from *_FILE paths)
//  2. Command-line flags
//  3. JSON config file named by CONFIG or -c
//
// Defaults fill whatever is still empty: the pgx driver, 10s/60s/300s
// challenge TTLs, a 60s replay window, a lockout after 3 failures and a 30m
// session idle timeout. No proxy is trusted unless SECURITY_TRUSTED_PROXIES
// names one. [GetStructuredConfig] returns the validated server
// view and [GetClientConfig] the client view.
package config
