package adapter

import (
	"context"
	"crypto/tls"
	"net"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-cert-keeper/internal/config"
	"github.com/MKhiriev/go-cert-keeper/internal/logger"
	"github.com/MKhiriev/go-cert-keeper/internal/utils"
)

const (
	// LocationLocal is reported for loopback and private addresses.
	LocationLocal = "Local network"
	// LocationUnknown is reported when a lookup cannot be answered.
	LocationUnknown = "Unknown"
)

// ipInfo is the subset of an ipinfo.io style answer the locator reads.
type ipInfo struct {
	Country string `json:"country"`
	Region  string `json:"region"`
	City    string `json:"city"`
}

type httpGeoLocator struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPGeoLocator builds a [GeoLocator] querying cfg.GeoLookupURL as
// GET {url}/{ip}/json.
func NewHTTPGeoLocator(cfg config.Security, log *logger.Logger) GeoLocator {
	client := utils.NewHTTPClient(strings.TrimRight(cfg.GeoLookupURL, "/"), cfg.GeoLookupTimeout)
	client.
		SetHeader("User-Agent", "go-cert-keeper").
		SetTLSClientConfig(&tls.Config{MinVersion: tls.VersionTLS12}).
		SetRedirectPolicy(resty.FlexibleRedirectPolicy(3))

	return &httpGeoLocator{client: client, logger: log}
}

// Locate implements [GeoLocator].
func (g *httpGeoLocator) Locate(ctx context.Context, ip string) string {
	log := logger.FromContext(ctx)

	addr := net.ParseIP(strings.TrimSpace(ip))
	if addr == nil {
		log.Warn().Str("ip", ip).Msg("cannot locate malformed ip")
		return LocationUnknown
	}
	if isLocal(addr) {
		return LocationLocal
	}

	var info ipInfo
	resp, err := g.client.R().
		SetContext(ctx).
		SetResult(&info).
		Get("/" + url.PathEscape(addr.String()) + "/json")
	if err != nil {
		log.Warn().Err(err).Str("ip", ip).Msg("geolocation lookup failed")
		return LocationUnknown
	}
	if err = mapHTTPError(resp); err != nil {
		log.Warn().Err(err).Str("ip", ip).Msg("geolocation lookup rejected")
		return LocationUnknown
	}

	location := joinNonEmpty(info.Country, info.Region, info.City)
	if location == "" {
		return LocationUnknown
	}
	return location
}

func isLocal(ip net.IP) bool {
	return ip.IsLoopback() || ip.IsPrivate() || ip.IsLinkLocalUnicast() || ip.IsUnspecified()
}

func joinNonEmpty(parts ...string) string {
	kept := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}
