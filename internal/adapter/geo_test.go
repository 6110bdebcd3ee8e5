package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-cert-keeper/internal/config"
	"github.com/MKhiriev/go-cert-keeper/internal/logger"
)

func newTestLocator(url string) GeoLocator {
	return NewHTTPGeoLocator(config.Security{GeoLookupURL: url, GeoLookupTimeout: time.Second}, logger.Nop())
}

func TestGeoLocator_LocalAddressesSkipLookup(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	g := newTestLocator(srv.URL)
	for _, ip := range []string{"127.0.0.1", "::1", "10.1.2.3", "192.168.0.10", "172.16.5.5", "fe80::1"} {
		assert.Equal(t, LocationLocal, g.Locate(context.Background(), ip), ip)
	}
	assert.Zero(t, calls.Load())
}

func TestGeoLocator_Locate(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    string
	}{
		{
			name: "full answer",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/203.0.113.9/json", r.URL.Path)
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"ip":"203.0.113.9","country":"NL","region":"North Holland","city":"Amsterdam"}`))
			},
			want: "NL North Holland Amsterdam",
		},
		{
			name: "partial answer",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"country":"DE","region":"","city":"Berlin"}`))
			},
			want: "DE Berlin",
		},
		{
			name: "empty answer",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{}`))
			},
			want: LocationUnknown,
		},
		{
			name: "rate limited",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
			},
			want: LocationUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			assert.Equal(t, tt.want, newTestLocator(srv.URL).Locate(context.Background(), "203.0.113.9"))
		})
	}
}

func TestGeoLocator_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	assert.Equal(t, LocationUnknown, newTestLocator(url).Locate(context.Background(), "198.51.100.1"))
}

func TestGeoLocator_MalformedIP(t *testing.T) {
	assert.Equal(t, LocationUnknown, newTestLocator("http://127.0.0.1:1").Locate(context.Background(), "not-an-ip"))
}
