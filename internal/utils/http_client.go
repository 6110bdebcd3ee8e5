package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a JSON-speaking resty client bound to baseURL with
// the given per-request timeout. A zero timeout leaves resty's default.
//
// Example usage:
//
//	client := utils.NewHTTPClient("https://ipinfo.io", 5*time.Second)
//	resp, err := client.R().Get("/8.8.8.8/json")
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")
	if timeout > 0 {
		c.SetTimeout(timeout)
	}

	return &HTTPClient{Client: c}
}
