package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance
// with a default-configured underlying resty.Client.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}

// NewAPIKeyHTTPClient returns an HTTPClient preconfigured for the backend
// gateway: base URL, request timeout, and the "apikey" plus bearer
// Authorization headers every gateway route expects.
//
// Example usage:
//
//	client := utils.NewAPIKeyHTTPClient("https://ref.supabase.co", anonKey, 10*time.Second)
//	resp, err := client.R().Get("/auth/v1/health")
func NewAPIKeyHTTPClient(baseURL, apiKey string, timeout time.Duration) *HTTPClient {
	client := NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("apikey", apiKey).
		SetAuthToken(apiKey)

	return client
}
