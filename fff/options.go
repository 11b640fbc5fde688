package fff

import (
	"net/http"
	"time"
)

const (
	// DefaultBaseURL is the public DOFA API host.
	DefaultBaseURL = "https://api-dofa.fff.fr"
	// DefaultTimeout bounds a single round trip.
	DefaultTimeout = 30 * time.Second
	// Version is reported in the default user agent.
	Version = "0.1.0"
	// DefaultUserAgent identifies this client to the API.
	DefaultUserAgent = "fffdata-go/" + Version
)

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	baseURL    string
	timeout    time.Duration
	userAgent  string
	httpClient *http.Client
}

func defaultOptions() *clientOptions {
	return &clientOptions{
		baseURL:   DefaultBaseURL,
		timeout:   DefaultTimeout,
		userAgent: DefaultUserAgent,
	}
}

// WithBaseURL sets the API base URL. A trailing slash is ignored.
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) {
		o.baseURL = baseURL
	}
}

// WithTimeout sets the default per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithUserAgent sets a custom user agent string.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		if userAgent != "" {
			o.userAgent = userAgent
		}
	}
}

// WithHTTPClient uses the given HTTP client instead of a private one.
// Its Timeout field is left untouched; the configured timeout is applied
// per request.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = httpClient
	}
}

// RequestOption adjusts a single dispatched request.
type RequestOption func(*requestOptions)

type requestOptions struct {
	timeout time.Duration
}

// WithRequestTimeout overrides the client timeout for one call.
func WithRequestTimeout(timeout time.Duration) RequestOption {
	return func(o *requestOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}
