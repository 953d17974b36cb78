package talentwire

import (
	"net/http"
	"time"
)

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	timeout      time.Duration
	httpClient   *http.Client
	userAgent    string
	debug        bool
	extraHeaders map[string]string
}

// WithTimeout sets the HTTP client timeout. Timeouts are the only deadline
// the SDK applies; callers wanting finer control should pass a custom HTTP
// client or use request contexts.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client entirely, e.g. to
// configure proxies or connection pooling.
func WithHTTPClient(client *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = client
	}
}

// WithUserAgent overrides the client-identifying User-Agent string. This is
// the dedicated accessor for a header the transport otherwise restricts.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		if userAgent != "" {
			o.userAgent = userAgent
		}
	}
}

// WithDebug captures the serialized request body into any error raised for
// that call. It buffers the full body for every request, so leave it off
// outside of troubleshooting.
func WithDebug(debug bool) Option {
	return func(o *clientOptions) {
		o.debug = debug
	}
}

// WithHeader adds a permanent header sent on every call. Restricted names
// (Content-Type, Content-Length, User-Agent, ...) are rejected at client
// construction; see WithUserAgent for the one with a dedicated accessor.
func WithHeader(name, value string) Option {
	return func(o *clientOptions) {
		if o.extraHeaders == nil {
			o.extraHeaders = make(map[string]string)
		}
		o.extraHeaders[name] = value
	}
}
