package requestid

import (
	"context"
	"net/http"

	"github.com/dmitrymomot/ulid"
)

// ctxKey is the context key for storing the request ID.
type ctxKey struct{}

// DefaultHeaders are the headers checked (in order) for an existing request ID.
var DefaultHeaders = []string{"X-Request-ID", "X-Request-Id", "X-Correlation-ID"}

// Config configures the request ID middleware.
type Config struct {
	Generator      func() string // ID generator function
	ResponseHeader string        // Response header name
	Headers        []string      // Headers to check for existing ID (in order)
}

// Option configures Config.
type Option func(*Config)

// WithHeaders sets the headers to check for existing request IDs.
func WithHeaders(headers ...string) Option {
	return func(cfg *Config) {
		cfg.Headers = headers
	}
}

// WithGenerator sets a custom ID generator function.
func WithGenerator(gen func() string) Option {
	return func(cfg *Config) {
		cfg.Generator = gen
	}
}

// WithResponseHeader sets the response header name.
func WithResponseHeader(header string) Option {
	return func(cfg *Config) {
		cfg.ResponseHeader = header
	}
}

// Middleware returns middleware that assigns a ULID request ID to each
// request. An inbound header value is reused only when it is a valid ULID;
// anything else is replaced so malformed or spoofed IDs never propagate.
// The ID is stored in the request context and set as a response header.
func Middleware(opts ...Option) func(http.Handler) http.Handler {
	cfg := &Config{
		Headers:        DefaultHeaders,
		Generator:      ulid.NewString,
		ResponseHeader: "X-Request-ID",
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Check headers in priority order; first valid match is used to
			// preserve upstream tracing IDs.
			var reqID string
			for _, header := range cfg.Headers {
				if v := r.Header.Get(header); ulid.Valid(v) {
					reqID = v
					break
				}
			}

			if reqID == "" {
				reqID = cfg.Generator()
			}

			w.Header().Set(cfg.ResponseHeader, reqID)
			r = r.WithContext(context.WithValue(r.Context(), ctxKey{}, reqID))

			next.ServeHTTP(w, r)
		})
	}
}

// FromContext extracts the request ID from the context.
// Returns an empty string if no request ID is set.
func FromContext(ctx context.Context) string {
	if v, ok := ctx.Value(ctxKey{}).(string); ok {
		return v
	}
	return ""
}
