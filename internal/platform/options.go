package platform

import (
	"log/slog"
	"time"

	"github.com/musenotes/muse/pkg/core"
)

// options holds the internal configuration for the Muse service.
type options struct {
	storage   core.Storage
	generator core.Generator
	logger    *slog.Logger
	clock     func() time.Time
	cachePath string
	apiKey    string
}

// Option defines a functional option for configuring Muse.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		clock: time.Now,
	}
}

// WithStorage injects a custom cache storage (e.g. mock, remote KV).
// If provided, cache path handling is skipped.
func WithStorage(s core.Storage) Option {
	return func(o *options) {
		o.storage = s
	}
}

// WithGenerator injects a custom generative capability. If provided, the
// default Gemini client is skipped.
func WithGenerator(g core.Generator) Option {
	return func(o *options) {
		o.generator = g
	}
}

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithClock overrides the time source (useful for testing cache
// freshness).
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.clock = now
	}
}

// WithCachePath enables the durable SQLite cache at the given path.
// Without it the cache lives in memory for the process lifetime.
func WithCachePath(path string) Option {
	return func(o *options) {
		o.cachePath = path
	}
}

// WithAPIKey sets the Gemini API key. Defaults to the GEMINI_API_KEY
// environment variable.
func WithAPIKey(key string) Option {
	return func(o *options) {
		o.apiKey = key
	}
}
