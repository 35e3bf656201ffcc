package openapi

import (
	"context"
	"io/fs"
	"net/http"
	"time"
)

// DefaultMaxDocumentBytes caps the size of documents read by a Loader.
const DefaultMaxDocumentBytes int64 = 16 << 20

// Loader reads the raw OpenAPI document behind a Source. The implementation
// lives in internal/openapi/loader.
type Loader interface {
	Load(ctx context.Context, src Source) (Document, error)
}

// LoaderOptions selects which source kinds a Loader accepts. Plain files are
// always readable; fs.FS and HTTP sources need to be enabled.
type LoaderOptions struct {
	// FileSystem serves SourceKindFS locations.
	FileSystem fs.FS

	// HTTPClient serves SourceKindURL locations. When nil, URLs are only
	// accepted if AllowHTTPFallback is set.
	HTTPClient *http.Client

	// AllowHTTPFallback enables URL sources with a client built from
	// RequestTimeout.
	AllowHTTPFallback bool

	// RequestTimeout bounds each remote fetch; zero means no limit beyond the
	// caller's context.
	RequestTimeout time.Duration

	// MaxDocumentBytes truncates larger payloads. Zero uses
	// DefaultMaxDocumentBytes.
	MaxDocumentBytes int64
}

// LoaderOption mutates LoaderOptions.
type LoaderOption func(*LoaderOptions)

// WithFileSystem enables SourceKindFS sources backed by files.
func WithFileSystem(files fs.FS) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.FileSystem = files
	}
}

// WithHTTPClient enables URL sources using client.
func WithHTTPClient(client *http.Client) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.HTTPClient = client
	}
}

// WithHTTPFallback enables URL sources with a default client and the given
// per-request timeout.
func WithHTTPFallback(timeout time.Duration) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.AllowHTTPFallback = true
		opts.RequestTimeout = timeout
	}
}

// WithDefaultSources turns on URL loading unless a client was already given.
func WithDefaultSources() LoaderOption {
	return func(opts *LoaderOptions) {
		if opts.HTTPClient == nil {
			opts.AllowHTTPFallback = true
		}
	}
}

// WithMaxDocumentSize sets MaxDocumentBytes.
func WithMaxDocumentSize(limit int64) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.MaxDocumentBytes = limit
	}
}

// NewLoaderOptions applies options over the zero configuration.
func NewLoaderOptions(options ...LoaderOption) LoaderOptions {
	cfg := LoaderOptions{}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.MaxDocumentBytes <= 0 {
		cfg.MaxDocumentBytes = DefaultMaxDocumentBytes
	}
	return cfg
}
