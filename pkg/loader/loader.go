// Package loader defines how form definitions are fetched from disk, an
// fs.FS, or HTTP. The implementation lives in internal/loader and is built
// through formdata.NewLoader.
package loader

import (
	"context"
	"io/fs"
	"net/http"
	"time"

	"github.com/goliatone/go-formdata/pkg/schema"
)

// Loader fetches raw form definition documents.
type Loader interface {
	Load(ctx context.Context, src schema.Source) (schema.Document, error)
}

// LoaderOptions configures how a Loader resolves sources.
type LoaderOptions struct {
	// FileSystem serves SourceKindFS entries. Loading an fs source without
	// one fails.
	FileSystem fs.FS

	// HTTPClient enables URL sources with caller-controlled transport
	// settings. Nil disables HTTP unless AllowHTTPFallback is true.
	HTTPClient *http.Client

	// AllowHTTPFallback enables URL sources with a default client.
	AllowHTTPFallback bool

	// RequestTimeout caps remote fetches. Zero means no timeout.
	RequestTimeout time.Duration

	// MaxBytes limits the size of a fetched document. Zero means
	// DefaultMaxBytes.
	MaxBytes int64
}

// DefaultMaxBytes is the document size limit applied when MaxBytes is zero.
const DefaultMaxBytes int64 = 4 << 20

// LoaderOption mutates LoaderOptions prior to construction.
type LoaderOption func(*LoaderOptions)

// WithFileSystem injects an fs.FS for SourceKindFS sources.
func WithFileSystem(files fs.FS) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.FileSystem = files
	}
}

// WithHTTPClient injects a custom HTTP client for URL sources.
func WithHTTPClient(client *http.Client) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.HTTPClient = client
	}
}

// WithHTTPFallback enables URL sources using a default client with the given
// timeout.
func WithHTTPFallback(timeout time.Duration) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.AllowHTTPFallback = true
		opts.RequestTimeout = timeout
	}
}

// WithMaxBytes caps the size of loaded documents.
func WithMaxBytes(limit int64) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.MaxBytes = limit
	}
}

// NewLoaderOptions applies options and returns the resulting configuration.
func NewLoaderOptions(options ...LoaderOption) LoaderOptions {
	cfg := LoaderOptions{}
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.MaxBytes <= 0 {
		cfg.MaxBytes = DefaultMaxBytes
	}
	return cfg
}
