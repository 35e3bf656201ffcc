package loader

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	pkgopenapi "github.com/goliatone/go-formscaffold/pkg/openapi"
)

// fetchFunc reads the payload at location.
type fetchFunc func(ctx context.Context, location string) ([]byte, error)

// Loader dispatches each source kind to a fetcher. Kinds without a fetcher
// are rejected.
type Loader struct {
	fetchers map[pkgopenapi.SourceKind]fetchFunc
}

var _ pkgopenapi.Loader = (*Loader)(nil)

// New builds a Loader from resolved options.
func New(options pkgopenapi.LoaderOptions) pkgopenapi.Loader {
	limit := options.MaxDocumentBytes
	if limit <= 0 {
		limit = pkgopenapi.DefaultMaxDocumentBytes
	}

	l := &Loader{fetchers: map[pkgopenapi.SourceKind]fetchFunc{
		pkgopenapi.SourceKindFile: func(ctx context.Context, location string) ([]byte, error) {
			return readFile(ctx, location, limit)
		},
	}}
	if options.FileSystem != nil {
		fsys := options.FileSystem
		l.fetchers[pkgopenapi.SourceKindFS] = func(ctx context.Context, location string) ([]byte, error) {
			return readFS(ctx, fsys, location, limit)
		}
	}
	if client := httpClient(options); client != nil {
		l.fetchers[pkgopenapi.SourceKindURL] = func(ctx context.Context, location string) ([]byte, error) {
			return fetchURL(ctx, client, location, limit)
		}
	}
	return l
}

func httpClient(options pkgopenapi.LoaderOptions) *http.Client {
	switch {
	case options.HTTPClient != nil:
		client := *options.HTTPClient
		if client.Timeout == 0 {
			client.Timeout = options.RequestTimeout
		}
		return &client
	case options.AllowHTTPFallback:
		return &http.Client{Timeout: options.RequestTimeout}
	default:
		return nil
	}
}

// Load reads src and wraps the payload in a Document.
func (l *Loader) Load(ctx context.Context, src pkgopenapi.Source) (pkgopenapi.Document, error) {
	if src == nil {
		return pkgopenapi.Document{}, errors.New("openapi loader: source is nil")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	fetch, ok := l.fetchers[src.Kind()]
	if !ok {
		return pkgopenapi.Document{}, fmt.Errorf("openapi loader: %s sources are not enabled", src.Kind())
	}
	data, err := fetch(ctx, src.Location())
	if err != nil {
		return pkgopenapi.Document{}, fmt.Errorf("openapi loader: %s %s: %w", src.Kind(), src.Location(), err)
	}
	return pkgopenapi.NewDocument(src, data)
}

var errTooLarge = errors.New("document exceeds size limit")

func readLimited(read func() ([]byte, error), limit int64) ([]byte, error) {
	data, err := read()
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("%w of %d bytes", errTooLarge, limit)
	}
	return data, nil
}
