// Package fetch reads dictionary sources from disk or over HTTP.
//
// Remote bodies are cached in memory for a TTL and requests are rate
// limited per host. Local files are always read fresh so a watched file
// reload sees the new contents.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/jladdjr/typey-type/internal/ports"
)

// Options configures a Fetcher. Zero values fall back to defaults.
type Options struct {
	Timeout           time.Duration
	MaxBytes          int64
	CacheTTL          time.Duration
	RequestsPerSecond float64
	Burst             int
	UserAgent         string
}

const (
	DefaultTimeout   = 30 * time.Second
	DefaultMaxBytes  = 64 << 20
	DefaultCacheTTL  = 10 * time.Minute
	DefaultUserAgent = "typey/1.0"
)

func (o Options) withDefaults() Options {
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}
	if o.MaxBytes <= 0 {
		o.MaxBytes = DefaultMaxBytes
	}
	if o.CacheTTL <= 0 {
		o.CacheTTL = DefaultCacheTTL
	}
	if o.RequestsPerSecond <= 0 {
		o.RequestsPerSecond = 2
	}
	if o.UserAgent == "" {
		o.UserAgent = DefaultUserAgent
	}
	return o
}

// Fetcher implements ports.DictionaryFetcher.
type Fetcher struct {
	httpClient *http.Client
	cache      *Cache
	limiter    *Limiter
	userAgent  string
	maxBytes   int64
}

var _ ports.DictionaryFetcher = (*Fetcher)(nil)

// New creates a Fetcher.
func New(opts Options) *Fetcher {
	opts = opts.withDefaults()
	return &Fetcher{
		httpClient: &http.Client{
			Timeout: opts.Timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		cache:     NewCache(opts.CacheTTL, 2*opts.CacheTTL),
		limiter:   NewLimiter(opts.RequestsPerSecond, opts.Burst),
		userAgent: opts.UserAgent,
		maxBytes:  opts.MaxBytes,
	}
}

// Fetch returns the raw bytes of a dictionary source.
func (f *Fetcher) Fetch(ctx context.Context, src ports.DictionarySource) ([]byte, error) {
	if err := src.Validate(); err != nil {
		return nil, err
	}
	if src.Path != "" {
		return f.readFile(src.Path)
	}
	return f.get(ctx, src.URL)
}

// Invalidate drops a cached remote body so the next Fetch goes to the network.
func (f *Fetcher) Invalidate(rawURL string) {
	f.cache.Delete(rawURL)
}

func (f *Fetcher) readFile(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary: %w", err)
	}
	defer file.Close()
	return f.readAll(file)
}

func (f *Fetcher) get(ctx context.Context, rawURL string) ([]byte, error) {
	if body, ok := f.cache.Get(rawURL); ok {
		return body, nil
	}
	if err := f.limiter.Wait(ctx, rawURL); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "application/json,text/tab-separated-values,text/plain;q=0.9,*/*;q=0.8")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("fetch %s: %w", rawURL, ports.ErrNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status: %d %s", resp.StatusCode, resp.Status)
	}

	body, err := f.readAll(resp.Body)
	if err != nil {
		return nil, err
	}
	f.cache.Set(rawURL, body)
	return body, nil
}

// readAll reads at most maxBytes and fails rather than truncate: a cut
// dictionary would load silently with missing words.
func (f *Fetcher) readAll(r io.Reader) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(r, f.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if int64(len(body)) > f.maxBytes {
		return nil, fmt.Errorf("%w: dictionary exceeds %d bytes", ports.ErrInvalidSource, f.maxBytes)
	}
	return body, nil
}
