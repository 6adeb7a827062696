// Package fetch implements the Fetcher interface.
// It performs a single HTTP GET against a JSON endpoint and maps every
// failure into a FetchError. There are no retries.
package fetch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultTimeout   = 30 * time.Second
	DefaultUserAgent = "sessionlist/1.0 (https://github.com/nilovelez/wptv-sessions-list)"
)

// Kind classifies a fetch failure.
type Kind int

const (
	KindTransport Kind = iota + 1
	KindHTTP
	KindDecode
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindHTTP:
		return "http"
	case KindDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// Sentinels for errors.Is matching against a FetchError's kind.
var (
	ErrTransport = errors.New("transport error")
	ErrHTTP      = errors.New("unexpected http status")
	ErrDecode    = errors.New("invalid json")
)

// FetchError is returned for every failed fetch.
type FetchError struct {
	Kind       Kind
	URL        string
	StatusCode int // set for KindHTTP
	Err        error
}

func (e *FetchError) Error() string {
	switch e.Kind {
	case KindHTTP:
		return fmt.Sprintf("unexpected status %d for %s", e.StatusCode, e.URL)
	case KindDecode:
		return fmt.Sprintf("decoding %s: %v", e.URL, e.Err)
	default:
		return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
	}
}

func (e *FetchError) Unwrap() error { return e.Err }

// Is reports kind equality against the package sentinels.
func (e *FetchError) Is(target error) bool {
	switch target {
	case ErrTransport:
		return e.Kind == KindTransport
	case ErrHTTP:
		return e.Kind == KindHTTP
	case ErrDecode:
		return e.Kind == KindDecode
	}
	return false
}

// HTTPFetcher fetches JSON documents via HTTP.
type HTTPFetcher struct {
	client    *http.Client
	userAgent string
}

// Option configures an HTTPFetcher.
type Option func(*HTTPFetcher)

// WithClient replaces the underlying http.Client.
func WithClient(c *http.Client) Option {
	return func(f *HTTPFetcher) { f.client = c }
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *HTTPFetcher) {
		if ua != "" {
			f.userAgent = ua
		}
	}
}

// New creates an HTTPFetcher with a sensible timeout.
func New(opts ...Option) *HTTPFetcher {
	f := &HTTPFetcher{
		client:    &http.Client{Timeout: defaultTimeout},
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// FetchJSON retrieves url and decodes the JSON body into v.
// Only a 200 response is accepted.
func (f *HTTPFetcher) FetchJSON(ctx context.Context, url string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return &FetchError{Kind: KindTransport, URL: url, Err: fmt.Errorf("creating request: %w", err)}
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return &FetchError{Kind: KindTransport, URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return &FetchError{Kind: KindHTTP, URL: url, StatusCode: resp.StatusCode, Err: ErrHTTP}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &FetchError{Kind: KindTransport, URL: url, Err: fmt.Errorf("reading response body: %w", err)}
	}

	if err := json.Unmarshal(body, v); err != nil {
		return &FetchError{Kind: KindDecode, URL: url, Err: err}
	}
	return nil
}
