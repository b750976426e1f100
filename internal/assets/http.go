package assets

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultTimeout bounds a single HTTP fetch.
const DefaultTimeout = 30 * time.Second

// HTTPFetcher fetches http and https URLs.
// Implements Fetcher interface.
type HTTPFetcher struct {
	client   *http.Client
	maxBytes int64
}

// NewHTTPFetcher creates an HTTPFetcher. A zero timeout or byte cap falls
// back to DefaultTimeout and DefaultMaxBytes.
func NewHTTPFetcher(timeout time.Duration, maxBytes int64) *HTTPFetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return &HTTPFetcher{
		client:   &http.Client{Timeout: timeout},
		maxBytes: maxBytes,
	}
}

// WithClient returns a copy of f that sends requests through client.
func (f *HTTPFetcher) WithClient(client *http.Client) *HTTPFetcher {
	cp := *f
	cp.client = client
	return &cp
}

// Fetch issues a GET and returns the body.
// Returns ErrHTTPStatus for any non-2xx status and ErrAssetNotFound for 404.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	if err := ValidateAssetURL(url); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAssetURL, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrAssetRead, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w: %s: %w", ErrAssetNotFound, url, ErrHTTPStatus)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s: %s", ErrHTTPStatus, url, resp.Status)
	}

	return readCapped(resp.Body, f.maxBytes, url)
}

// readCapped reads r fully, failing once more than maxBytes arrive.
func readCapped(r io.Reader, maxBytes int64, url string) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrAssetRead, url, err)
	}
	if int64(len(data)) > maxBytes {
		return nil, fmt.Errorf("%w: %s exceeds %d bytes", ErrAssetTooLarge, url, maxBytes)
	}
	return data, nil
}

// Compile-time interface check.
var _ Fetcher = (*HTTPFetcher)(nil)
