package assets

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// Resolver dispatches asset URLs to the fetcher for their scheme.
//
// Absolute http and https URLs go to the HTTP fetcher and file:// URLs to the
// filesystem fetcher. A site-relative path is resolved against the base URL
// when one is configured, otherwise it is read from the base directory.
type Resolver struct {
	http    Fetcher
	local   Fetcher // nil if no base directory configured
	baseURL *url.URL
}

// ResolverOptions configures NewResolver.
type ResolverOptions struct {
	BaseURL  string // site root for relative paths, optional
	BaseDir  string // directory for file:// and relative paths, optional
	HTTP     Fetcher
	MaxBytes int64
}

// NewResolver creates a Resolver. A nil HTTP fetcher defaults to an
// HTTPFetcher with default limits.
// Returns ErrInvalidBasePath if BaseDir is set but invalid, and
// ErrInvalidAssetURL if BaseURL is not an absolute http(s) URL.
func NewResolver(opts ResolverOptions) (*Resolver, error) {
	r := &Resolver{http: opts.HTTP}
	if r.http == nil {
		r.http = NewHTTPFetcher(0, opts.MaxBytes)
	}

	if opts.BaseURL != "" {
		u, err := url.Parse(opts.BaseURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return nil, fmt.Errorf("%w: base url %q", ErrInvalidAssetURL, opts.BaseURL)
		}
		r.baseURL = u
	}

	if opts.BaseDir != "" {
		local, err := NewFilesystemFetcher(opts.BaseDir, opts.MaxBytes)
		if err != nil {
			return nil, err
		}
		r.local = local
	}

	return r, nil
}

// HasLocal returns true if a base directory is configured.
func (r *Resolver) HasLocal() bool {
	return r.local != nil
}

// Fetch resolves rawURL and fetches it.
func (r *Resolver) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	if err := ValidateAssetURL(rawURL); err != nil {
		return nil, err
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAssetURL, err)
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return r.http.Fetch(ctx, rawURL)
	case "file":
		return r.fetchLocal(ctx, rawURL)
	}

	// Site-relative
	if r.baseURL != nil {
		return r.http.Fetch(ctx, r.baseURL.ResolveReference(u).String())
	}
	return r.fetchLocal(ctx, rawURL)
}

func (r *Resolver) fetchLocal(ctx context.Context, rawURL string) ([]byte, error) {
	if r.local == nil {
		return nil, fmt.Errorf("%w: %q needs a base directory", ErrAssetNotFound, rawURL)
	}
	return r.local.Fetch(ctx, rawURL)
}

// Compile-time interface check.
var _ Fetcher = (*Resolver)(nil)
